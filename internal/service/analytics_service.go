package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"stocklens/internal/cache"
	"stocklens/internal/domain"
	"stocklens/internal/engine"
	"stocklens/internal/repository"
)

// AnalyticsService loads the inventory snapshot, runs the analysis
// engine over it and caches the resulting report per as-of date.
type AnalyticsService struct {
	repo   repository.SnapshotRepository
	engine *engine.Engine
	cache  cache.ReportCache
}

func NewAnalyticsService(repo repository.SnapshotRepository, eng *engine.Engine, cacheImpl cache.ReportCache) *AnalyticsService {
	if eng == nil {
		eng = engine.New()
	}
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopReportCache()
	}
	return &AnalyticsService{repo: repo, engine: eng, cache: cacheImpl}
}

// GetReport returns the full analysis report as of the given instant,
// serving from cache when a report for that date is already stored.
func (s *AnalyticsService) GetReport(ctx context.Context, asOf time.Time) (*domain.AnalysisReport, error) {
	if report, ok, err := s.cache.GetReport(ctx, asOf); err == nil && ok {
		return report, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("analytics: cache get report failed")
	}

	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	report, err := s.engine.Run(ctx, snap, asOf)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetReport(ctx, report); err != nil {
		log.Warn().Err(err).Msg("analytics: cache set report failed")
	}

	return report, nil
}

func (s *AnalyticsService) GetStockouts(ctx context.Context, asOf time.Time) ([]domain.StockoutAlert, error) {
	report, err := s.GetReport(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return report.Stockouts, nil
}

func (s *AnalyticsService) GetABC(ctx context.Context, asOf time.Time) ([]domain.ABCItem, error) {
	report, err := s.GetReport(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return report.ABC, nil
}

func (s *AnalyticsService) GetTurnover(ctx context.Context, asOf time.Time) ([]domain.CategoryTurnover, error) {
	report, err := s.GetReport(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return report.Turnover, nil
}

func (s *AnalyticsService) GetReorders(ctx context.Context, asOf time.Time) ([]domain.ReorderRecommendation, error) {
	report, err := s.GetReport(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return report.Reorders, nil
}

func (s *AnalyticsService) GetSuppliers(ctx context.Context, asOf time.Time) ([]domain.SupplierPerformance, error) {
	report, err := s.GetReport(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return report.Suppliers, nil
}

// Invalidate drops all cached reports, for use after reseeding data.
func (s *AnalyticsService) Invalidate(ctx context.Context) error {
	return s.cache.InvalidateAll(ctx)
}

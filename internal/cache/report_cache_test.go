package cache

import (
	"context"
	"testing"
	"time"
)

func TestBuildReportKey(t *testing.T) {
	asOf := time.Date(2026, 3, 1, 17, 30, 0, 0, time.FixedZone("UTC+7", 7*3600))
	if got, want := buildReportKey(asOf), "analysis:report:2026-03-01"; got != want {
		t.Errorf("buildReportKey = %q, want %q", got, want)
	}
}

func TestNoopReportCache(t *testing.T) {
	c := NewNoopReportCache()
	ctx := context.Background()

	report, hit, err := c.GetReport(ctx, time.Now())
	if err != nil || hit || report != nil {
		t.Errorf("noop GetReport = (%v, %v, %v), want miss", report, hit, err)
	}
	if err := c.SetReport(ctx, nil); err != nil {
		t.Errorf("noop SetReport: %v", err)
	}
	if err := c.InvalidateAll(ctx); err != nil {
		t.Errorf("noop InvalidateAll: %v", err)
	}
}

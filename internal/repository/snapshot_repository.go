// internal/repository/snapshot_repository.go
package repository

import (
	"context"

	"stocklens/internal/domain"
)

// SnapshotRepository loads the five record collections whole. A loaded
// snapshot is handed to the engine and never written back; the engine
// itself re-checks referential integrity before running.
type SnapshotRepository interface {
	LoadSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

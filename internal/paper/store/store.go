// Package store persists Paper documents. Implementations are interface-driven
// so the lifecycle engine stays testable and persistence can move between
// in-memory, PostgreSQL, and cached variants without rewiring business code.
//
// Stores report infrastructure facts with sentinel errors; the service layer
// translates them into coded domain errors.
package store

import (
	"context"

	"paperflow/internal/paper/models"
)

// PaperStore is the persistence contract required by the lifecycle engine.
// Save is full-document, last-write-wins; there is no optimistic concurrency
// token, so concurrent writers against one paper race (last writer wins).
type PaperStore interface {
	// Create assigns an ID and persists a new paper. Returns
	// sentinel.ErrConflict when the paperId business key is already taken.
	Create(ctx context.Context, p *models.Paper) (*models.Paper, error)
	// FindByID returns sentinel.ErrNotFound for unknown ids.
	FindByID(ctx context.Context, id string) (*models.Paper, error)
	// FindByPaperID looks a paper up by its business key.
	FindByPaperID(ctx context.Context, paperID string) (*models.Paper, error)
	List(ctx context.Context) ([]*models.Paper, error)
	// ListFullySlotted returns papers whose slot sequence is non-empty and
	// entirely filled. This read-side filter is stricter than the
	// advance-stage precondition, which an empty sequence satisfies.
	ListFullySlotted(ctx context.Context) ([]*models.Paper, error)
	// Save persists the full document state of an existing paper.
	Save(ctx context.Context, p *models.Paper) (*models.Paper, error)
}

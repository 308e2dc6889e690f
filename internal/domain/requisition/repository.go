package requisition

import "context"

type Repository interface {
	Create(ctx context.Context, r *Requisition) error
	GetByID(ctx context.Context, id uint64) (*Requisition, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Requisition, error)
	// List returns the rows matching v, newest first.
	List(ctx context.Context, v Visibility) ([]Requisition, error)
	// UpdateDecision persists the workflow columns of r only if the stored
	// status still equals expected; otherwise it returns ErrStaleStatus.
	UpdateDecision(ctx context.Context, r *Requisition, expected Status) error
}

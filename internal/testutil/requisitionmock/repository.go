package requisitionmock

import (
	"context"

	domain "seismic-catalog/internal/domain/requisition"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Reads default to context.Canceled, writes default to nil.
type Repo struct {
	CreateFn           func(ctx context.Context, r *domain.Requisition) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Requisition, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Requisition, error)
	ListFn             func(ctx context.Context, v domain.Visibility) ([]domain.Requisition, error)
	UpdateDecisionFn   func(ctx context.Context, r *domain.Requisition, expected domain.Status) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Requisition) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Requisition, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Requisition, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, v domain.Visibility) ([]domain.Requisition, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, v)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateDecision(ctx context.Context, r *domain.Requisition, expected domain.Status) error {
	if m.UpdateDecisionFn != nil {
		return m.UpdateDecisionFn(ctx, r, expected)
	}
	return nil
}

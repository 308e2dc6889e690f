package usermock

import (
	"context"

	domain "seismic-catalog/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, u *domain.User) error
	GetByCPFNoFn    func(ctx context.Context, cpfNo string) (*domain.User, error)
	ExistsByCPFNoFn func(ctx context.Context, cpfNo string) (bool, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByCPFNo(ctx context.Context, cpfNo string) (*domain.User, error) {
	if m.GetByCPFNoFn != nil {
		return m.GetByCPFNoFn(ctx, cpfNo)
	}
	return nil, context.Canceled
}

func (m *Repo) ExistsByCPFNo(ctx context.Context, cpfNo string) (bool, error) {
	if m.ExistsByCPFNoFn != nil {
		return m.ExistsByCPFNoFn(ctx, cpfNo)
	}
	return false, nil
}

package uowmock

import (
	"context"
	"errors"

	"seismic-catalog/internal/domain/requisition"
	"seismic-catalog/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Unfilled function fields return errUnimplemented.
type UoW struct {
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinRequisitionTxFn func(ctx context.Context, id uint64, fn func(r uow.Repos, req *requisition.Requisition) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough runs callbacks directly against repos, loading the locked row
// through repos.Requisitions.GetByIDForUpdate.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinRequisitionTxFn: func(ctx context.Context, id uint64, fn func(r uow.Repos, req *requisition.Requisition) error) error {
			req, err := repos.Requisitions.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return fn(repos, req)
		},
	}
}

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

func (m *UoW) WithWithinRequisitionTx(fn func(context.Context, uint64, func(uow.Repos, *requisition.Requisition) error) error) *UoW {
	m.WithinRequisitionTxFn = fn
	return m
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinRequisitionTx(ctx context.Context, id uint64, fn func(r uow.Repos, req *requisition.Requisition) error) error {
	if m.WithinRequisitionTxFn != nil {
		return m.WithinRequisitionTxFn(ctx, id, fn)
	}
	return errUnimplemented
}

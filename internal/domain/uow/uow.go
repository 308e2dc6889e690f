package uow

import (
	"context"

	"seismic-catalog/internal/domain/requisition"
	"seismic-catalog/internal/domain/user"
)

type Repos struct {
	Requisitions requisition.Repository
	Users        user.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the requisition row first, then pass it in
	WithinRequisitionTx(ctx context.Context, id uint64, fn func(r Repos, req *requisition.Requisition) error) error
}

package mysql

import (
	"context"

	"gorm.io/gorm"

	"seismic-catalog/internal/domain/requisition"
	"seismic-catalog/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Requisitions: &RequisitionRepository{db: tx},
		Users:        &UserRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(u.repos(tx))
	})
}

func (u *GormUoW) WithinRequisitionTx(ctx context.Context, id uint64, fn func(r uow.Repos, req *requisition.Requisition) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := u.repos(tx)
		// lock the row up-front so the status guard and the write see the same state
		req, err := r.Requisitions.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		return fn(r, req)
	})
}

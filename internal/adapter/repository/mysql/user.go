package mysql

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	domain "seismic-catalog/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateCPF
	}
	return errors.Wrap(err, "insert user")
}

func (r *UserRepository) GetByCPFNo(ctx context.Context, cpfNo string) (*domain.User, error) {
	var out domain.User
	err := r.db.WithContext(ctx).Where("cpf_no = ?", cpfNo).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}
	return &out, nil
}

func (r *UserRepository) ExistsByCPFNo(ctx context.Context, cpfNo string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("cpf_no = ?", cpfNo).Count(&n).Error; err != nil {
		return false, errors.Wrap(err, "count users")
	}
	return n > 0, nil
}

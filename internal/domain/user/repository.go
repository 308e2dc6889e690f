package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByCPFNo(ctx context.Context, cpfNo string) (*User, error)
	ExistsByCPFNo(ctx context.Context, cpfNo string) (bool, error)
}

package user

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateCPF       = errors.New("user with this cpf_no already exists")
	ErrInvalidCredentials = errors.New("incorrect id or password")
	ErrInvalidUserType    = errors.New("invalid user type")
)

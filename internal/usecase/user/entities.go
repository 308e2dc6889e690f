package user

import (
	"time"

	domain "seismic-catalog/internal/domain/user"
)

type SignupInput struct {
	Name     string
	CPFNo    string
	Password string
	UserType domain.Role
}

type LoginInput struct {
	CPFNo    string
	Password string
}

type UserDTO struct {
	ID       uint64      `json:"id"`
	Name     string      `json:"name"`
	CPFNo    string      `json:"cpf_no"`
	UserType domain.Role `json:"user_type"`
}

type LoginDTO struct {
	Message     string      `json:"message"`
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	CPFNo       string      `json:"cpf_no"`
	UserType    domain.Role `json:"user_type"`
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   time.Time   `json:"expires_at"`
}

package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"seismic-catalog/internal/auth"
	domain "seismic-catalog/internal/domain/user"
)

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(p auth.Principal) (string, time.Time, error)
}

type Usecase struct {
	repo   domain.Repository
	tokens TokenIssuer
	cost   int
	logger *logrus.Entry
}

func NewUsecase(repo domain.Repository, tokens TokenIssuer, bcryptCost int, logger *logrus.Logger) *Usecase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	entry := logrus.WithField("component", "user")
	if logger != nil {
		entry = logger.WithField("component", "user")
	}
	return &Usecase{repo: repo, tokens: tokens, cost: bcryptCost, logger: entry}
}

func (u *Usecase) Signup(ctx context.Context, in SignupInput) (*UserDTO, error) {
	if !in.UserType.Valid() {
		return nil, domain.ErrInvalidUserType
	}
	cpf := strings.TrimSpace(in.CPFNo)

	exists, err := u.repo.ExistsByCPFNo(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateCPF
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return nil, err
	}
	usr := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		CPFNo:        cpf,
		PasswordHash: string(hash),
		UserType:     in.UserType,
	}
	if err := u.repo.Create(ctx, usr); err != nil {
		return nil, err
	}
	u.logger.WithContext(ctx).WithFields(logrus.Fields{
		"cpf_no":    usr.CPFNo,
		"user_type": usr.UserType,
	}).Info("user registered")

	return &UserDTO{ID: usr.ID, Name: usr.Name, CPFNo: usr.CPFNo, UserType: usr.UserType}, nil
}

// Login never reveals whether the cpf_no or the password was wrong.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginDTO, error) {
	usr, err := u.repo.GetByCPFNo(ctx, strings.TrimSpace(in.CPFNo))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expires, err := u.tokens.Issue(auth.Principal{ID: usr.CPFNo, Role: usr.UserType, Name: usr.Name})
	if err != nil {
		return nil, err
	}
	return &LoginDTO{
		Message:     "Login successful",
		ID:          usr.ID,
		Name:        usr.Name,
		CPFNo:       usr.CPFNo,
		UserType:    usr.UserType,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expires,
	}, nil
}

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"seismic-catalog/internal/domain/user"
	"seismic-catalog/pkg/id"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the principal inside a signed bearer token. Subject is the
// user's cpf_no.
type Claims struct {
	Role user.Role `json:"role"`
	Name string    `json:"name"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 bearer tokens.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret, issuer string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// WithClock overrides the issue time source.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

func (s *TokenService) Issue(p Principal) (string, time.Time, error) {
	jti, err := id.New()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token id: %w", err)
	}
	issued := s.now().UTC()
	expires := issued.Add(s.ttl)
	claims := Claims{
		Role: p.Role,
		Name: p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    s.issuer,
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

func (s *TokenService) Verify(raw string) (Principal, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return Principal{}, ErrInvalidToken
	}
	// every token Issue signs carries a jti from id.New
	if !claims.VerifyIssuer(s.issuer, true) || claims.Subject == "" || !id.IsHex32(claims.ID) {
		return Principal{}, ErrInvalidToken
	}
	return Principal{ID: claims.Subject, Role: claims.Role, Name: claims.Name}, nil
}

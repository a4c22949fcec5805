package jwtservice

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errorvalues "github.com/limbo/dailyos/internal/error_values"
)

// Claims are the fields the backend puts into its access tokens.
type Claims struct {
	jwt.RegisteredClaims
}

// Inspector decodes upstream access tokens without checking the signature.
// Verification stays with the backend.
type Inspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

func New() *Inspector {
	return &Inspector{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// NewWithClock is New with an injectable clock.
func NewWithClock(now func() time.Time) *Inspector {
	ins := New()
	ins.now = now
	return ins
}

func (i *Inspector) Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, _, err := i.parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, errorvalues.ErrInvalidToken
	}
	if claims.ExpiresAt != nil && !i.now().Before(claims.ExpiresAt.Time) {
		return nil, errorvalues.ErrTokenExpired
	}
	return claims, nil
}

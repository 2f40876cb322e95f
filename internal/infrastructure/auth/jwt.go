package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	authRepository "pixvault/internal/domain/repository/auth"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Config struct {
	Secret   string
	Required bool `yaml:"required"`
}

type claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	RoleID   int    `json:"role_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HMAC-signed bearer tokens issued by the account
// service. It only verifies; issuance is out of scope.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(cfg Config) *JWTVerifier {
	return &JWTVerifier{secret: []byte(cfg.Secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (*authRepository.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &authRepository.Identity{
		UserID:   c.UserID,
		Username: c.Username,
		RoleID:   c.RoleID,
	}, nil
}

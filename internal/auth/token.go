package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims — результат валидации access-токена.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
	JTI    string
	Exp    time.Time
}

type customClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenProvider подписывает и проверяет access-токены HS256.
type TokenProvider struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

func NewTokenProvider(secret, issuer, audience string) *TokenProvider {
	return &TokenProvider{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}
}

func (p *TokenProvider) SignAccess(ctx context.Context, sub uuid.UUID, email, role string, ttl time.Duration) (string, time.Time, error) {
	now := p.now()
	exp := now.Add(ttl)

	claims := customClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    p.issuer,
			Subject:   sub.String(),
			Audience:  []string{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(p.secret)
	return signed, exp, err
}

func (p *TokenProvider) ParseAndValidateAccess(ctx context.Context, token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &customClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	}, jwt.WithAudience(p.audience), jwt.WithIssuer(p.issuer))
	if err != nil {
		return nil, err
	}
	cc, ok := parsed.Claims.(*customClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	uid, err := uuid.Parse(cc.Subject)
	if err != nil {
		return nil, err
	}
	return &Claims{
		UserID: uid,
		Email:  cc.Email,
		Role:   cc.Role,
		JTI:    cc.ID,
		Exp:    cc.ExpiresAt.Time,
	}, nil
}

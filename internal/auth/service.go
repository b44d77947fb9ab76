package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// StaffUser — запись служебного справочника. Пользователи не регистрируются
// через API: справочник собирается на старте из конфигурации.
type StaffUser struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	Role         string
}

// NewStaffUser hashes the plaintext password with bcrypt. Intended for startup
// wiring only, never for request paths.
func NewStaffUser(email, password, role string) (StaffUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return StaffUser{}, err
	}
	return StaffUser{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Role:         role,
	}, nil
}

// Blacklist отзывает токены по jti до истечения их срока. Реализации:
// Redis (internal/cache) и in-memory (MemoryBlacklist).
type Blacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, jti string) (bool, error)
}

type Service struct {
	users     map[string]StaffUser
	tokens    *TokenProvider
	blacklist Blacklist
	accessTTL time.Duration
	now       func() time.Time
	log       *zap.Logger
}

func NewService(users []StaffUser, tokens *TokenProvider, blacklist Blacklist, accessTTL time.Duration, log *zap.Logger) *Service {
	byEmail := make(map[string]StaffUser, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}
	return &Service{
		users:     byEmail,
		tokens:    tokens,
		blacklist: blacklist,
		accessTTL: accessTTL,
		now:       time.Now,
		log:       log,
	}
}

// Login verifies credentials and issues an access token.
func (s *Service) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		// Сравниваем с фиктивным хэшем, чтобы не отличать по времени
		// "нет такого пользователя" от "неверный пароль".
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return s.tokens.SignAccess(ctx, u.ID, u.Email, u.Role, s.accessTTL)
}

// Logout blacklists the token's jti for the remainder of its lifetime.
func (s *Service) Logout(ctx context.Context, claims *Claims) error {
	ttl := time.Until(claims.Exp)
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.BlacklistToken(ctx, claims.JTI, ttl)
}

// Validate parses the token and rejects revoked ones.
func (s *Service) Validate(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.tokens.ParseAndValidateAccess(ctx, token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	revoked, err := s.blacklist.IsTokenBlacklisted(ctx, claims.JTI)
	if err != nil {
		s.log.Warn("blacklist lookup failed", zap.Error(err))
		return nil, ErrUnauthorized
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("aimee-dummy"), bcrypt.MinCost)
	return h
}()

package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/finbrief/member-portal/internal/core/domain"
	"github.com/finbrief/member-portal/internal/core/ports"
)

// AuthService implements credential verification, token issuance and the
// role-gated authorization check. Holds no mutable state; safe for
// concurrent use.
type AuthService struct {
	repo   ports.UserRepository
	codec  *TokenCodec
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

// Authenticate validates a username-or-email plus password pair. An unknown
// identifier and a wrong password both collapse to ErrInvalidCredentials so
// callers cannot enumerate accounts from the outcome.
func (s *AuthService) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	if identifier == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	var (
		user *domain.User
		err  error
	)
	if classifyIdentifier(identifier) == identifierEmail {
		user, err = s.repo.FindByEmail(ctx, identifier)
	} else {
		user, err = s.repo.FindByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a bearer token whose subject is the user's username. A
// non-positive ttl selects the codec default.
func (s *AuthService) IssueToken(user *domain.User, ttl time.Duration) (string, error) {
	token, err := s.codec.Create(jwt.MapClaims{"sub": user.Username}, ttl)
	if err != nil {
		return "", err
	}
	s.logger.Debug().Str("username", user.Username).Msg("token issued")
	return token, nil
}

// ResolveToken verifies a bearer token and resolves its subject to a
// principal. The subject is always looked up as a username. Each call hits
// the store, so a principal deleted after issuance stops resolving
// immediately.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	return s.repo.FindByUsername(ctx, subject)
}

// Authorize resolves the token and enforces the gate against the
// principal's role. Stages short-circuit in order: decode failure and a
// vanished subject surface as-is, a role mismatch as ErrForbidden.
func (s *AuthService) Authorize(ctx context.Context, token string, gate domain.Gate) (*domain.User, error) {
	user, err := s.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if !gate.Allows(user.Role) {
		s.logger.Debug().Str("username", user.Username).Str("role", string(user.Role)).Str("gate", string(gate)).Msg("gate denied")
		return nil, domain.ErrForbidden
	}

	return user, nil
}

package ports

import (
	"context"
	"time"

	"github.com/finbrief/member-portal/internal/core/domain"
)

// AuthService implements credential verification, token issuance and the
// role-gated authorization check.
type AuthService interface {
	// Authenticate validates a username-or-email plus password pair.
	// Unknown identifiers and wrong passwords both collapse to
	// domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, identifier, password string) (*domain.User, error)
	// IssueToken signs a bearer token for the user. A non-positive ttl
	// selects the configured default.
	IssueToken(user *domain.User, ttl time.Duration) (string, error)
	// ResolveToken verifies a bearer token and resolves its subject to a
	// principal with a fresh store lookup.
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
	// Authorize resolves the token and enforces the gate against the
	// principal's role.
	Authorize(ctx context.Context, token string, gate domain.Gate) (*domain.User, error)
}

package ports

import (
	"context"

	"github.com/finbrief/member-portal/internal/core/domain"
)

// UserRepository defines the interface for principal persistence. Each
// finder returns at most one match; uniqueness of username and email is
// enforced by the store, not by callers.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

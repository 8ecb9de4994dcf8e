package ports

import (
	"context"

	"github.com/finbrief/member-portal/internal/core/domain"
)

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Username *string
	Email    *string
	Role     *domain.Role
}

// UserService implements self-registration and administrative user
// management.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	CreateUser(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

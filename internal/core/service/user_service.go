package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/finbrief/member-portal/internal/core/domain"
	"github.com/finbrief/member-portal/internal/core/ports"
)

// UserService implements self-registration and administrative user
// management on top of the user repository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a self-registered account. The role is always basic.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.create(ctx, username, email, password, domain.RoleBasic)
}

// CreateUser creates an account with an explicit role, for administrative
// flows.
func (s *UserService) CreateUser(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	return s.create(ctx, username, email, password, role)
}

func (s *UserService) create(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser applies a partial update to username, email or role. A
// uniqueness conflict from the store propagates unchanged as ErrUserExists.
func (s *UserService) UpdateUser(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Role != nil {
		if !update.Role.Valid() {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *update.Role
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", updated.ID).Str("username", updated.Username).Msg("user updated")
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("user deleted")
	return nil
}

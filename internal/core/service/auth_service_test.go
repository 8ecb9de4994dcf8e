package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/finbrief/member-portal/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, cloneUser(u))
	}
	return users, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, u := range r.users {
		if id == user.ID {
			continue
		}
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, username, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := hashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	codec := NewTokenCodec("secret", time.Hour)
	return NewAuthService(repo, codec, zerolog.Nop())
}

func TestAuthService_Authenticate_ByUsername(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "alice@x.com", "p@ss", domain.RoleBasic)
	svc := newTestAuthService(repo)

	user, err := svc.Authenticate(context.Background(), "alice", "p@ss")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Authenticate_ByEmail(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "alice@x.com", "p@ss", domain.RoleBasic)
	svc := newTestAuthService(repo)

	// identifier-type symmetry: email resolves the same principal
	user, err := svc.Authenticate(context.Background(), "alice@x.com", "p@ss")
	if err != nil {
		t.Fatalf("authenticate by email: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "alice@x.com", "p@ss", domain.RoleBasic)
	svc := newTestAuthService(repo)

	if _, err := svc.Authenticate(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownIdentifier(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	// unknown user and wrong password are the same outward signal
	if _, err := svc.Authenticate(context.Background(), "ghost", "p@ss"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "ghost@x.com", "p@ss"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Authenticate(context.Background(), "", "p@ss"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "alice", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_IssueAndResolveToken(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "alice", "alice@x.com", "p@ss", domain.RoleBasic)
	svc := newTestAuthService(repo)

	token, err := svc.IssueToken(seeded, 0)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	resolved, err := svc.ResolveToken(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve token: %v", err)
	}
	if resolved.ID != seeded.ID || resolved.Username != "alice" {
		t.Fatalf("unexpected principal: %+v", resolved)
	}
}

func TestAuthService_ResolveToken_Invalid(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.ResolveToken(context.Background(), "invalid.token.string"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_ResolveToken_DeletedPrincipal(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "alice", "alice@x.com", "p@ss", domain.RoleBasic)
	svc := newTestAuthService(repo)

	token, err := svc.IssueToken(seeded, 0)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// delete after issuance: the still-unexpired token must stop resolving
	if err := repo.Delete(context.Background(), seeded.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.ResolveToken(context.Background(), token); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Authorize_Gates(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	basic := seedUser(t, repo, "basil", "basil@x.com", "p@ss", domain.RoleBasic)
	staff := seedUser(t, repo, "stella", "stella@x.com", "p@ss", domain.RoleStaff)
	admin := seedUser(t, repo, "ada", "ada@x.com", "p@ss", domain.RoleAdmin)

	tokens := map[string]string{}
	for _, u := range []*domain.User{basic, staff, admin} {
		token, err := svc.IssueToken(u, 0)
		if err != nil {
			t.Fatalf("issue token for %s: %v", u.Username, err)
		}
		tokens[u.Username] = token
	}

	cases := []struct {
		username string
		gate     domain.Gate
		allowed  bool
	}{
		{"basil", domain.GateUser, true},
		{"stella", domain.GateUser, true},
		{"ada", domain.GateUser, true},

		{"basil", domain.GateStaff, false},
		{"stella", domain.GateStaff, true},
		{"ada", domain.GateStaff, false}, // flat model

		{"basil", domain.GateAdmin, false},
		{"stella", domain.GateAdmin, false},
		{"ada", domain.GateAdmin, true},

		{"basil", domain.GateStaffOrAdmin, false},
		{"stella", domain.GateStaffOrAdmin, true},
		{"ada", domain.GateStaffOrAdmin, true},
	}

	for _, tc := range cases {
		user, err := svc.Authorize(context.Background(), tokens[tc.username], tc.gate)
		if tc.allowed {
			if err != nil {
				t.Errorf("%s at gate %q: unexpected denial: %v", tc.username, tc.gate, err)
				continue
			}
			if user.Username != tc.username {
				t.Errorf("%s at gate %q: wrong principal %q", tc.username, tc.gate, user.Username)
			}
			continue
		}
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("%s at gate %q: expected ErrForbidden, got %v", tc.username, tc.gate, err)
		}
	}
}

func TestAuthService_Authorize_InvalidToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Authorize(context.Background(), "invalid.token.string", domain.GateUser); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_Authorize_ForgedToken(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "alice", "alice@x.com", "p@ss", domain.RoleAdmin)
	svc := newTestAuthService(repo)

	forger := NewAuthService(repo, NewTokenCodec("other-secret", time.Hour), zerolog.Nop())
	token, err := forger.IssueToken(seeded, 0)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := svc.Authorize(context.Background(), token, domain.GateAdmin); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finbrief/member-portal/internal/api/middleware"
	"github.com/finbrief/member-portal/internal/core/domain"
	"github.com/finbrief/member-portal/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
	authService ports.AuthService
}

func NewUserHandler(userService ports.UserService, authService ports.AuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=basic staff admin"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type userWithRoleResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

func toUserWithRoleResponse(u *domain.User) userWithRoleResponse {
	return userWithRoleResponse{ID: u.ID, Username: u.Username, Email: u.Email, Role: string(u.Role)}
}

// Register creates a self-registered account with the basic role.
//
// @Summary      Register a new member
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.userService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "username or email already exists"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Me resolves the caller's own bearer token to their account. A missing or
// malformed Authorization header is 401, but an invalid or expired token
// yields 403 "access forbidden" here, unlike the 401 used on the other
// protected routes; that asymmetry is part of the published surface and
// kept for compatibility.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200   {object}  userResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	token, err := middleware.BearerToken(c)
	if err != nil {
		return err
	}

	user, err := h.authService.ResolveToken(c.Request().Context(), token)
	if err != nil {
		return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create adds an account with an explicit role. Admin gate.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req.Username, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, map[string]string{"error": "username or email already exists"})
		case errors.Is(err, domain.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, toUserWithRoleResponse(user))
}

// List returns all accounts. Admin gate.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userWithRoleResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserWithRoleResponse(u))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns one account by id. Admin gate.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toUserWithRoleResponse(user))
}

// Update applies a partial update to username, email or role. Admin gate.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	update := ports.UserUpdate{Username: req.Username, Email: req.Email}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		update.Role = &role
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, map[string]string{"error": "username or email already exists"})
		case errors.Is(err, domain.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, toUserWithRoleResponse(user))
}

// Delete removes an account. Admin gate.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

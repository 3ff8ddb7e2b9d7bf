package handlers

import (
	"errors"
	"strconv"

	"rolehub/internal/core/domain"
	"rolehub/internal/core/services"
	"rolehub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateNamesRequest represents profile update request body
type UpdateNamesRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ChangePasswordRequest represents change password request body
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ListUsers handles listing/searching users (Admin only)
// @Summary List users
// @Description List all users, optionally filtered by one of firstName, lastName, email or search (Admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param firstName query string false "Filter by first name"
// @Param lastName query string false "Filter by last name"
// @Param email query string false "Filter by email"
// @Param search query string false "Search across names and email"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	input := &services.SearchUsersInput{
		FirstName: c.Query("firstName"),
		LastName:  c.Query("lastName"),
		Email:     c.Query("email"),
		Search:    c.Query("search"),
	}

	users, err := h.userService.ListUsers(c.Context(), input)
	if err != nil {
		return domain.Internal("Failed to list users")
	}

	return response.Success(c, "users are here", fiber.Map{
		"users": users,
	})
}

// GetMe returns the caller's own account
// @Summary Get own account
// @Description Get the authenticated user's account
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	return h.getUser(c, userID)
}

// GetUser handles getting a user by ID (Admin only)
// @Summary Get user by ID
// @Description Get a specific user by ID (Admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	return h.getUser(c, id)
}

func (h *UserHandler) getUser(c *fiber.Ctx, id uint) error {
	user, err := h.userService.GetUserByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return domain.NotFound("user is not found")
		}
		return domain.Internal("Failed to get user")
	}

	return response.Success(c, "This is the user", fiber.Map{
		"user": user,
	})
}

// UpdateMe updates the caller's own names
// @Summary Update own account
// @Description Update the authenticated user's first and/or last name
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateNamesRequest true "Names to update"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	return h.updateUser(c, userID)
}

// UpdateUser handles updating a user's names by ID (Admin only)
// @Summary Update user
// @Description Update a user's first and/or last name (Admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body UpdateNamesRequest true "Names to update"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	return h.updateUser(c, id)
}

func (h *UserHandler) updateUser(c *fiber.Ctx, id uint) error {
	var req UpdateNamesRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.BadRequest("Invalid request body")
	}

	if req.FirstName == "" && req.LastName == "" {
		return domain.BadRequest("You can edit firstName or lastName only")
	}

	input := &services.UpdateNamesInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := h.userService.UpdateNames(c.Context(), id, input); err != nil {
		var appErr *domain.AppError
		switch {
		case errors.As(err, &appErr):
			return appErr
		case errors.Is(err, services.ErrUserNotFound):
			return domain.NotFound("user is not found")
		default:
			return domain.Internal("Failed to update user")
		}
	}

	return response.Success(c, "updated user successfully", nil)
}

// ChangeMyPassword changes the caller's password
// @Summary Change own password
// @Description Change the authenticated user's password
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangePasswordRequest true "Old and new password"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users/me/password [put]
func (h *UserHandler) ChangeMyPassword(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.BadRequest("Invalid request body")
	}

	if req.OldPassword == "" || req.NewPassword == "" {
		return domain.BadRequest("oldPassword and newPassword are required")
	}

	if err := h.userService.ChangePassword(c.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		var appErr *domain.AppError
		switch {
		case errors.As(err, &appErr):
			return appErr
		case errors.Is(err, services.ErrOldPasswordWrong):
			return domain.BadRequest("old password is wrong")
		case errors.Is(err, services.ErrUserNotFound):
			return domain.NotFound("user is not found")
		default:
			return domain.Internal("Failed to change password")
		}
	}

	return response.Success(c, "updated password successfully", nil)
}

// DeleteMe deletes the caller's own account
// @Summary Delete own account
// @Description Delete the authenticated user's account
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	return h.deleteUser(c, userID)
}

// DeleteUser handles deleting a user by ID (Admin only)
// @Summary Delete user
// @Description Delete a user by ID (Admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	return h.deleteUser(c, id)
}

func (h *UserHandler) deleteUser(c *fiber.Ctx, id uint) error {
	if err := h.userService.DeleteUser(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return domain.NotFound("user is not found")
		}
		return domain.Internal("Failed to delete user")
	}

	return response.Success(c, "deleted user successfully", nil)
}

// parseIDParam parses the :id path parameter
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, domain.BadRequest("Invalid ID")
	}
	return uint(id), nil
}

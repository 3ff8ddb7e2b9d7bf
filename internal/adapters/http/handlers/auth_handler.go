package handlers

import (
	"errors"
	"strings"

	"rolehub/internal/core/domain"
	"rolehub/internal/core/services"
	"rolehub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles registration, login and password reset
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmailRequest carries just an email address
type EmailRequest struct {
	Email string `json:"email"`
}

// VerifyCodeRequest represents verification-code check request body
type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResetPasswordRequest represents password reset request body
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// Register handles user registration
// @Summary Register new user
// @Description Register a new user account with the default USER role
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.BadRequest("Invalid request body")
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return domain.BadRequest("firstName, lastName, email and password are required")
	}

	input := &services.RegisterInput{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		var appErr *domain.AppError
		switch {
		case errors.As(err, &appErr):
			return appErr
		case errors.Is(err, services.ErrUserAlreadyExists):
			return domain.BadRequest("user already exists")
		default:
			return domain.Internal("Failed to register user")
		}
	}

	return response.Created(c, "You registered successfully", fiber.Map{
		"user": user,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate a user and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.BadRequest("Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return domain.BadRequest("email and password are required")
	}

	token, user, err := h.authService.Login(c.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return domain.NotFound("user not found")
		case errors.Is(err, services.ErrWrongPassword):
			return domain.BadRequest("password is wrong")
		default:
			return domain.Internal("Failed to login")
		}
	}

	return response.Success(c, "You login successfully", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// SendVerificationCode emails a password-reset code
// @Summary Send verification code
// @Description Email a one-time password-reset code to the user
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body EmailRequest true "User email"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/verification-code/send [post]
func (h *AuthHandler) SendVerificationCode(c *fiber.Ctx) error {
	var req EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.BadRequest("Invalid request body")
	}

	if req.Email == "" {
		return domain.BadRequest("email is required")
	}

	if err := h.authService.SendVerificationCode(c.Context(), strings.TrimSpace(req.Email)); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return domain.NotFound("user is not found")
		default:
			return domain.Internal("Failed to send verification code")
		}
	}

	return response.Success(c, "verification code sent to your email", nil)
}

// VerifyVerificationCode checks a password-reset code
// @Summary Verify verification code
// @Description Check a password-reset code without consuming it
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body VerifyCodeRequest true "Email and code"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/verification-code/verify [post]
func (h *AuthHandler) VerifyVerificationCode(c *fiber.Ctx) error {
	var req VerifyCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.BadRequest("Invalid request body")
	}

	if req.Email == "" || req.Code == "" {
		return domain.BadRequest("email and code are required")
	}

	if err := h.authService.VerifyVerificationCode(c.Context(), strings.TrimSpace(req.Email), req.Code); err != nil {
		return mapVerificationError(err)
	}

	return response.Success(c, "verification code is correct", nil)
}

// ResetPassword sets a new password using an emailed code
// @Summary Reset password
// @Description Set a new password after verifying the emailed code
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "Email, code and new password"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/password/reset [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.BadRequest("Invalid request body")
	}

	if req.Email == "" || req.Code == "" || req.NewPassword == "" {
		return domain.BadRequest("email, code and newPassword are required")
	}

	err := h.authService.ResetPassword(c.Context(), strings.TrimSpace(req.Email), req.Code, req.NewPassword)
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return mapVerificationError(err)
	}

	return response.Success(c, "password changed successfully", nil)
}

func mapVerificationError(err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return domain.NotFound("user is not found")
	case errors.Is(err, services.ErrInvalidVerificationCode):
		return domain.BadRequest("verification code is wrong")
	case errors.Is(err, services.ErrVerificationCodeExpired):
		return domain.BadRequest("verification code expired, please request a new one")
	default:
		return domain.Internal("Failed to verify code")
	}
}

package middleware

import (
	"strings"

	"rolehub/internal/config"
	"rolehub/internal/core/domain"
	"rolehub/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware verifies the bearer credential and attaches the
// caller's identity claims to the request context. It never re-fetches
// the user; the claims inside the token are authoritative for the
// lifetime of the token.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return domain.Unauthorized("Please sign in to continue.")
		}

		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			return domain.Unauthorized("Session expired, please sign in again.")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return domain.Unauthorized("Please sign in to continue.")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return domain.Forbidden("You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the ADMIN role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

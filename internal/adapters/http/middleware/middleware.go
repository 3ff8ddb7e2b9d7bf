package middleware

import (
	"errors"
	"time"

	"rolehub/internal/config"
	"rolehub/internal/core/domain"
	"rolehub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Setup configures all application-wide middlewares
func Setup(app *fiber.App, cfg *config.Config) {
	// Recover middleware - catches panics
	app.Use(recover.New())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Security headers
	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// General rate limit: 100 requests per minute per IP
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return domain.NewAppError("Too many requests, please wait a moment", fiber.StatusTooManyRequests)
		},
	}))

	// Request logging
	if cfg.IsDev() {
		app.Use(logger.New(logger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
		}))
	} else {
		app.Use(logger.New(logger.Config{
			Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	// CORS
	if cfg.IsDev() {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     "*",
			AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
			AllowCredentials: false,
		}))
	} else {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.GetAllowedOrigins(),
			AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
			AllowCredentials: true,
		}))
	}
}

// AuthRateLimiter creates a stricter rate limiter for auth endpoints
// (5 requests per minute per IP)
func AuthRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "-auth"
		},
		LimitReached: func(c *fiber.Ctx) error {
			return domain.NewAppError("Too many attempts, please wait a minute", fiber.StatusTooManyRequests)
		},
	})
}

// StrictRateLimiter creates an even stricter rate limiter for the
// password-reset endpoints (3 requests per minute per IP)
func StrictRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        3,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "-strict"
		},
		LimitReached: func(c *fiber.Ctx) error {
			return domain.NewAppError("Rate limit exceeded, please wait before retrying", fiber.StatusTooManyRequests)
		},
	})
}

// ErrorHandler is the single error responder: every signaled error in
// the application funnels here and renders as the uniform envelope.
// Nothing else writes error responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Code).JSON(response.Envelope{
			Status:  appErr.Status,
			Message: appErr.Message,
			Code:    appErr.Code,
			Data:    nil,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := domain.CategoryFail
		if fiberErr.Code >= fiber.StatusInternalServerError {
			status = domain.CategoryError
		}
		return c.Status(fiberErr.Code).JSON(response.Envelope{
			Status:  status,
			Message: fiberErr.Message,
			Code:    fiberErr.Code,
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(response.Envelope{
		Status:  domain.CategoryError,
		Message: "Internal Server Error",
		Code:    fiber.StatusInternalServerError,
		Data:    nil,
	})
}

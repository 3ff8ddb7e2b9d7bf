package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"rolehub/internal/adapters/persistence/models"
	"rolehub/internal/adapters/persistence/repositories"
	"rolehub/internal/config"
	"rolehub/internal/pkg/jwt"
	"rolehub/internal/pkg/password"
	"rolehub/internal/pkg/validate"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auth errors
var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserAlreadyExists       = errors.New("user already exists")
	ErrWrongPassword           = errors.New("password is wrong")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrVerificationCodeExpired = errors.New("verification code expired")
)

// verificationCodeTTL is how long an emailed reset code stays valid
const verificationCodeTTL = 10 * time.Minute

// Mailer delivers outbound account email. Failure propagates to the
// caller; there are no retries.
type Mailer interface {
	SendVerificationCode(to, firstName, code string) error
}

// AuthService handles registration, login and the password-reset flow
type AuthService struct {
	userRepo repositories.UserRepository
	mailer   Mailer
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, mailer Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Register registers a new user with the default USER role
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.UserResponse, error) {
	// 1. Run the validation pipeline; the first violated rule wins
	if err := validate.Name(input.FirstName); err != nil {
		return nil, err
	}
	if err := validate.Name(input.LastName); err != nil {
		return nil, err
	}
	if err := validate.Email(input.Email); err != nil {
		return nil, err
	}
	if err := validate.Password(input.Password); err != nil {
		return nil, err
	}

	// 2. Enforce email uniqueness
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	// 3. Hash password
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 4. Create user
	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashedPassword,
		Role:      "USER",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Email)

	return user.ToResponse(), nil
}

// Login authenticates a user and issues an access token. The token is
// stored on the user row (single-session tracking).
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (string, *models.UserResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}

	if !password.Verify(plainPassword, user.Password) {
		return "", nil, ErrWrongPassword
	}

	token, err := jwt.GenerateAccessToken(
		user.ID,
		user.Email,
		user.Role,
		uuid.NewString(),
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return "", nil, err
	}

	user.Token = &token
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", nil, err
	}

	log.Printf("✅ User logged in: %s", user.Email)

	return token, user.ToResponse(), nil
}

// SendVerificationCode generates a one-time reset code, stores it with
// an expiry, and emails it to the user.
func (s *AuthService) SendVerificationCode(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code, err := generateVerificationCode(6)
	if err != nil {
		return err
	}

	expires := time.Now().Add(verificationCodeTTL)
	user.VerificationCode = &code
	user.VerificationExpiresAt = &expires
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.mailer.SendVerificationCode(user.Email, user.FirstName, code)
}

// VerifyVerificationCode checks a reset code without consuming it
func (s *AuthService) VerifyVerificationCode(ctx context.Context, email, code string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return checkVerificationCode(user, code)
}

// ResetPassword sets a new password after re-verifying the emailed
// code. On success the code and the stored session token are cleared.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := checkVerificationCode(user, code); err != nil {
		return err
	}

	if err := validate.Password(newPassword); err != nil {
		return err
	}

	hashedPassword, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	user.VerificationCode = nil
	user.VerificationExpiresAt = nil
	user.Token = nil

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	log.Printf("✅ Password reset for: %s", user.Email)
	return nil
}

func checkVerificationCode(user *models.User, code string) error {
	if user.VerificationCode == nil || *user.VerificationCode != code {
		return ErrInvalidVerificationCode
	}
	if user.VerificationExpiresAt == nil || time.Now().After(*user.VerificationExpiresAt) {
		return ErrVerificationCodeExpired
	}
	return nil
}

// generateVerificationCode generates a cryptographically secure numeric code
func generateVerificationCode(length int) (string, error) {
	result := ""
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		result += fmt.Sprintf("%d", n.Int64())
	}
	return result, nil
}

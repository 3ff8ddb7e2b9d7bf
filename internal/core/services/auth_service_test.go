package services_test

import (
	"context"
	"testing"
	"time"

	"rolehub/internal/adapters/persistence/models"
	"rolehub/internal/config"
	"rolehub/internal/core/domain"
	"rolehub/internal/core/services"
	"rolehub/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:          "test_jwt_secret",
			AccessTokenMins: 60,
		},
	}
}

func newAuthService() (*services.AuthService, *MockUserRepository, *MockMailer) {
	userRepo := new(MockUserRepository)
	mailer := new(MockMailer)
	return services.NewAuthService(userRepo, mailer, testConfig()), userRepo, mailer
}

func hashFor(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Register(t *testing.T) {
	svc, userRepo, _ := newAuthService()
	ctx := context.Background()

	input := &services.RegisterInput{
		FirstName: "Ahmed",
		LastName:  "Hassan",
		Email:     "ahmed@example.com",
		Password:  "Abc1234!",
	}

	userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
	userRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := svc.Register(ctx, input)
	assert.NoError(t, err)
	assert.Equal(t, "ahmed@example.com", user.Email)
	assert.Equal(t, "USER", user.Role)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, userRepo, _ := newAuthService()
	ctx := context.Background()

	input := &services.RegisterInput{
		FirstName: "Ahmed",
		LastName:  "Hassan",
		Email:     "ahmed@example.com",
		Password:  "Abc1234!",
	}

	userRepo.On("ExistsByEmail", ctx, input.Email).Return(true, nil).Once()

	_, err := svc.Register(ctx, input)
	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_ValidationOrder(t *testing.T) {
	svc, userRepo, _ := newAuthService()
	ctx := context.Background()

	// Validation runs before the uniqueness lookup
	_, err := svc.Register(ctx, &services.RegisterInput{
		FirstName: "ahmed",
		LastName:  "Hassan",
		Email:     "ahmed@example.com",
		Password:  "Abc1234!",
	})
	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "first letter must be capital in ahmed", appErr.Message)
	assert.Equal(t, 400, appErr.Code)

	_, err = svc.Register(ctx, &services.RegisterInput{
		FirstName: "Ahmed",
		LastName:  "Hassan",
		Email:     "not-an-email",
		Password:  "Abc1234!",
	})
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid Email", appErr.Message)

	userRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	svc, userRepo, _ := newAuthService()
	ctx := context.Background()

	user := &models.User{
		ID:        4,
		FirstName: "Ahmed",
		Email:     "ahmed@example.com",
		Password:  hashFor(t, "Abc1234!"),
		Role:      "USER",
	}

	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
	userRepo.On("Update", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

	token, response, err := svc.Login(ctx, user.Email, "Abc1234!")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(4), response.ID)

	// The issued token carries the identity claims
	claims, err := jwt.ValidateAccessToken(token, "test_jwt_secret")
	assert.NoError(t, err)
	assert.Equal(t, uint(4), claims.UserID)
	assert.Equal(t, "USER", claims.Role)

	// The token is persisted on the user row
	assert.NotNil(t, user.Token)
	assert.Equal(t, token, *user.Token)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, _ := newAuthService()
	ctx := context.Background()

	user := &models.User{ID: 4, Email: "ahmed@example.com", Password: hashFor(t, "Abc1234!")}
	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

	_, _, err := svc.Login(ctx, user.Email, "Wrong123!")
	assert.ErrorIs(t, err, services.ErrWrongPassword)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, userRepo, _ := newAuthService()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound).Once()

	_, _, err := svc.Login(ctx, "nobody@example.com", "Abc1234!")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestAuthService_SendVerificationCode(t *testing.T) {
	svc, userRepo, mailer := newAuthService()
	ctx := context.Background()

	user := &models.User{ID: 4, FirstName: "Ahmed", Email: "ahmed@example.com"}
	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
	userRepo.On("Update", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()
	mailer.On("SendVerificationCode", user.Email, "Ahmed", mock.AnythingOfType("string")).Return(nil).Once()

	err := svc.SendVerificationCode(ctx, user.Email)
	assert.NoError(t, err)

	// A 6-digit code with an expiry is stored before the mail goes out
	assert.NotNil(t, user.VerificationCode)
	assert.Len(t, *user.VerificationCode, 6)
	assert.NotNil(t, user.VerificationExpiresAt)
	assert.True(t, user.VerificationExpiresAt.After(time.Now()))

	mailer.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestAuthService_VerifyVerificationCode(t *testing.T) {
	svc, userRepo, _ := newAuthService()
	ctx := context.Background()

	code := "123456"
	future := time.Now().Add(5 * time.Minute)
	user := &models.User{ID: 4, Email: "ahmed@example.com", VerificationCode: &code, VerificationExpiresAt: &future}
	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)

	assert.NoError(t, svc.VerifyVerificationCode(ctx, user.Email, "123456"))

	err := svc.VerifyVerificationCode(ctx, user.Email, "999999")
	assert.ErrorIs(t, err, services.ErrInvalidVerificationCode)

	past := time.Now().Add(-time.Minute)
	user.VerificationExpiresAt = &past
	err = svc.VerifyVerificationCode(ctx, user.Email, "123456")
	assert.ErrorIs(t, err, services.ErrVerificationCodeExpired)
}

func TestAuthService_ResetPassword(t *testing.T) {
	svc, userRepo, _ := newAuthService()
	ctx := context.Background()

	code := "123456"
	future := time.Now().Add(5 * time.Minute)
	sessionToken := "old-session-token"
	user := &models.User{
		ID:                    4,
		Email:                 "ahmed@example.com",
		Password:              hashFor(t, "Old1234!"),
		VerificationCode:      &code,
		VerificationExpiresAt: &future,
		Token:                 &sessionToken,
	}

	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
	userRepo.On("Update", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := svc.ResetPassword(ctx, user.Email, "123456", "New1234!")
	assert.NoError(t, err)

	// The code and the stored session token are both cleared
	assert.Nil(t, user.VerificationCode)
	assert.Nil(t, user.VerificationExpiresAt)
	assert.Nil(t, user.Token)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("New1234!")))
	userRepo.AssertExpectations(t)
}

func TestAuthService_ResetPassword_WrongCode(t *testing.T) {
	svc, userRepo, _ := newAuthService()
	ctx := context.Background()

	code := "123456"
	future := time.Now().Add(5 * time.Minute)
	user := &models.User{ID: 4, Email: "ahmed@example.com", VerificationCode: &code, VerificationExpiresAt: &future}
	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

	err := svc.ResetPassword(ctx, user.Email, "999999", "New1234!")
	assert.ErrorIs(t, err, services.ErrInvalidVerificationCode)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAuthService_ResetPassword_WeakPassword(t *testing.T) {
	svc, userRepo, _ := newAuthService()
	ctx := context.Background()

	code := "123456"
	future := time.Now().Add(5 * time.Minute)
	user := &models.User{ID: 4, Email: "ahmed@example.com", VerificationCode: &code, VerificationExpiresAt: &future}
	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

	err := svc.ResetPassword(ctx, user.Email, "123456", "weak")
	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

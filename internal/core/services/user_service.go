package services

import (
	"context"
	"errors"
	"log"

	"rolehub/internal/adapters/persistence/models"
	"rolehub/internal/adapters/persistence/repositories"
	"rolehub/internal/pkg/password"
	"rolehub/internal/pkg/validate"

	"gorm.io/gorm"
)

// User service errors
var (
	ErrOldPasswordWrong = errors.New("old password is incorrect")
)

// UserService handles user management business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// SearchUsersInput represents user search input. Precedence follows
// the query surface: firstName, then lastName, then email, then the
// combined search term.
type SearchUsersInput struct {
	FirstName string
	LastName  string
	Email     string
	Search    string
}

// ListUsers lists users, optionally narrowed by one search dimension
func (s *UserService) ListUsers(ctx context.Context, input *SearchUsersInput) ([]*models.UserResponse, error) {
	filter := repositories.UserSearchFilter{}
	switch {
	case input.FirstName != "":
		filter.FirstName = input.FirstName
	case input.LastName != "":
		filter.LastName = input.LastName
	case input.Email != "":
		filter.Email = input.Email
	case input.Search != "":
		filter.Search = input.Search
	}

	users, err := s.userRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateNamesInput represents profile update input. Only the name
// fields are editable here; the role is mutated exclusively by the
// request-acceptance cascade or the admin role update.
type UpdateNamesInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateNames updates a user's first and/or last name
func (s *UserService) UpdateNames(ctx context.Context, id uint, input *UpdateNamesInput) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if input.FirstName != "" {
		if err := validate.Name(input.FirstName); err != nil {
			return err
		}
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		if err := validate.Name(input.LastName); err != nil {
			return err
		}
		user.LastName = input.LastName
	}

	return s.userRepo.Update(ctx, user)
}

// ChangePassword changes a user's password after checking the old one
func (s *UserService) ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !password.Verify(oldPassword, user.Password) {
		return ErrOldPasswordWrong
	}

	if err := validate.Password(newPassword); err != nil {
		return err
	}

	hashedPassword, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	log.Printf("✅ Password changed for user %d", id)
	return nil
}

// DeleteUser deletes a user
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

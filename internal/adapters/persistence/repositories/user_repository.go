package repositories

import (
	"context"
	"time"

	"rolehub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail gets a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail checks if email exists
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Update saves all fields of a user
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// UpdateRole writes only the role column. Used by the request-acceptance
// cascade, which must not touch any other user field.
func (r *userRepository) UpdateRole(ctx context.Context, id uint, role string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("role", role).Error
}

// Delete soft deletes a user
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

// Search lists users, optionally narrowed by one name/email filter.
// Matching is a case-insensitive substring match.
func (r *userRepository) Search(ctx context.Context, filter UserSearchFilter) ([]*models.User, error) {
	var users []*models.User
	query := r.db.WithContext(ctx).Model(&models.User{})

	switch {
	case filter.FirstName != "":
		query = query.Where("first_name LIKE ?", "%"+filter.FirstName+"%")
	case filter.LastName != "":
		query = query.Where("last_name LIKE ?", "%"+filter.LastName+"%")
	case filter.Email != "":
		query = query.Where("email LIKE ?", "%"+filter.Email+"%")
	case filter.Search != "":
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ?",
			pattern, pattern, pattern,
		)
	}

	err := query.Order("created_at DESC").Find(&users).Error
	return users, err
}

// PurgeExpiredVerificationCodes clears reset codes that expired before now
func (r *userRepository) PurgeExpiredVerificationCodes(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("verification_code IS NOT NULL AND verification_expires_at < ?", now).
		Updates(map[string]interface{}{
			"verification_code":       nil,
			"verification_expires_at": nil,
		})
	return result.RowsAffected, result.Error
}

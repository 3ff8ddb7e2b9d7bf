package repositories

import (
	"context"
	"time"

	"rolehub/internal/adapters/persistence/models"
)

// UserSearchFilter narrows a user listing. Only one of the fields is
// ever set by callers; Search matches across first name, last name and
// email at once.
type UserSearchFilter struct {
	FirstName string
	LastName  string
	Email     string
	Search    string
}

// UserRepository defines user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, id uint, role string) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, filter UserSearchFilter) ([]*models.User, error)
	PurgeExpiredVerificationCodes(ctx context.Context, now time.Time) (int64, error)
}

// RequestFilter narrows a role-request listing. Status and Content are
// mutually exclusive; callers resolve the precedence (status first)
// before building the filter.
type RequestFilter struct {
	UserID  *uint
	Status  string
	Content string
}

// RequestRepository defines role-request data access
type RequestRepository interface {
	Create(ctx context.Context, request *models.RoleRequest) error
	GetByID(ctx context.Context, id uint) (*models.RoleRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]*models.RoleRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	UpdateContent(ctx context.Context, id uint, content string) error
	Delete(ctx context.Context, id uint) error
	DeletePendingByUser(ctx context.Context, userID uint) error
}

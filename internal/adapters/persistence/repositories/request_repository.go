package repositories

import (
	"context"

	"rolehub/internal/adapters/persistence/models"
	"rolehub/internal/core/domain"

	"gorm.io/gorm"
)

// requestRepository implements RequestRepository interface
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new role-request repository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// Create creates a new role request
func (r *requestRepository) Create(ctx context.Context, request *models.RoleRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID gets a role request by ID
func (r *requestRepository) GetByID(ctx context.Context, id uint) (*models.RoleRequest, error) {
	var request models.RoleRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// List lists role requests matching the filter. No pagination: the
// result set is intentionally unbounded.
func (r *requestRepository) List(ctx context.Context, filter RequestFilter) ([]*models.RoleRequest, error) {
	var requests []*models.RoleRequest
	query := r.db.WithContext(ctx).Model(&models.RoleRequest{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	} else if filter.Content != "" {
		query = query.Where("request_content = ?", filter.Content)
	}

	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// UpdateStatus writes only the status column
func (r *requestRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&models.RoleRequest{}).Where("id = ?", id).
		Update("status", status).Error
}

// UpdateContent writes only the request_content column. The status is
// deliberately untouched: a content edit does not reset it.
func (r *requestRepository) UpdateContent(ctx context.Context, id uint, content string) error {
	return r.db.WithContext(ctx).Model(&models.RoleRequest{}).Where("id = ?", id).
		Update("request_content", content).Error
}

// Delete deletes a role request
func (r *requestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.RoleRequest{}, id).Error
}

// DeletePendingByUser deletes every Pending request owned by a user.
// A just-accepted request is no longer Pending, so the accept cascade
// never deletes the request it acted on.
func (r *requestRepository) DeletePendingByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.StatusPending).
		Delete(&models.RoleRequest{}).Error
}

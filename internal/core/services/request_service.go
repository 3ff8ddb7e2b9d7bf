package services

import (
	"context"
	"errors"
	"log"

	"rolehub/internal/adapters/persistence/models"
	"rolehub/internal/adapters/persistence/repositories"
	"rolehub/internal/core/domain"

	"gorm.io/gorm"
)

// Request service errors
var (
	ErrRequestNotFound       = errors.New("request not found")
	ErrNotRequestOwner       = errors.New("request belongs to another user")
	ErrInvalidRequestContent = errors.New("request content is not a promotable role")
	ErrInvalidRequestStatus  = errors.New("invalid request status")
	ErrRequestOwnerMissing   = errors.New("request owner no longer exists")
)

// RequestService orchestrates the role-request lifecycle: self-service
// CRUD for owners and the accept/reject transition for administrators.
type RequestService struct {
	requestRepo repositories.RequestRepository
	userRepo    repositories.UserRepository
}

// NewRequestService creates a new request service
func NewRequestService(
	requestRepo repositories.RequestRepository,
	userRepo repositories.UserRepository,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

// ListRequestsInput represents optional list filters. Status takes
// precedence over Content; only one dimension is ever applied.
type ListRequestsInput struct {
	Status  string
	Content string
}

func (input *ListRequestsInput) toFilter() repositories.RequestFilter {
	filter := repositories.RequestFilter{}
	if input.Status != "" {
		filter.Status = input.Status
	} else if input.Content != "" {
		filter.Content = input.Content
	}
	return filter
}

// List lists requests across all users (admin view)
func (s *RequestService) List(ctx context.Context, input *ListRequestsInput) ([]*models.RoleRequest, error) {
	return s.requestRepo.List(ctx, input.toFilter())
}

// ListByOwner lists the requests of a single user
func (s *RequestService) ListByOwner(ctx context.Context, ownerID uint, input *ListRequestsInput) ([]*models.RoleRequest, error) {
	filter := input.toFilter()
	filter.UserID = &ownerID
	return s.requestRepo.List(ctx, filter)
}

// Create files a new role request for ownerID with status Pending
func (s *RequestService) Create(ctx context.Context, ownerID uint, content string) (*models.RoleRequest, error) {
	if !domain.IsPromotableRole(content) {
		return nil, ErrInvalidRequestContent
	}

	request := &models.RoleRequest{
		UserID:         ownerID,
		RequestContent: content,
		Status:         domain.StatusPending,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// GetByID gets a request by ID (admin view)
func (s *RequestService) GetByID(ctx context.Context, id uint) (*models.RoleRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return request, nil
}

// UpdateStatus writes a new status onto a request. Transitioning to
// Acceptable additionally promotes the owning user to the requested
// role and deletes their remaining Pending requests.
//
// The status write, the role write and the bulk delete are three
// sequential statements, not a transaction; a crash in between leaves
// them out of sync. Accepted weak-consistency design.
func (s *RequestService) UpdateStatus(ctx context.Context, id uint, status string) error {
	request, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.IsRequestStatus(status) {
		return ErrInvalidRequestStatus
	}

	if status == domain.StatusAcceptable {
		// Resolve the owner before any write so a dangling reference
		// cannot produce a half-applied cascade.
		if _, err := s.userRepo.GetByID(ctx, request.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestOwnerMissing
			}
			return err
		}
	}

	if err := s.requestRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	if status == domain.StatusAcceptable {
		if err := s.userRepo.UpdateRole(ctx, request.UserID, request.RequestContent); err != nil {
			return err
		}
		if err := s.requestRepo.DeletePendingByUser(ctx, request.UserID); err != nil {
			return err
		}
		log.Printf("✅ Request #%d accepted: user %d promoted to %s", id, request.UserID, request.RequestContent)
	}

	return nil
}

// Delete deletes a request by ID (admin view)
func (s *RequestService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.requestRepo.Delete(ctx, id)
}

// GetOwned gets a request by ID, enforcing that ownerID owns it
func (s *RequestService) GetOwned(ctx context.Context, id, ownerID uint) (*models.RoleRequest, error) {
	request, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.UserID != ownerID {
		return nil, ErrNotRequestOwner
	}
	return request, nil
}

// UpdateOwnedContent overwrites the requested role on a request owned
// by ownerID. The status is untouched: editing an already-decided
// request leaves its terminal status intact.
func (s *RequestService) UpdateOwnedContent(ctx context.Context, id, ownerID uint, content string) error {
	if _, err := s.GetOwned(ctx, id, ownerID); err != nil {
		return err
	}
	if !domain.IsPromotableRole(content) {
		return ErrInvalidRequestContent
	}
	return s.requestRepo.UpdateContent(ctx, id, content)
}

// DeleteOwned deletes a request owned by ownerID
func (s *RequestService) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	if _, err := s.GetOwned(ctx, id, ownerID); err != nil {
		return err
	}
	return s.requestRepo.Delete(ctx, id)
}

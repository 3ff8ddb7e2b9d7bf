package services_test

import (
	"context"
	"testing"

	"rolehub/internal/adapters/persistence/models"
	"rolehub/internal/adapters/persistence/repositories"
	"rolehub/internal/core/domain"
	"rolehub/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newRequestService() (*services.RequestService, *MockRequestRepository, *MockUserRepository) {
	requestRepo := new(MockRequestRepository)
	userRepo := new(MockUserRepository)
	return services.NewRequestService(requestRepo, userRepo), requestRepo, userRepo
}

func TestRequestService_Create(t *testing.T) {
	svc, requestRepo, _ := newRequestService()
	ctx := context.Background()

	requestRepo.On("Create", ctx, mock.AnythingOfType("*models.RoleRequest")).Return(nil).Once()

	request, err := svc.Create(ctx, 7, "SELLER")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), request.UserID)
	assert.Equal(t, "SELLER", request.RequestContent)
	assert.Equal(t, domain.StatusPending, request.Status)
	requestRepo.AssertExpectations(t)
}

func TestRequestService_Create_InvalidContent(t *testing.T) {
	svc, requestRepo, _ := newRequestService()
	ctx := context.Background()

	// ADMIN is not a promotable role, nothing may be persisted
	_, err := svc.Create(ctx, 7, "ADMIN")
	assert.ErrorIs(t, err, services.ErrInvalidRequestContent)

	_, err = svc.Create(ctx, 7, "seller")
	assert.ErrorIs(t, err, services.ErrInvalidRequestContent)

	requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRequestService_ListFilterPrecedence(t *testing.T) {
	svc, requestRepo, _ := newRequestService()
	ctx := context.Background()

	// Status wins over content when both are given
	requestRepo.On("List", ctx, repositories.RequestFilter{Status: "Pending"}).
		Return([]*models.RoleRequest{}, nil).Once()

	_, err := svc.List(ctx, &services.ListRequestsInput{Status: "Pending", Content: "SELLER"})
	assert.NoError(t, err)

	// Content applies only when status is absent
	requestRepo.On("List", ctx, repositories.RequestFilter{Content: "SELLER"}).
		Return([]*models.RoleRequest{}, nil).Once()

	_, err = svc.List(ctx, &services.ListRequestsInput{Content: "SELLER"})
	assert.NoError(t, err)

	requestRepo.AssertExpectations(t)
}

func TestRequestService_ListByOwner(t *testing.T) {
	svc, requestRepo, _ := newRequestService()
	ctx := context.Background()
	ownerID := uint(3)

	requestRepo.On("List", ctx, repositories.RequestFilter{UserID: &ownerID, Status: "Pending"}).
		Return([]*models.RoleRequest{{ID: 1, UserID: 3}}, nil).Once()

	requests, err := svc.ListByOwner(ctx, ownerID, &services.ListRequestsInput{Status: "Pending"})
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	requestRepo.AssertExpectations(t)
}

func TestRequestService_UpdateStatus_Accept(t *testing.T) {
	svc, requestRepo, userRepo := newRequestService()
	ctx := context.Background()

	request := &models.RoleRequest{ID: 5, UserID: 9, RequestContent: "SELLER", Status: domain.StatusPending}
	owner := &models.User{ID: 9, Role: "USER"}

	requestRepo.On("GetByID", ctx, uint(5)).Return(request, nil).Once()
	userRepo.On("GetByID", ctx, uint(9)).Return(owner, nil).Once()
	requestRepo.On("UpdateStatus", ctx, uint(5), domain.StatusAcceptable).Return(nil).Once()
	userRepo.On("UpdateRole", ctx, uint(9), "SELLER").Return(nil).Once()
	requestRepo.On("DeletePendingByUser", ctx, uint(9)).Return(nil).Once()

	err := svc.UpdateStatus(ctx, 5, domain.StatusAcceptable)
	assert.NoError(t, err)
	requestRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestRequestService_UpdateStatus_Reject(t *testing.T) {
	svc, requestRepo, userRepo := newRequestService()
	ctx := context.Background()

	request := &models.RoleRequest{ID: 5, UserID: 9, RequestContent: "SELLER", Status: domain.StatusPending}

	requestRepo.On("GetByID", ctx, uint(5)).Return(request, nil).Once()
	requestRepo.On("UpdateStatus", ctx, uint(5), domain.StatusUnacceptable).Return(nil).Once()

	// Rejecting must not touch the user or the sibling requests
	err := svc.UpdateStatus(ctx, 5, domain.StatusUnacceptable)
	assert.NoError(t, err)

	userRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	requestRepo.AssertNotCalled(t, "DeletePendingByUser", mock.Anything, mock.Anything)
	requestRepo.AssertExpectations(t)
}

func TestRequestService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, requestRepo, _ := newRequestService()
	ctx := context.Background()

	request := &models.RoleRequest{ID: 5, UserID: 9, RequestContent: "SELLER", Status: domain.StatusPending}
	requestRepo.On("GetByID", ctx, uint(5)).Return(request, nil).Once()

	err := svc.UpdateStatus(ctx, 5, "Approved")
	assert.ErrorIs(t, err, services.ErrInvalidRequestStatus)

	requestRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestService_UpdateStatus_OwnerMissing(t *testing.T) {
	svc, requestRepo, userRepo := newRequestService()
	ctx := context.Background()

	request := &models.RoleRequest{ID: 5, UserID: 9, RequestContent: "SELLER", Status: domain.StatusPending}
	requestRepo.On("GetByID", ctx, uint(5)).Return(request, nil).Once()
	userRepo.On("GetByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound).Once()

	// A dangling owner reference must abort before any write
	err := svc.UpdateStatus(ctx, 5, domain.StatusAcceptable)
	assert.ErrorIs(t, err, services.ErrRequestOwnerMissing)

	requestRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestService_UpdateStatus_NotFound(t *testing.T) {
	svc, requestRepo, _ := newRequestService()
	ctx := context.Background()

	requestRepo.On("GetByID", ctx, uint(404)).Return(nil, gorm.ErrRecordNotFound).Once()

	err := svc.UpdateStatus(ctx, 404, domain.StatusAcceptable)
	assert.ErrorIs(t, err, services.ErrRequestNotFound)
}

func TestRequestService_Delete_NotFound(t *testing.T) {
	svc, requestRepo, _ := newRequestService()
	ctx := context.Background()

	// Deleting an already-deleted request reports not found
	requestRepo.On("GetByID", ctx, uint(404)).Return(nil, gorm.ErrRecordNotFound).Once()

	err := svc.Delete(ctx, 404)
	assert.ErrorIs(t, err, services.ErrRequestNotFound)
	requestRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRequestService_GetOwned_Ownership(t *testing.T) {
	svc, requestRepo, _ := newRequestService()
	ctx := context.Background()

	request := &models.RoleRequest{ID: 5, UserID: 9}
	requestRepo.On("GetByID", ctx, uint(5)).Return(request, nil)

	got, err := svc.GetOwned(ctx, 5, 9)
	assert.NoError(t, err)
	assert.Equal(t, request, got)

	_, err = svc.GetOwned(ctx, 5, 10)
	assert.ErrorIs(t, err, services.ErrNotRequestOwner)
}

func TestRequestService_UpdateOwnedContent(t *testing.T) {
	svc, requestRepo, _ := newRequestService()
	ctx := context.Background()

	request := &models.RoleRequest{ID: 5, UserID: 9, RequestContent: "SELLER", Status: domain.StatusUnacceptable}
	requestRepo.On("GetByID", ctx, uint(5)).Return(request, nil)
	requestRepo.On("UpdateContent", ctx, uint(5), "MAINTENANCE_CENTER").Return(nil).Once()

	// Content changes, the decided status stays as it is
	err := svc.UpdateOwnedContent(ctx, 5, 9, "MAINTENANCE_CENTER")
	assert.NoError(t, err)
	requestRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)

	// Ownership is checked before content validity
	err = svc.UpdateOwnedContent(ctx, 5, 10, "MAINTENANCE_CENTER")
	assert.ErrorIs(t, err, services.ErrNotRequestOwner)

	err = svc.UpdateOwnedContent(ctx, 5, 9, "ADMIN")
	assert.ErrorIs(t, err, services.ErrInvalidRequestContent)

	requestRepo.AssertExpectations(t)
}

func TestRequestService_DeleteOwned(t *testing.T) {
	svc, requestRepo, _ := newRequestService()
	ctx := context.Background()

	request := &models.RoleRequest{ID: 5, UserID: 9}
	requestRepo.On("GetByID", ctx, uint(5)).Return(request, nil)
	requestRepo.On("Delete", ctx, uint(5)).Return(nil).Once()

	err := svc.DeleteOwned(ctx, 5, 9)
	assert.NoError(t, err)

	err = svc.DeleteOwned(ctx, 5, 10)
	assert.ErrorIs(t, err, services.ErrNotRequestOwner)

	requestRepo.AssertExpectations(t)
}

package handlers

import (
	"errors"

	"rolehub/internal/core/domain"
	"rolehub/internal/core/services"
	"rolehub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles role-change request endpoints
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// CreateRequestBody represents role-change request creation body
type CreateRequestBody struct {
	RequestContent string `json:"requestContent"`
}

// UpdateStatusBody represents status decision body
type UpdateStatusBody struct {
	Status string `json:"status"`
}

// ListRequests handles listing role-change requests (Admin only)
// @Summary List role-change requests
// @Description List all role-change requests, optionally filtered by status or requestContent (Admin only)
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param requestContent query string false "Filter by requested role"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *fiber.Ctx) error {
	input := &services.ListRequestsInput{
		Status:  c.Query("status"),
		Content: c.Query("requestContent"),
	}

	requests, err := h.requestService.List(c.Context(), input)
	if err != nil {
		return domain.Internal("Failed to list requests")
	}

	return response.Success(c, "requests are here", fiber.Map{
		"requests": requests,
	})
}

// CreateRequest handles submitting a new role-change request
// @Summary Create role-change request
// @Description Submit a new role-change request, it starts in Pending status
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRequestBody true "Requested role"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var req CreateRequestBody
	if err := c.BodyParser(&req); err != nil {
		return domain.BadRequest("Invalid request body")
	}

	if req.RequestContent == "" {
		return domain.BadRequest("requestContent is required")
	}

	request, err := h.requestService.Create(c.Context(), userID, req.RequestContent)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRequestContent):
			return domain.BadRequest("requestContent must be SELLER or MAINTENANCE_CENTER")
		default:
			return domain.Internal("Failed to create request")
		}
	}

	return response.Created(c, "request sent successfully", fiber.Map{
		"request": request,
	})
}

// GetRequest handles getting a request by ID (Admin only)
// @Summary Get role-change request
// @Description Get a specific role-change request by ID (Admin only)
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	request, err := h.requestService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return domain.NotFound("request is not found")
		}
		return domain.Internal("Failed to get request")
	}

	return response.Success(c, "this is the request", fiber.Map{
		"request": request,
	})
}

// UpdateRequestStatus handles deciding a request (Admin only)
// @Summary Decide role-change request
// @Description Set a request's status; accepting promotes the owner and clears their other pending requests (Admin only)
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body UpdateStatusBody true "New status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /requests/{id} [put]
func (h *RequestHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateStatusBody
	if err := c.BodyParser(&req); err != nil {
		return domain.BadRequest("Invalid request body")
	}

	if req.Status == "" {
		return domain.BadRequest("status is required")
	}

	if err := h.requestService.UpdateStatus(c.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return domain.NotFound("request is not found")
		case errors.Is(err, services.ErrInvalidRequestStatus):
			return domain.BadRequest("status must be Pending, Acceptable or Unacceptable")
		case errors.Is(err, services.ErrRequestOwnerMissing):
			return domain.NotFound("user is not found")
		default:
			return domain.Internal("Failed to update request status")
		}
	}

	return response.Success(c, "updated status successfully", nil)
}

// DeleteRequest handles deleting a request by ID (Admin only)
// @Summary Delete role-change request
// @Description Delete a role-change request by ID (Admin only)
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /requests/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.requestService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return domain.NotFound("request is not found")
		}
		return domain.Internal("Failed to delete request")
	}

	return response.Success(c, "deleted request successfully", nil)
}

// ListMyRequests handles listing the caller's own requests
// @Summary List own role-change requests
// @Description List the authenticated user's role-change requests, optionally filtered by status or requestContent
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param requestContent query string false "Filter by requested role"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /requests/mine [get]
func (h *RequestHandler) ListMyRequests(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	input := &services.ListRequestsInput{
		Status:  c.Query("status"),
		Content: c.Query("requestContent"),
	}

	requests, err := h.requestService.ListByOwner(c.Context(), userID, input)
	if err != nil {
		return domain.Internal("Failed to list requests")
	}

	return response.Success(c, "your requests are here", fiber.Map{
		"requests": requests,
	})
}

// GetMyRequest handles getting one of the caller's own requests
// @Summary Get own role-change request
// @Description Get one of the authenticated user's role-change requests by ID
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /requests/mine/{id} [get]
func (h *RequestHandler) GetMyRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	userID, _ := c.Locals("userID").(uint)

	request, err := h.requestService.GetOwned(c.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return domain.NotFound("request is not found")
		case errors.Is(err, services.ErrNotRequestOwner):
			return domain.Forbidden("You can not get this request because this request is not yours")
		default:
			return domain.Internal("Failed to get request")
		}
	}

	return response.Success(c, "this is your request", fiber.Map{
		"request": request,
	})
}

// UpdateMyRequest handles editing the requested role on an own request
// @Summary Update own role-change request
// @Description Change the requested role on one of the authenticated user's requests
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body CreateRequestBody true "New requested role"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /requests/mine/{id} [put]
func (h *RequestHandler) UpdateMyRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	userID, _ := c.Locals("userID").(uint)

	var req CreateRequestBody
	if err := c.BodyParser(&req); err != nil {
		return domain.BadRequest("Invalid request body")
	}

	if req.RequestContent == "" {
		return domain.BadRequest("requestContent is required")
	}

	if err := h.requestService.UpdateOwnedContent(c.Context(), id, userID, req.RequestContent); err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return domain.NotFound("request is not found")
		case errors.Is(err, services.ErrNotRequestOwner):
			return domain.Forbidden("You can not update this request because this request is not yours")
		case errors.Is(err, services.ErrInvalidRequestContent):
			return domain.BadRequest("requestContent must be SELLER or MAINTENANCE_CENTER")
		default:
			return domain.Internal("Failed to update request")
		}
	}

	return response.Success(c, "update your request successfully", nil)
}

// DeleteMyRequest handles deleting one of the caller's own requests
// @Summary Delete own role-change request
// @Description Delete one of the authenticated user's role-change requests by ID
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /requests/mine/{id} [delete]
func (h *RequestHandler) DeleteMyRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	userID, _ := c.Locals("userID").(uint)

	if err := h.requestService.DeleteOwned(c.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return domain.NotFound("request is not found")
		case errors.Is(err, services.ErrNotRequestOwner):
			return domain.Forbidden("You can not delete this request because this request is not yours")
		default:
			return domain.Internal("Failed to delete request")
		}
	}

	return response.Success(c, "deleted request successfully", nil)
}

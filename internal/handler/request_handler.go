package handler

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService service.RequestService
}

func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/api/requests")
	{
		requests.GET("", middleware.RequireRole("admin", "faculty", "staff"), h.ListRequests)
		requests.POST("", middleware.RequireRole("faculty", "staff"), h.CreateRequest)
		requests.PUT("/:id/approve", middleware.RequireRole("admin"), h.ApproveRequest)
		requests.PUT("/:id/reject", middleware.RequireRole("admin"), h.RejectRequest)
		requests.DELETE("", middleware.RequireRole("admin"), h.ClearRequests)
	}
}

// ListRequests returns requests, paginated. Admins see everything; faculty
// and staff only their own.
// @Summary      List requests
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Router       /api/requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	username := c.GetString("username")
	role := c.GetString("userRole")

	requests, err := h.requestService.List(c.Request.Context(), username, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	params := pagination.Parse(c)
	low, high := params.Slice(len(requests))

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"requests": requests[low:high],
		"total":    len(requests),
		"page":     params.Page,
		"limit":    params.Limit,
	}))
}

// CreateRequest files a stock request on behalf of the caller
// @Summary      Create request
// @Description  Files a request; availability is snapshotted now and the admin feed is notified
// @Tags         requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateRequestDTO  true  "Create Request Payload"
// @Success      201      {object}  response.Response{data=model.Request}
// @Failure      400      {object}  response.Response
// @Router       /api/requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req service.CreateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	username := c.GetString("username")
	role := c.GetString("userRole")

	created, err := h.requestService.Create(c.Request.Context(), username, role, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, created))
}

// ApproveRequest approves a pending request, decrementing stock
// @Summary      Approve request
// @Description  Resolves the item by name, checks quantity, decrements stock and marks the request fulfilled. Refusals leave the request pending.
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Request ID"
// @Success      200  {object}  response.Response{data=model.Request}
// @Failure      409  {object}  response.Response
// @Router       /api/requests/{id}/approve [put]
func (h *RequestHandler) ApproveRequest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request ID"))
		return
	}

	resolved, err := h.requestService.Approve(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrUnknownItem) || errors.Is(err, service.ErrInsufficientStock) {
			status = http.StatusConflict
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	if resolved == nil {
		// Missing or already resolved, nothing to do.
		c.JSON(http.StatusOK, response.Success(http.StatusOK, "Request already handled"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, resolved))
}

// RejectRequest rejects a pending request
// @Summary      Reject request
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Request ID"
// @Success      200  {object}  response.Response{data=model.Request}
// @Router       /api/requests/{id}/reject [put]
func (h *RequestHandler) RejectRequest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request ID"))
		return
	}

	resolved, err := h.requestService.Reject(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if resolved == nil {
		c.JSON(http.StatusOK, response.Success(http.StatusOK, "Request already handled"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, resolved))
}

// ClearRequests wipes the whole queue
// @Summary      Clear requests
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/requests [delete]
func (h *RequestHandler) ClearRequests(c *gin.Context) {
	if err := h.requestService.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Requests cleared"))
}

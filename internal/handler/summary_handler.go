package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	summaryService service.SummaryService
}

func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

func (h *SummaryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/summary", middleware.RequireRole("admin"), h.GetSummary)
}

// GetSummary returns the dashboard counters in one read
// @Summary      Dashboard summary
// @Description  Budget cards plus pending-request and unread-notification badge counts
// @Tags         summary
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.DashboardSummary}
// @Router       /api/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	summary, err := h.summaryService.Summarize(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

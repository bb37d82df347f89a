package handler

import (
	"errors"
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	budgetService service.BudgetService
}

func NewBudgetHandler(budgetService service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

func (h *BudgetHandler) RegisterRoutes(router *gin.RouterGroup) {
	budget := router.Group("/api/budget")
	{
		budget.GET("", middleware.RequireRole("admin"), h.GetBudget)
		budget.PUT("", middleware.RequireRole("admin"), h.SetBudget)
	}
}

// GetBudget returns the envelope, spend and remaining headroom
// @Summary      Get budget
// @Tags         budget
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.BudgetSummary}
// @Router       /api/budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	summary, err := h.budgetService.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// SetBudget replaces the total budget envelope
// @Summary      Set total budget
// @Description  Fails when the new total is below the amount already spent
// @Tags         budget
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SetBudgetRequest  true  "Budget Payload"
// @Success      200      {object}  response.Response{data=service.BudgetSummary}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/budget [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req service.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	summary, err := h.budgetService.SetTotal(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrBudgetBelowSpent) {
			status = http.StatusConflict
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	stockService service.StockService
}

func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

func (h *StockHandler) RegisterRoutes(router *gin.RouterGroup) {
	stock := router.Group("/api/stock")
	{
		stock.GET("", middleware.RequireRole("admin", "faculty", "staff"), h.ListStock)
		stock.POST("", middleware.RequireRole("admin"), h.CreateStockItem)
		stock.PUT("/:id", middleware.RequireRole("admin"), h.UpdateStockItem)
		stock.DELETE("/:id", middleware.RequireRole("admin"), h.DeleteStockItem)
	}
}

// ListStock returns all stock items
// @Summary      List stock
// @Description  Returns every stock item with quantity and unit cost
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.StockItem}
// @Failure      500  {object}  response.Response
// @Router       /api/stock [get]
func (h *StockHandler) ListStock(c *gin.Context) {
	items, err := h.stockService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve stock: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// CreateStockItem registers a new stock item, charging its cost to the budget
// @Summary      Add stock item
// @Description  Adds an item; its full cost (unit cost × quantity) must fit the remaining budget
// @Tags         stock
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateStockRequest  true  "Create Stock Payload"
// @Success      201      {object}  response.Response{data=model.StockItem}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/stock [post]
func (h *StockHandler) CreateStockItem(c *gin.Context) {
	var req service.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.stockService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(stockErrorStatus(err), response.Error(stockErrorStatus(err), err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// UpdateStockItem edits an existing item, settling the cost difference with the budget
// @Summary      Update stock item
// @Tags         stock
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                         true  "Stock Item ID"
// @Param        payload  body      service.UpdateStockRequest  true  "Update Stock Payload"
// @Success      200      {object}  response.Response{data=model.StockItem}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/stock/{id} [put]
func (h *StockHandler) UpdateStockItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid stock item ID"))
		return
	}

	var req service.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.stockService.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(stockErrorStatus(err), response.Error(stockErrorStatus(err), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// DeleteStockItem removes an item and refunds its cost to the budget
// @Summary      Delete stock item
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Stock Item ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) DeleteStockItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid stock item ID"))
		return
	}

	if err := h.stockService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(stockErrorStatus(err), response.Error(stockErrorStatus(err), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Stock item deleted"))
}

func stockErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInsufficientFunds):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

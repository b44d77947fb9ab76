package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/aimeevoice/aimee-web-app/internal/catalog"
	"github.com/aimeevoice/aimee-web-app/internal/dto"
)

type CatalogHandler struct {
	store *catalog.Store
}

func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// Wines godoc
// @Summary List wines
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.WineListResponse
// @Failure 401 {object} dto.UnauthorizedErrorResponse "Not authenticated"
// @Router /api/v1/wines [get]
func (h *CatalogHandler) Wines(c *gin.Context) {
	wines := h.store.Wines()
	c.JSON(http.StatusOK, dto.WineListResponse{Wines: wines, Total: len(wines)})
}

// Customers godoc
// @Summary List customers
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CustomerListResponse
// @Failure 401 {object} dto.UnauthorizedErrorResponse "Not authenticated"
// @Router /api/v1/customers [get]
func (h *CatalogHandler) Customers(c *gin.Context) {
	customers := h.store.Customers()
	c.JSON(http.StatusOK, dto.CustomerListResponse{Customers: customers, Total: len(customers)})
}

// OrdersSummary godoc
// @Summary Aggregate seed orders
// @Description Revenue is the sum of stored order totals, not price times quantity
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrderSummaryResponse
// @Failure 401 {object} dto.UnauthorizedErrorResponse "Not authenticated"
// @Router /api/v1/orders/summary [get]
func (h *CatalogHandler) OrdersSummary(c *gin.Context) {
	sum := h.store.AggregateOrders()
	revenue := decimal.NewFromInt(sum.RevenueCents).Div(decimal.NewFromInt(100)).StringFixed(2)
	c.JSON(http.StatusOK, dto.OrderSummaryResponse{
		Orders:       sum.Orders,
		RevenueCents: sum.RevenueCents,
		Revenue:      "$" + revenue,
		Bottles:      sum.Bottles,
	})
}

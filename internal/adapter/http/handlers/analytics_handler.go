package handlers

import (
	"net/http"

	response "printshop/internal/adapter/http/dto/response"
	"printshop/internal/usecase"
	"printshop/pkg"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the two derived dashboard series.

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// FilamentRemaining answers one bar per enumerated colour.
func (h *AnalyticsHandler) FilamentRemaining(c *gin.Context) {
	items, err := h.usecase.FilamentRemaining(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFilamentRemaining(items))
}

// OrdersPerWeek answers one point per ISO week of the current year so far.
func (h *AnalyticsHandler) OrdersPerWeek(c *gin.Context) {
	items, err := h.usecase.OrdersPerWeek(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWeeklyOrders(items))
}

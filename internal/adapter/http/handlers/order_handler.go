package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "printshop/internal/adapter/http/dto/request"
	response "printshop/internal/adapter/http/dto/response"
	"printshop/internal/domain/entities"
	"printshop/internal/domain/views"
	"printshop/internal/usecase"
	"printshop/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidListQuery    = pkg.NewDomainErrorSimple("INVALID_LIST_QUERY", "Invalid filter or sort parameter", http.StatusBadRequest)
	errInvalidOrderPath    = pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the order collection.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders returns the order collection. Without query parameters it is
// the raw collection; `status`, `payment_received`, `sort_by` and `order`
// run the same filter-then-sort pipeline the dashboard applies client-side.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	orders, err := h.usecase.ListOrders(c.Request.Context(), q)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// CreateOrder persists a new order and answers with the assigned id.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := payload.ToEntity(0)
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateOrder(c.Request.Context(), order)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.IDResponse{ID: created.ID})
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidOrderPath.HTTPStatus, errInvalidOrderPath.ToHTTPError())
		return
	}

	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := payload.ToEntity(id)
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateOrder(c.Request.Context(), order)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidOrderPath.HTTPStatus, errInvalidOrderPath.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteOrder(c.Request.Context(), id); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func parseListQuery(c *gin.Context) (views.Query, error) {
	var q views.Query

	if s := c.Query("status"); s != "" {
		status := entities.OrderStatus(s)
		q.Filter.Status = &status
	}
	if s := c.Query("payment_received"); s != "" {
		received, err := strconv.ParseBool(s)
		if err != nil {
			return views.Query{}, err
		}
		q.Filter.PaymentReceived = &received
	}
	if s := c.Query("sort_by"); s != "" {
		key, err := views.ParseSortKey(s)
		if err != nil {
			return views.Query{}, err
		}
		direction := views.Ascending
		if d := c.Query("order"); d != "" {
			direction, err = views.ParseDirection(d)
			if err != nil {
				return views.Query{}, err
			}
		}
		q.Sort = &views.Sort{Key: key, Direction: direction}
	}
	return q, nil
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderDate),
		errors.Is(err, usecase.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFilamentRequired):
		return pkg.NewDomainErrorSimple("FILAMENT_REQUIRED", "Orders past the contact stage need a filament and amount used", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFilamentNotFound):
		return pkg.NewDomainErrorSimple("FILAMENT_NOT_FOUND", "Filament not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

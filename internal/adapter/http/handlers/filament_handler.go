package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "printshop/internal/adapter/http/dto/request"
	response "printshop/internal/adapter/http/dto/response"
	"printshop/internal/usecase"
	"printshop/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidFilamentPayload = pkg.NewDomainErrorSimple("INVALID_FILAMENT_INPUT", "Invalid filament payload", http.StatusBadRequest)
	errInvalidFilamentPath    = pkg.NewDomainErrorSimple("INVALID_FILAMENT_ID", "Invalid filament id", http.StatusBadRequest)
)

// FilamentHandler handles HTTP requests for the filament catalog.

type FilamentHandler struct {
	usecase usecase.IFilamentUseCase
}

func NewFilamentHandler(uc usecase.IFilamentUseCase) *FilamentHandler {
	return &FilamentHandler{usecase: uc}
}

func (h *FilamentHandler) ListFilaments(c *gin.Context) {
	filaments, err := h.usecase.ListFilaments(c.Request.Context())
	if err != nil {
		appErr := mapFilamentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFilaments(filaments))
}

func (h *FilamentHandler) CreateFilament(c *gin.Context) {
	var payload request.FilamentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFilamentPayload.HTTPStatus, errInvalidFilamentPayload.ToHTTPError())
		return
	}

	filament, err := payload.ToEntity(0)
	if err != nil {
		c.JSON(errInvalidFilamentPayload.HTTPStatus, errInvalidFilamentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateFilament(c.Request.Context(), filament)
	if err != nil {
		appErr := mapFilamentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.IDResponse{ID: created.ID})
}

func (h *FilamentHandler) UpdateFilament(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidFilamentPath.HTTPStatus, errInvalidFilamentPath.ToHTTPError())
		return
	}

	var payload request.FilamentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFilamentPayload.HTTPStatus, errInvalidFilamentPayload.ToHTTPError())
		return
	}

	filament, err := payload.ToEntity(id)
	if err != nil {
		c.JSON(errInvalidFilamentPayload.HTTPStatus, errInvalidFilamentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateFilament(c.Request.Context(), filament)
	if err != nil {
		appErr := mapFilamentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFilament(updated))
}

func (h *FilamentHandler) DeleteFilament(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidFilamentPath.HTTPStatus, errInvalidFilamentPath.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteFilament(c.Request.Context(), id); err != nil {
		appErr := mapFilamentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapFilamentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFilamentID),
		errors.Is(err, usecase.ErrInvalidFilamentSize),
		errors.Is(err, usecase.ErrInvalidAmountUsed),
		errors.Is(err, usecase.ErrInvalidColourName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFilamentNotFound):
		return pkg.NewDomainErrorSimple("FILAMENT_NOT_FOUND", "Filament not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

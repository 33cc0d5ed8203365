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
	errInvalidColourPayload = pkg.NewDomainErrorSimple("INVALID_COLOUR_INPUT", "Invalid colour payload", http.StatusBadRequest)
	errInvalidColourPath    = pkg.NewDomainErrorSimple("INVALID_COLOUR_ID", "Invalid colour id", http.StatusBadRequest)
)

// ColourHandler handles HTTP requests for the colour catalog.

type ColourHandler struct {
	usecase usecase.IColourUseCase
}

func NewColourHandler(uc usecase.IColourUseCase) *ColourHandler {
	return &ColourHandler{usecase: uc}
}

func (h *ColourHandler) ListColours(c *gin.Context) {
	colours, err := h.usecase.ListColours(c.Request.Context())
	if err != nil {
		appErr := mapColourError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromColours(colours))
}

func (h *ColourHandler) CreateColour(c *gin.Context) {
	var payload request.ColourRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidColourPayload.HTTPStatus, errInvalidColourPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateColour(c.Request.Context(), payload.ColourName)
	if err != nil {
		appErr := mapColourError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.IDResponse{ID: created.ID})
}

func (h *ColourHandler) UpdateColour(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidColourPath.HTTPStatus, errInvalidColourPath.ToHTTPError())
		return
	}

	var payload request.ColourRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidColourPayload.HTTPStatus, errInvalidColourPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.RenameColour(c.Request.Context(), id, payload.ColourName)
	if err != nil {
		appErr := mapColourError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromColour(updated))
}

func (h *ColourHandler) DeleteColour(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidColourPath.HTTPStatus, errInvalidColourPath.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteColour(c.Request.Context(), id); err != nil {
		appErr := mapColourError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapColourError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidColourID), errors.Is(err, usecase.ErrInvalidColourName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrColourNotFound):
		return pkg.NewDomainErrorSimple("COLOUR_NOT_FOUND", "Colour not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

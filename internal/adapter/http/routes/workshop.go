package routes

import (
	"printshop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathData      = "/data"
	PathColours   = "/colours"
	PathFilaments = "/filaments"
	PathAnalytics = "/analytics"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	colourHandler *handlers.ColourHandler,
	filamentHandler *handlers.FilamentHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	data := rg.Group(PathData)
	{
		data.GET("", orderHandler.ListOrders)
		data.POST("", orderHandler.CreateOrder)
		data.PUT("/:id", orderHandler.UpdateOrder)
		data.DELETE("/:id", orderHandler.DeleteOrder)
	}

	colours := rg.Group(PathColours)
	{
		colours.GET("", colourHandler.ListColours)
		colours.POST("", colourHandler.CreateColour)
		colours.PUT("/:id", colourHandler.UpdateColour)
		colours.DELETE("/:id", colourHandler.DeleteColour)
	}

	filaments := rg.Group(PathFilaments)
	{
		filaments.GET("", filamentHandler.ListFilaments)
		filaments.POST("", filamentHandler.CreateFilament)
		filaments.PUT("/:id", filamentHandler.UpdateFilament)
		filaments.DELETE("/:id", filamentHandler.DeleteFilament)
	}

	analytics := rg.Group(PathAnalytics)
	{
		analytics.GET("/filament-remaining", analyticsHandler.FilamentRemaining)
		analytics.GET("/orders-per-week", analyticsHandler.OrdersPerWeek)
	}
}

package routes

import (
	"strconv"

	_ "printshop/docs" // swag-generated documentation
	"printshop/internal/adapter/http/handlers"
	"printshop/internal/adapter/persistence/repository"
	"printshop/internal/infrastructure/database"
	"printshop/internal/infrastructure/logger"
	"printshop/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		logger.Log.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	seq := repository.NewSequence(ddb)

	orderRepo := repository.NewOrderDynamoRepository(ddb, seq)
	colourRepo := repository.NewColourDynamoRepository(ddb, seq)
	filamentRepo := repository.NewFilamentDynamoRepository(ddb, seq)

	orderUseCase := usecase.NewOrderUseCase(orderRepo, filamentRepo)
	colourUseCase := usecase.NewColourUseCase(colourRepo)
	filamentUseCase := usecase.NewFilamentUseCase(filamentRepo)
	analyticsUseCase := usecase.NewAnalyticsUseCase(orderRepo, filamentRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	colourHandler := handlers.NewColourHandler(colourUseCase)
	filamentHandler := handlers.NewFilamentHandler(filamentUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, orderHandler, colourHandler, filamentHandler, analyticsHandler)
}

func setMiddlewares() {
	router.Use(logger.RequestID())
	router.Use(logger.RequestLogger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

package routes

import (
	"log"
	"os"
	"strconv"

	_ "app_oficios/docs" // This will be auto-generated
	"app_oficios/internal/adapter/http/handlers"
	repository2 "app_oficios/internal/adapter/persistence/repository"
	"app_oficios/internal/infrastructure/database"
	"app_oficios/internal/infrastructure/payments"
	"app_oficios/internal/usecase"
	"app_oficios/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewServiceRequestDynamoRepository(ddb)
	jobRepo := repository2.NewJobDynamoRepository(ddb)
	profRepo := repository2.NewProfessionalDynamoRepository(ddb)

	workflowUseCase := usecase.NewRequestWorkflowUseCase(requestRepo, profRepo)
	schedulingUseCase := usecase.NewSchedulingUseCase(profRepo, requestRepo)
	jobUseCase := usecase.NewJobLifecycleUseCase(jobRepo, requestRepo, usecase.JobLifecycleConfig{
		AutoStartOnCreation: isJobAutoStartEnabled(),
	})

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentPreferenceUseCase(jobRepo, paymentGateway)

	requestHandler := handlers.NewServiceRequestHandler(workflowUseCase, schedulingUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, requestHandler, jobHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func isJobAutoStartEnabled() bool {
	switch os.Getenv("JOB_AUTO_START") {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

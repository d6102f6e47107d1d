package routes

import (
	"log"
	"os"
	"strconv"

	_ "oficina_mecanica/docs" // This will be auto-generated
	"oficina_mecanica/internal/adapter/http/handlers"
	"oficina_mecanica/internal/adapter/http/middleware"
	repository2 "oficina_mecanica/internal/adapter/persistence/repository"
	"oficina_mecanica/internal/infrastructure/database"
	"oficina_mecanica/internal/infrastructure/payments"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/internal/usecase/interfaces"

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

	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewQuotePaymentDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "local-dev-secret"
		log.Printf("JWT_SECRET not set; using the local development secret")
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo, quoteRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, quoteRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, customerRepo, serviceRepo)
	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, paymentGateway)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtSecret)
	dashboardUseCase := usecase.NewDashboardUseCase(customerRepo, serviceRepo, quoteRepo)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	paymentHandler := handlers.NewQuotePaymentHandler(paymentUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Rotas protegidas
	protected := router.Group("/v1")
	protected.Use(middleware.RequireAuth(jwtSecret))
	addWorkshopRoutes(protected, catalogHandler, customerHandler, quoteHandler, paymentHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

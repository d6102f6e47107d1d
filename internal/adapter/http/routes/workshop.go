package routes

import (
	"oficina_mecanica/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathServices  = "/services"
	PathCustomers = "/customers"
	PathQuotes    = "/quotes"
	PathPayments  = "/payments"
	PathDashboard = "/dashboard"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
}

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	customerHandler *handlers.CustomerHandler,
	quoteHandler *handlers.QuoteHandler,
	paymentHandler *handlers.QuotePaymentHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	services := rg.Group(PathServices)
	{
		services.POST("", catalogHandler.CreateService)
		services.GET("", catalogHandler.ListServices)
		services.GET("/:id", catalogHandler.GetServiceByID)
		services.PUT("/:id", catalogHandler.UpdateService)
		services.DELETE("/:id", catalogHandler.DeleteService)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomerByID)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuoteByID)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:id/status", quoteHandler.UpdateQuoteStatus)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.ChargeQuote)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/summary", dashboardHandler.Summary)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	cardRepo := repository.NewCardRepository(db)

	dashboard := handler.NewDashboardHandler(invoiceRepo, customerRepo, revenueRepo, cardRepo)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	cards := api.Group("/dashboard")
	cards.GET("/cards", dashboard.Cards)
	cards.GET("/revenue", dashboard.Revenue)

	invoices := api.Group("/invoices")
	{
		invoices.GET("", dashboard.FilteredInvoices)
		invoices.GET("/latest", dashboard.LatestInvoices)
		invoices.GET("/search", dashboard.SearchInvoices)
		invoices.GET("/:id", dashboard.InvoiceByID)
	}

	customers := api.Group("/customers")
	{
		customers.GET("", dashboard.Customers)
		customers.GET("/table", dashboard.CustomerTable)
	}
}

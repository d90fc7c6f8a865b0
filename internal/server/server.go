// Package server exposes the storage layer as a JSON HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"invoice-dashboard-backend/internal/storage"
)

// Server routes dashboard read requests to the injected store. It owns no
// state beyond the router; the store's lifecycle belongs to the hosting
// process.
type Server struct {
	store  storage.Store
	router *gin.Engine
}

// New builds the router with logging, CORS and metrics middleware and
// registers all read endpoints.
func New(store storage.Store) *Server {
	s := &Server{store: store}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(requestMetrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.GET("/customers", s.listCustomers)
	api.GET("/customers/filtered", s.listFilteredCustomers)

	api.GET("/invoices", s.listFilteredInvoices)
	api.GET("/invoices/pages", s.invoicePages)
	api.GET("/invoices/latest", s.latestInvoices)
	api.GET("/invoices/:id", s.invoiceByID)

	api.GET("/revenue", s.revenue)
	api.GET("/dashboard", s.dashboardSummary)
	api.GET("/query", s.amountProbe)

	r.GET("/metrics", metricsHandler())

	s.router = r
	return s
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts serving on the given address, blocking until the listener
// fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

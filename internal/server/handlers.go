package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// probeAmount is the fixed minor-unit amount the diagnostic endpoint
// queries for.
const probeAmount = 666

// The handlers below only parse parameters, call the store and render JSON.
// Any store failure becomes a 500 with an error body; falling back to empty
// results is the caller's decision, never made here.

func (s *Server) listCustomers(c *gin.Context) {
	customers, err := s.store.Customers(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (s *Server) listFilteredCustomers(c *gin.Context) {
	customers, err := s.store.FilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (s *Server) listFilteredInvoices(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
			return
		}
		if parsed >= 1 {
			page = parsed
		}
	}

	invoices, err := s.store.FilteredInvoices(c.Request.Context(), c.Query("query"), page)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (s *Server) invoicePages(c *gin.Context) {
	pages, err := s.store.InvoicePages(c.Request.Context(), c.Query("query"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalPages": pages})
}

func (s *Server) invoiceByID(c *gin.Context) {
	invoice, err := s.store.InvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if invoice == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (s *Server) latestInvoices(c *gin.Context) {
	invoices, err := s.store.LatestInvoices(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (s *Server) revenue(c *gin.Context) {
	points, err := s.store.Revenue(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (s *Server) dashboardSummary(c *gin.Context) {
	summary, err := s.store.DashboardSummary(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) amountProbe(c *gin.Context) {
	probes, err := s.store.InvoicesByAmount(c.Request.Context(), probeAmount)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, probes)
}

// fail logs the store failure with its wrapped cause and answers 500. The
// low-level cause stays server-side; clients only see which request failed.
func (s *Server) fail(c *gin.Context, err error) {
	slog.Error("Store request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch data"})
}

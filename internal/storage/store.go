// Package storage provides abstractions for the read side of the invoice
// database.
package storage

import (
	"context"
	"fmt"

	"invoice-dashboard-backend/internal/models"
)

// Store defines the query surface over customers, invoices and revenue.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the HTTP layer.
//
// Every method is read-only and request-scoped: the entities returned are
// projections built for one call and owned by the caller afterwards. A
// failing method returns a *StoreError naming the operation and wrapping
// the low-level cause; no method returns partial results on failure.
type Store interface {
	// Customers returns all customers, sorted by name ascending.
	Customers(ctx context.Context) ([]models.Customer, error)

	// FilteredCustomers returns the customers whose name or email contains
	// the query (case-insensitive), each with its invoice count and
	// pending/paid sums. Customers with zero invoices are included with
	// zero totals. Sorted by name ascending.
	FilteredCustomers(ctx context.Context, query string) ([]models.CustomerWithTotals, error)

	// FilteredInvoices returns one page, at most pagination.PageSize rows,
	// of the invoices matching the free-text query, sorted by date
	// descending. page is 1-based; values below 1 are treated as 1.
	FilteredInvoices(ctx context.Context, query string, page int) ([]models.Invoice, error)

	// InvoicePages returns the number of pages the query's matching
	// invoices span.
	InvoicePages(ctx context.Context, query string) (int, error)

	// InvoiceByID returns the invoice with the given id, or (nil, nil)
	// when no such invoice exists. Absence is a valid outcome, not an
	// error.
	InvoiceByID(ctx context.Context, id string) (*models.Invoice, error)

	// LatestInvoices returns the five most recent invoices, sorted by date
	// descending.
	LatestInvoices(ctx context.Context) ([]models.Invoice, error)

	// Revenue returns the monthly revenue series, sorted by month
	// ascending.
	Revenue(ctx context.Context) ([]models.RevenuePoint, error)

	// DashboardSummary fans out the dashboard aggregate queries
	// concurrently and returns the merged result. Either the complete
	// summary is returned or the call fails; there are no partial
	// summaries.
	DashboardSummary(ctx context.Context) (*models.DashboardSummary, error)

	// InvoicesByAmount returns the invoices whose amount equals the given
	// minor-unit value exactly, joined to the owning customer's name. This
	// backs the diagnostic probe endpoint.
	InvoicesByAmount(ctx context.Context, minor int64) ([]models.AmountProbe, error)

	// Close releases the underlying connection pool.
	Close() error
}

// StoreError is the only error kind the storage layer produces. Op names
// the operation that failed; Err is the low-level cause, preserved for
// diagnostics via Unwrap.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

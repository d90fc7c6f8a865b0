package sqlite

import (
	"context"
	"database/sql"

	"golang.org/x/sync/errgroup"

	"invoice-dashboard-backend/internal/models"
)

// Revenue returns the monthly revenue series, month ascending.
func (s *SQLiteStore) Revenue(ctx context.Context) ([]models.RevenuePoint, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT month, revenue FROM revenue ORDER BY month ASC",
	)
	if err != nil {
		return nil, storeErr("fetch revenue", err)
	}
	defer rows.Close()

	raw, err := scanRowMaps(rows)
	if err != nil {
		return nil, storeErr("fetch revenue", err)
	}

	points := make([]models.RevenuePoint, 0, len(raw))
	for _, row := range raw {
		p, err := mapRevenuePoint(row)
		if err != nil {
			return nil, storeErr("fetch revenue", err)
		}
		points = append(points, p)
	}
	return points, nil
}

// DashboardSummary runs the three dashboard aggregates concurrently and
// merges them after all complete. The queries run outside a shared
// transaction, so under concurrent writes the three may reflect slightly
// different instants; that skew is accepted for this read-only dashboard.
//
// If any query fails the whole fetch fails and the errgroup's context
// cancels the in-flight siblings; no partial summary is ever returned.
func (s *SQLiteStore) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	var (
		invoiceCount  int64
		customerCount int64
		paid, pending sql.NullInt64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM invoices",
		).Scan(&invoiceCount)
	})
	g.Go(func() error {
		return s.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM customers",
		).Scan(&customerCount)
	})
	g.Go(func() error {
		// SUM over zero rows is NULL; the NullInt64s default it to zero.
		return s.db.QueryRowContext(ctx, `
			SELECT
				SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END),
				SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END)
			FROM invoices`,
		).Scan(&paid, &pending)
	})
	if err := g.Wait(); err != nil {
		return nil, storeErr("fetch dashboard summary", err)
	}

	return &models.DashboardSummary{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    paid.Int64,
		TotalPendingInvoices: pending.Int64,
	}, nil
}

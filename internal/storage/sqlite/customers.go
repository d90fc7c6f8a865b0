package sqlite

import (
	"context"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/search"
)

// customerSearchFields are the columns the customer search matches against.
// Only name and email participate; invoice fields never decide which
// customers appear.
var customerSearchFields = []search.Field{
	{Column: "customers.name", Kind: search.Text},
	{Column: "customers.email", Kind: search.Text},
}

// Customers returns every customer, sorted by name ascending.
func (s *SQLiteStore) Customers(ctx context.Context) ([]models.Customer, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, image_url FROM customers ORDER BY name ASC",
	)
	if err != nil {
		return nil, storeErr("fetch customers", err)
	}
	defer rows.Close()

	raw, err := scanRowMaps(rows)
	if err != nil {
		return nil, storeErr("fetch customers", err)
	}

	customers := make([]models.Customer, 0, len(raw))
	for _, row := range raw {
		c, err := mapCustomer(row)
		if err != nil {
			return nil, storeErr("fetch customers", err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// FilteredCustomers returns the customers matching the query with their
// invoice rollups. The LEFT JOIN keeps zero-invoice customers in the result
// with all totals zero.
func (s *SQLiteStore) FilteredCustomers(ctx context.Context, query string) ([]models.CustomerWithTotals, error) {
	where, args := search.ContainsAny(query, customerSearchFields...).SQL()

	rows, err := s.db.QueryContext(ctx, `
		SELECT
			customers.id,
			customers.name,
			customers.email,
			customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE `+where+`
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC`,
		args...,
	)
	if err != nil {
		return nil, storeErr("fetch filtered customers", err)
	}
	defer rows.Close()

	raw, err := scanRowMaps(rows)
	if err != nil {
		return nil, storeErr("fetch filtered customers", err)
	}

	customers := make([]models.CustomerWithTotals, 0, len(raw))
	for _, row := range raw {
		ct, err := mapCustomerWithTotals(row)
		if err != nil {
			return nil, storeErr("fetch filtered customers", err)
		}
		customers = append(customers, ct)
	}
	return customers, nil
}

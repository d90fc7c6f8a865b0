package sqlite

import (
	"context"
	"database/sql"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/pagination"
	"invoice-dashboard-backend/internal/search"
)

// invoiceSearchFields are the heterogeneous columns the invoice search
// matches against: customer text fields, the amount's decimal rendering,
// the textual date and the status label. One query string, one comparison
// semantics across all five.
var invoiceSearchFields = []search.Field{
	{Column: "customers.name", Kind: search.Text},
	{Column: "customers.email", Kind: search.Text},
	{Column: "invoices.amount", Kind: search.Numeric},
	{Column: "invoices.date", Kind: search.Text},
	{Column: "invoices.status", Kind: search.Enum},
}

// invoiceSelect is the joined projection shared by every invoice read.
const invoiceSelect = `
	SELECT
		invoices.id,
		invoices.customer_id,
		invoices.amount,
		invoices.date,
		invoices.status,
		customers.name,
		customers.email,
		customers.image_url
	FROM invoices
	JOIN customers ON invoices.customer_id = customers.id`

// FilteredInvoices returns one page of invoices matching the query, newest
// first. Pages below 1 are clamped to 1 so the offset stays non-negative.
func (s *SQLiteStore) FilteredInvoices(ctx context.Context, query string, page int) ([]models.Invoice, error) {
	if page < 1 {
		page = 1
	}
	where, args := search.ContainsAny(query, invoiceSearchFields...).SQL()
	args = append(args, pagination.PageSize, pagination.Offset(page, pagination.PageSize))

	rows, err := s.db.QueryContext(ctx,
		invoiceSelect+`
		WHERE `+where+`
		ORDER BY invoices.date DESC
		LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, storeErr("fetch filtered invoices", err)
	}
	defer rows.Close()

	return collectInvoices(rows, "fetch filtered invoices")
}

// InvoicePages returns how many pages the query's matches span. It counts
// with the same predicate and divides by the same page size that bound the
// row fetch, so the two cannot disagree.
func (s *SQLiteStore) InvoicePages(ctx context.Context, query string) (int, error) {
	where, args := search.ContainsAny(query, invoiceSearchFields...).SQL()

	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE `+where,
		args...,
	).Scan(&count)
	if err != nil {
		return 0, storeErr("fetch invoice pages", err)
	}

	return pagination.PageCount(count, pagination.PageSize), nil
}

// InvoiceByID returns one invoice, or (nil, nil) when the id matches
// nothing. The amount comes back in minor units like every other read path;
// conversion belongs to the presentation boundary.
func (s *SQLiteStore) InvoiceByID(ctx context.Context, id string) (*models.Invoice, error) {
	rows, err := s.db.QueryContext(ctx,
		invoiceSelect+` WHERE invoices.id = ?`,
		id,
	)
	if err != nil {
		return nil, storeErr("fetch invoice by id", err)
	}
	defer rows.Close()

	invoices, err := collectInvoices(rows, "fetch invoice by id")
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, nil
	}
	return &invoices[0], nil
}

// LatestInvoices returns the five most recent invoices, newest first.
func (s *SQLiteStore) LatestInvoices(ctx context.Context) ([]models.Invoice, error) {
	rows, err := s.db.QueryContext(ctx,
		invoiceSelect+`
		ORDER BY invoices.date DESC
		LIMIT 5`,
	)
	if err != nil {
		return nil, storeErr("fetch latest invoices", err)
	}
	defer rows.Close()

	return collectInvoices(rows, "fetch latest invoices")
}

// InvoicesByAmount is the diagnostic probe: a fixed equality predicate over
// the same join, built by the same predicate package as the free-text
// search.
func (s *SQLiteStore) InvoicesByAmount(ctx context.Context, minor int64) ([]models.AmountProbe, error) {
	where, args := search.AmountEquals("invoices.amount", minor).SQL()

	rows, err := s.db.QueryContext(ctx, `
		SELECT invoices.amount, customers.name
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE `+where,
		args...,
	)
	if err != nil {
		return nil, storeErr("fetch invoices by amount", err)
	}
	defer rows.Close()

	raw, err := scanRowMaps(rows)
	if err != nil {
		return nil, storeErr("fetch invoices by amount", err)
	}

	probes := make([]models.AmountProbe, 0, len(raw))
	for _, row := range raw {
		p, err := mapAmountProbe(row)
		if err != nil {
			return nil, storeErr("fetch invoices by amount", err)
		}
		probes = append(probes, p)
	}
	return probes, nil
}

// collectInvoices maps the joined rows of an invoice query, wrapping any
// failure under the given operation name.
func collectInvoices(rows *sql.Rows, op string) ([]models.Invoice, error) {
	raw, err := scanRowMaps(rows)
	if err != nil {
		return nil, storeErr(op, err)
	}

	invoices := make([]models.Invoice, 0, len(raw))
	for _, row := range raw {
		inv, err := mapInvoice(row)
		if err != nil {
			return nil, storeErr(op, err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"

	"invoice-dashboard-backend/internal/models"
)

// Rows come back from the driver as untyped field-name-to-value maps. The
// mappers below turn one map into a typed entity, failing fast when a
// required field is absent or null (schema mismatch is an error, never a
// silent default). Only image_url is genuinely optional.

// scanRowMaps drains rows into one map per row, keyed by column name.
func scanRowMaps(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var out []map[string]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = vals[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return out, nil
}

// mapCustomer maps one customers row.
func mapCustomer(row map[string]any) (models.Customer, error) {
	var c models.Customer
	var err error

	if c.ID, err = reqString(row, "id"); err != nil {
		return models.Customer{}, err
	}
	if c.Name, err = reqString(row, "name"); err != nil {
		return models.Customer{}, err
	}
	if c.Email, err = reqString(row, "email"); err != nil {
		return models.Customer{}, err
	}
	c.ImageURL = optString(row, "image_url")
	return c, nil
}

// mapCustomerWithTotals maps one row of the grouped customer rollup.
// Grouped sums may arrive string-encoded depending on the driver; they are
// coerced before landing on the entity.
func mapCustomerWithTotals(row map[string]any) (models.CustomerWithTotals, error) {
	c, err := mapCustomer(row)
	if err != nil {
		return models.CustomerWithTotals{}, err
	}

	ct := models.CustomerWithTotals{Customer: c}
	if ct.TotalInvoices, err = reqInt(row, "total_invoices"); err != nil {
		return models.CustomerWithTotals{}, err
	}
	if ct.TotalPending, err = reqInt(row, "total_pending"); err != nil {
		return models.CustomerWithTotals{}, err
	}
	if ct.TotalPaid, err = reqInt(row, "total_paid"); err != nil {
		return models.CustomerWithTotals{}, err
	}
	return ct, nil
}

// mapInvoice maps one invoice row joined with its customer's display fields.
// The amount stays in minor units; no currency conversion happens here.
func mapInvoice(row map[string]any) (models.Invoice, error) {
	var inv models.Invoice
	var err error

	if inv.ID, err = reqString(row, "id"); err != nil {
		return models.Invoice{}, err
	}
	if inv.CustomerID, err = reqString(row, "customer_id"); err != nil {
		return models.Invoice{}, err
	}
	if inv.Name, err = reqString(row, "name"); err != nil {
		return models.Invoice{}, err
	}
	if inv.Email, err = reqString(row, "email"); err != nil {
		return models.Invoice{}, err
	}
	inv.ImageURL = optString(row, "image_url")

	if inv.Amount, err = reqInt(row, "amount"); err != nil {
		return models.Invoice{}, err
	}
	if inv.Date, err = reqString(row, "date"); err != nil {
		return models.Invoice{}, err
	}

	status, err := reqString(row, "status")
	if err != nil {
		return models.Invoice{}, err
	}
	switch models.InvoiceStatus(status) {
	case models.StatusPending, models.StatusPaid:
		inv.Status = models.InvoiceStatus(status)
	default:
		return models.Invoice{}, fmt.Errorf("invalid invoice status %q", status)
	}
	return inv, nil
}

// mapRevenuePoint maps one revenue row.
func mapRevenuePoint(row map[string]any) (models.RevenuePoint, error) {
	var p models.RevenuePoint
	var err error

	if p.Month, err = reqString(row, "month"); err != nil {
		return models.RevenuePoint{}, err
	}
	if p.Revenue, err = reqInt(row, "revenue"); err != nil {
		return models.RevenuePoint{}, err
	}
	return p, nil
}

// mapAmountProbe maps one row of the diagnostic fixed-amount join.
func mapAmountProbe(row map[string]any) (models.AmountProbe, error) {
	var p models.AmountProbe
	var err error

	if p.Amount, err = reqInt(row, "amount"); err != nil {
		return models.AmountProbe{}, err
	}
	if p.Name, err = reqString(row, "name"); err != nil {
		return models.AmountProbe{}, err
	}
	return p, nil
}

// reqString returns the named field as a string, failing when the field is
// absent or null.
func reqString(row map[string]any, key string) (string, error) {
	v, ok := row[key]
	if !ok || v == nil {
		return "", fmt.Errorf("missing required field %q", key)
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// optString returns the named field as a string pointer, or nil when the
// field is absent or null.
func optString(row map[string]any, key string) *string {
	v, ok := row[key]
	if !ok || v == nil {
		return nil
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		s = fmt.Sprint(v)
	}
	return &s
}

// reqInt returns the named field as an int64, failing when the field is
// absent or null. Integer, float and string-encoded numerics are all
// accepted; grouped aggregates do not come back with one fixed wire type.
func reqInt(row map[string]any, key string) (int64, error) {
	v, ok := row[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing required field %q", key)
	}
	return coerceInt(key, v)
}

func coerceInt(key string, v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q is not numeric: %w", key, err)
		}
		return parsed, nil
	case []byte:
		return coerceInt(key, string(n))
	default:
		return 0, fmt.Errorf("field %q has unsupported type %T", key, v)
	}
}

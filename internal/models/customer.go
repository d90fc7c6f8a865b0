package models

// Customer is a single row from the customers table.
type Customer struct {
	// ID is the unique identifier for the customer (UUID format).
	ID string `json:"id"`

	// Name is the customer's display name.
	Name string `json:"name"`

	// Email is the customer's email address, used for display and search.
	Email string `json:"email"`

	// ImageURL is the customer's avatar URL. It is the only optional field
	// on the model; nil when the row has no image.
	ImageURL *string `json:"image_url"`
}

// CustomerWithTotals is a Customer joined with its per-customer invoice
// aggregates. It is computed on demand by a grouped query and never
// persisted; its lifetime is one query response.
type CustomerWithTotals struct {
	Customer

	// TotalInvoices is the number of invoices billed to this customer.
	TotalInvoices int64 `json:"total_invoices"`

	// TotalPending is the sum of pending invoice amounts, in minor units.
	TotalPending int64 `json:"total_pending"`

	// TotalPaid is the sum of paid invoice amounts, in minor units.
	TotalPaid int64 `json:"total_paid"`
}

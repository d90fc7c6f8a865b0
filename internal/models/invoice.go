package models

// InvoiceStatus is the closed set of invoice states. No other values are
// permitted; the database enforces the same constraint.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

// Invoice is an invoice row joined with the owning customer's display
// fields, the shape every invoice listing works with.
type Invoice struct {
	// ID is the unique identifier for the invoice (UUID format).
	ID string `json:"id"`

	// CustomerID references the customer this invoice is billed to.
	// Many invoices may reference one customer.
	CustomerID string `json:"customer_id"`

	// Name, Email and ImageURL are the owning customer's display fields,
	// carried along so listings need no second lookup.
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	ImageURL *string `json:"image_url"`

	// Amount is the invoiced amount in minor currency units (cents).
	// The database constrains amount >= 0.
	Amount int64 `json:"amount"`

	// Date is the invoice date in text-comparable YYYY-MM-DD form.
	Date string `json:"date"`

	// Status is either StatusPending or StatusPaid.
	Status InvoiceStatus `json:"status"`
}

// AmountProbe is one row of the diagnostic fixed-amount join: an invoice
// amount paired with the owning customer's name.
type AmountProbe struct {
	Amount int64  `json:"amount"`
	Name   string `json:"name"`
}

package models

// RevenuePoint is one month of the revenue time series.
type RevenuePoint struct {
	// Month is the series label (e.g. "Jan"). The series is ordered by
	// month ascending.
	Month string `json:"month"`

	// Revenue is the month's revenue in minor currency units.
	Revenue int64 `json:"revenue"`
}

// DashboardSummary holds the dashboard card aggregates. It is assembled
// from three independent queries and discarded after the response; see the
// storage layer for the consistency caveat across the three.
type DashboardSummary struct {
	NumberOfInvoices  int64 `json:"numberOfInvoices"`
	NumberOfCustomers int64 `json:"numberOfCustomers"`

	// TotalPaidInvoices and TotalPendingInvoices are amount sums in minor
	// currency units, zero when no invoices exist.
	TotalPaidInvoices    int64 `json:"totalPaidInvoices"`
	TotalPendingInvoices int64 `json:"totalPendingInvoices"`
}

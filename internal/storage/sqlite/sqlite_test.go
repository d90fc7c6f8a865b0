package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"invoice-dashboard-backend/internal/storage"
)

// newTestStore creates a store backed by a throwaway database file.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "invoice-dashboard-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// insertFixtures loads a small known dataset:
//   - Alice Anderson: 4 invoices (1 pending 12345, 3 paid totalling 9500)
//   - Bob Brown (no image): 3 invoices (2 pending 666+2500, 1 paid 99900)
//   - Cara Chen: no invoices
//
// 7 invoices total, with strictly distinct dates 2024-05-01..07.
func insertFixtures(t *testing.T, store *SQLiteStore) {
	t.Helper()

	customers := []struct {
		id, name, email string
		imageURL        any
	}{
		{"c1", "Alice Anderson", "alice@anderson.dev", "/customers/alice.png"},
		{"c2", "Bob Brown", "bob@bigco.com", nil},
		{"c3", "Cara Chen", "cara@chen.io", "/customers/cara.png"},
	}
	for _, c := range customers {
		if _, err := store.db.Exec(
			"INSERT INTO customers (id, name, email, image_url) VALUES (?, ?, ?, ?)",
			c.id, c.name, c.email, c.imageURL,
		); err != nil {
			t.Fatalf("Failed to insert customer %s: %v", c.id, err)
		}
	}

	invoices := []struct {
		id, customerID string
		amount         int64
		date, status   string
	}{
		{"i1", "c1", 12345, "2024-05-07", "pending"},
		{"i2", "c1", 500, "2024-05-06", "paid"},
		{"i3", "c1", 7800, "2024-05-05", "paid"},
		{"i4", "c2", 666, "2024-05-04", "pending"},
		{"i5", "c2", 99900, "2024-05-03", "paid"},
		{"i6", "c2", 2500, "2024-05-02", "pending"},
		{"i7", "c1", 1200, "2024-05-01", "paid"},
	}
	for _, inv := range invoices {
		if _, err := store.db.Exec(
			"INSERT INTO invoices (id, customer_id, amount, date, status) VALUES (?, ?, ?, ?, ?)",
			inv.id, inv.customerID, inv.amount, inv.date, inv.status,
		); err != nil {
			t.Fatalf("Failed to insert invoice %s: %v", inv.id, err)
		}
	}
}

func TestCustomers(t *testing.T) {
	store := newTestStore(t)
	insertFixtures(t, store)
	ctx := context.Background()

	customers, err := store.Customers(ctx)
	if err != nil {
		t.Fatalf("Customers failed: %v", err)
	}

	if len(customers) != 3 {
		t.Fatalf("Expected 3 customers, got %d", len(customers))
	}
	for i, want := range []string{"Alice Anderson", "Bob Brown", "Cara Chen"} {
		if customers[i].Name != want {
			t.Errorf("customers[%d].Name = %q, want %q", i, customers[i].Name, want)
		}
	}
	if customers[1].ImageURL != nil {
		t.Errorf("Expected nil ImageURL for Bob, got %q", *customers[1].ImageURL)
	}
	if customers[0].ImageURL == nil || *customers[0].ImageURL != "/customers/alice.png" {
		t.Errorf("Unexpected ImageURL for Alice: %v", customers[0].ImageURL)
	}
}

func TestFilteredCustomers(t *testing.T) {
	store := newTestStore(t)
	insertFixtures(t, store)
	ctx := context.Background()

	t.Run("empty query returns all customers with totals", func(t *testing.T) {
		customers, err := store.FilteredCustomers(ctx, "")
		if err != nil {
			t.Fatalf("FilteredCustomers failed: %v", err)
		}
		if len(customers) != 3 {
			t.Fatalf("Expected 3 customers, got %d", len(customers))
		}

		alice := customers[0]
		if alice.TotalInvoices != 4 {
			t.Errorf("Alice TotalInvoices = %d, want 4", alice.TotalInvoices)
		}
		if alice.TotalPending != 12345 {
			t.Errorf("Alice TotalPending = %d, want 12345", alice.TotalPending)
		}
		if alice.TotalPaid != 9500 {
			t.Errorf("Alice TotalPaid = %d, want 9500", alice.TotalPaid)
		}
	})

	t.Run("customer with zero invoices appears with zero totals", func(t *testing.T) {
		customers, err := store.FilteredCustomers(ctx, "")
		if err != nil {
			t.Fatalf("FilteredCustomers failed: %v", err)
		}

		cara := customers[2]
		if cara.Name != "Cara Chen" {
			t.Fatalf("Expected Cara Chen last, got %q", cara.Name)
		}
		if cara.TotalInvoices != 0 || cara.TotalPending != 0 || cara.TotalPaid != 0 {
			t.Errorf("Expected zero totals for Cara, got invoices=%d pending=%d paid=%d",
				cara.TotalInvoices, cara.TotalPending, cara.TotalPaid)
		}
	})

	t.Run("matches email substring case-insensitively", func(t *testing.T) {
		customers, err := store.FilteredCustomers(ctx, "CHEN.IO")
		if err != nil {
			t.Fatalf("FilteredCustomers failed: %v", err)
		}
		if len(customers) != 1 || customers[0].Name != "Cara Chen" {
			t.Fatalf("Expected only Cara Chen, got %v", customers)
		}
	})

	t.Run("no match returns empty slice, not error", func(t *testing.T) {
		customers, err := store.FilteredCustomers(ctx, "no-such-customer")
		if err != nil {
			t.Fatalf("FilteredCustomers failed: %v", err)
		}
		if len(customers) != 0 {
			t.Errorf("Expected no customers, got %d", len(customers))
		}
	})
}

func TestFilteredInvoices(t *testing.T) {
	store := newTestStore(t)
	insertFixtures(t, store)
	ctx := context.Background()

	t.Run("empty query pages through all invoices newest first", func(t *testing.T) {
		page1, err := store.FilteredInvoices(ctx, "", 1)
		if err != nil {
			t.Fatalf("FilteredInvoices failed: %v", err)
		}
		if len(page1) != 6 {
			t.Fatalf("Expected 6 invoices on page 1, got %d", len(page1))
		}
		for i := 1; i < len(page1); i++ {
			if page1[i].Date > page1[i-1].Date {
				t.Errorf("Dates not descending: %q after %q", page1[i].Date, page1[i-1].Date)
			}
		}

		page2, err := store.FilteredInvoices(ctx, "", 2)
		if err != nil {
			t.Fatalf("FilteredInvoices failed: %v", err)
		}
		if len(page2) != 1 || page2[0].ID != "i7" {
			t.Fatalf("Expected page 2 to hold only i7, got %v", page2)
		}
	})

	t.Run("page below 1 is clamped to the first page", func(t *testing.T) {
		clamped, err := store.FilteredInvoices(ctx, "", 0)
		if err != nil {
			t.Fatalf("FilteredInvoices failed: %v", err)
		}
		page1, err := store.FilteredInvoices(ctx, "", 1)
		if err != nil {
			t.Fatalf("FilteredInvoices failed: %v", err)
		}
		if len(clamped) != len(page1) || clamped[0].ID != page1[0].ID {
			t.Errorf("Page 0 should behave like page 1")
		}
	})

	t.Run("matches status label", func(t *testing.T) {
		invoices, err := store.FilteredInvoices(ctx, "paid", 1)
		if err != nil {
			t.Fatalf("FilteredInvoices failed: %v", err)
		}
		if len(invoices) != 4 {
			t.Fatalf("Expected 4 paid invoices, got %d", len(invoices))
		}
		for _, inv := range invoices {
			if inv.Status != "paid" {
				t.Errorf("Invoice %s has status %q", inv.ID, inv.Status)
			}
		}
	})

	t.Run("matches substring of the amount's decimal rendering", func(t *testing.T) {
		invoices, err := store.FilteredInvoices(ctx, "234", 1)
		if err != nil {
			t.Fatalf("FilteredInvoices failed: %v", err)
		}
		if len(invoices) != 1 || invoices[0].Amount != 12345 {
			t.Fatalf("Expected the 12345 invoice, got %v", invoices)
		}
	})

	t.Run("matches substring of the date text", func(t *testing.T) {
		invoices, err := store.FilteredInvoices(ctx, "2024-05-04", 1)
		if err != nil {
			t.Fatalf("FilteredInvoices failed: %v", err)
		}
		if len(invoices) != 1 || invoices[0].ID != "i4" {
			t.Fatalf("Expected only i4, got %v", invoices)
		}
	})

	t.Run("no match returns empty slice, not error", func(t *testing.T) {
		invoices, err := store.FilteredInvoices(ctx, "zzz-no-match", 1)
		if err != nil {
			t.Fatalf("FilteredInvoices failed: %v", err)
		}
		if len(invoices) != 0 {
			t.Errorf("Expected no invoices, got %d", len(invoices))
		}
	})

	t.Run("joined customer fields are carried on each row", func(t *testing.T) {
		invoices, err := store.FilteredInvoices(ctx, "bigco", 1)
		if err != nil {
			t.Fatalf("FilteredInvoices failed: %v", err)
		}
		if len(invoices) != 3 {
			t.Fatalf("Expected Bob's 3 invoices, got %d", len(invoices))
		}
		for _, inv := range invoices {
			if inv.Name != "Bob Brown" || inv.Email != "bob@bigco.com" {
				t.Errorf("Invoice %s carries wrong customer fields: %q %q", inv.ID, inv.Name, inv.Email)
			}
			if inv.ImageURL != nil {
				t.Errorf("Invoice %s: expected nil ImageURL", inv.ID)
			}
		}
	})
}

func TestInvoicePages(t *testing.T) {
	store := newTestStore(t)
	insertFixtures(t, store)
	ctx := context.Background()

	tests := []struct {
		query string
		want  int
	}{
		{"", 2},             // 7 matches -> 2 pages
		{"paid", 1},         // 4 matches
		{"zzz-no-match", 0}, // 0 matches -> 0 pages
	}
	for _, tt := range tests {
		pages, err := store.InvoicePages(ctx, tt.query)
		if err != nil {
			t.Fatalf("InvoicePages(%q) failed: %v", tt.query, err)
		}
		if pages != tt.want {
			t.Errorf("InvoicePages(%q) = %d, want %d", tt.query, pages, tt.want)
		}
	}
}

func TestInvoiceByID(t *testing.T) {
	store := newTestStore(t)
	insertFixtures(t, store)
	ctx := context.Background()

	t.Run("returns the raw minor-unit amount", func(t *testing.T) {
		inv, err := store.InvoiceByID(ctx, "i1")
		if err != nil {
			t.Fatalf("InvoiceByID failed: %v", err)
		}
		if inv == nil {
			t.Fatal("Expected invoice, got nil")
		}
		// No division happens in the storage layer; 12345 stays 12345.
		if inv.Amount != 12345 {
			t.Errorf("Amount = %d, want 12345", inv.Amount)
		}
		if inv.CustomerID != "c1" || inv.Status != "pending" {
			t.Errorf("Unexpected invoice: %+v", inv)
		}
	})

	t.Run("absent id is a nil result, not an error", func(t *testing.T) {
		inv, err := store.InvoiceByID(ctx, "no-such-id")
		if err != nil {
			t.Fatalf("InvoiceByID failed: %v", err)
		}
		if inv != nil {
			t.Errorf("Expected nil for absent invoice, got %+v", inv)
		}
	})
}

func TestLatestInvoices(t *testing.T) {
	store := newTestStore(t)
	insertFixtures(t, store)
	ctx := context.Background()

	invoices, err := store.LatestInvoices(ctx)
	if err != nil {
		t.Fatalf("LatestInvoices failed: %v", err)
	}

	if len(invoices) != 5 {
		t.Fatalf("Expected exactly 5 invoices, got %d", len(invoices))
	}
	for i := 1; i < len(invoices); i++ {
		if invoices[i].Date > invoices[i-1].Date {
			t.Errorf("Dates not non-increasing: %q after %q", invoices[i].Date, invoices[i-1].Date)
		}
	}
	if invoices[0].ID != "i1" {
		t.Errorf("Expected newest invoice i1 first, got %s", invoices[0].ID)
	}
}

func TestRevenue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, r := range []struct {
		month   string
		revenue int64
	}{{"Jan", 200000}, {"Feb", 180000}, {"Apr", 250000}} {
		if _, err := store.db.Exec(
			"INSERT INTO revenue (month, revenue) VALUES (?, ?)", r.month, r.revenue,
		); err != nil {
			t.Fatalf("Failed to insert revenue: %v", err)
		}
	}

	points, err := store.Revenue(ctx)
	if err != nil {
		t.Fatalf("Revenue failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(points))
	}
	// Month is a text label; ordering is the text-comparable form.
	for i := 1; i < len(points); i++ {
		if points[i].Month < points[i-1].Month {
			t.Errorf("Months not ascending: %q after %q", points[i].Month, points[i-1].Month)
		}
	}
}

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("merges the three aggregates", func(t *testing.T) {
		store := newTestStore(t)
		insertFixtures(t, store)

		summary, err := store.DashboardSummary(ctx)
		if err != nil {
			t.Fatalf("DashboardSummary failed: %v", err)
		}

		if summary.NumberOfInvoices != 7 {
			t.Errorf("NumberOfInvoices = %d, want 7", summary.NumberOfInvoices)
		}
		if summary.NumberOfCustomers != 3 {
			t.Errorf("NumberOfCustomers = %d, want 3", summary.NumberOfCustomers)
		}
		if summary.TotalPaidInvoices != 109400 {
			t.Errorf("TotalPaidInvoices = %d, want 109400", summary.TotalPaidInvoices)
		}
		if summary.TotalPendingInvoices != 15511 {
			t.Errorf("TotalPendingInvoices = %d, want 15511", summary.TotalPendingInvoices)
		}
	})

	t.Run("empty tables default every field to zero", func(t *testing.T) {
		store := newTestStore(t)

		summary, err := store.DashboardSummary(ctx)
		if err != nil {
			t.Fatalf("DashboardSummary failed: %v", err)
		}
		if summary.NumberOfInvoices != 0 || summary.NumberOfCustomers != 0 ||
			summary.TotalPaidInvoices != 0 || summary.TotalPendingInvoices != 0 {
			t.Errorf("Expected all-zero summary, got %+v", summary)
		}
	})
}

func TestInvoicesByAmount(t *testing.T) {
	store := newTestStore(t)
	insertFixtures(t, store)
	ctx := context.Background()

	probes, err := store.InvoicesByAmount(ctx, 666)
	if err != nil {
		t.Fatalf("InvoicesByAmount failed: %v", err)
	}
	if len(probes) != 1 {
		t.Fatalf("Expected 1 probe row, got %d", len(probes))
	}
	if probes[0].Amount != 666 || probes[0].Name != "Bob Brown" {
		t.Errorf("Unexpected probe row: %+v", probes[0])
	}

	probes, err = store.InvoicesByAmount(ctx, 1)
	if err != nil {
		t.Fatalf("InvoicesByAmount failed: %v", err)
	}
	if len(probes) != 0 {
		t.Errorf("Expected no rows for amount 1, got %d", len(probes))
	}
}

func TestStoreErrorWrapsCause(t *testing.T) {
	store := newTestStore(t)
	store.Close()

	_, err := store.Customers(context.Background())
	if err == nil {
		t.Fatal("Expected error from closed store")
	}

	var se *storage.StoreError
	if !errors.As(err, &se) {
		t.Fatalf("Expected *storage.StoreError, got %T", err)
	}
	if se.Op != "fetch customers" {
		t.Errorf("Op = %q, want %q", se.Op, "fetch customers")
	}
	if se.Unwrap() == nil {
		t.Error("Expected wrapped cause to be preserved")
	}
}

func TestSeed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	customers, err := store.Customers(ctx)
	if err != nil {
		t.Fatalf("Customers failed: %v", err)
	}
	if len(customers) == 0 {
		t.Fatal("Expected seeded customers")
	}

	// Seeding twice must not duplicate data.
	if err := store.Seed(ctx); err != nil {
		t.Fatalf("Second Seed failed: %v", err)
	}
	again, err := store.Customers(ctx)
	if err != nil {
		t.Fatalf("Customers failed: %v", err)
	}
	if len(again) != len(customers) {
		t.Errorf("Seed is not idempotent: %d then %d customers", len(customers), len(again))
	}
}

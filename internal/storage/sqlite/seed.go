package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Seed populates an empty database with demo customers, invoices and
// revenue so the dashboard renders something out of the box. It is a no-op
// when customers already exist. Amounts are minor units (cents).
func (s *SQLiteStore) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers").Scan(&count); err != nil {
		return fmt.Errorf("failed to check existing customers: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	type demoInvoice struct {
		amount int64
		date   string
		status string
	}
	demo := []struct {
		name     string
		email    string
		imageURL string
		invoices []demoInvoice
	}{
		{"Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png", []demoInvoice{
			{15795, "2024-12-06", "pending"},
			{66600, "2024-06-27", "pending"},
		}},
		{"Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png", []demoInvoice{
			{20348, "2024-11-14", "pending"},
			{32545, "2024-06-17", "paid"},
		}},
		{"Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png", []demoInvoice{
			{3040, "2024-10-29", "paid"},
			{54246, "2024-07-16", "pending"},
		}},
		{"Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png", []demoInvoice{
			{44800, "2024-09-10", "paid"},
			{1250, "2024-06-17", "paid"},
		}},
		{"Amy Burns", "amy@burns.com", "/customers/amy-burns.png", []demoInvoice{
			{34577, "2024-08-05", "pending"},
			{8945, "2024-06-03", "paid"},
		}},
		{"Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png", nil},
	}

	for _, c := range demo {
		customerID := uuid.New().String()
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO customers (id, name, email, image_url) VALUES (?, ?, ?, ?)",
			customerID, c.name, c.email, c.imageURL,
		); err != nil {
			return fmt.Errorf("failed to insert customer: %w", err)
		}

		for _, inv := range c.invoices {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO invoices (id, customer_id, amount, date, status) VALUES (?, ?, ?, ?, ?)",
				uuid.New().String(), customerID, inv.amount, inv.date, inv.status,
			); err != nil {
				return fmt.Errorf("failed to insert invoice: %w", err)
			}
		}
	}

	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	revenue := []int64{200000, 180000, 220000, 250000, 230000, 320000, 350000, 370000, 250000, 280000, 300000, 480000}
	for i, month := range months {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO revenue (month, revenue) VALUES (?, ?)",
			month, revenue[i],
		); err != nil {
			return fmt.Errorf("failed to insert revenue: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

package billing

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Bill is one row of the billing table, newest period first.
type Bill struct {
	bun.BaseModel `bun:"table:billing,alias:b"`

	CustomerID    string  `bun:"customer_id" json:"customer_id"`
	BillingPeriod string  `bun:"billing_period" json:"billing_period"`
	Amount        float64 `bun:"amount" json:"amount"`
	Status        string  `bun:"status" json:"status"`
	Description   string  `bun:"description" json:"description,omitempty"`
}

// Store reads billing records for the billing handler.
type Store interface {
	RecentBills(ctx context.Context, customerID string, limit int) ([]Bill, error)
}

type bunStore struct {
	db bun.IDB
}

func NewStore(db bun.IDB) Store {
	return &bunStore{db: db}
}

func (s *bunStore) RecentBills(ctx context.Context, customerID string, limit int) ([]Bill, error) {
	if limit <= 0 {
		limit = 6
	}

	var bills []Bill
	err := s.db.NewSelect().
		Model(&bills).
		Where("b.customer_id = ?", customerID).
		Order("billing_period DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select recent bills: %w", err)
	}
	return bills, nil
}

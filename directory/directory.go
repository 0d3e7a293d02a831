// Package directory is the read-only customer lookup backing authentication.
package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	contractx "github.com/siamtel/assistant/agent/contract"
)

// adminSentinel grants a synthetic administrator profile. Unlike customer ids,
// it matches case-insensitively.
const adminSentinel = "admin"

type customerRow struct {
	bun.BaseModel `bun:"table:customers,alias:c"`

	CustomerID string `bun:"customer_id,pk"`
	Name       string `bun:"name"`
	Email      string `bun:"email"`
	Phone      string `bun:"phone_number"`
	PlanID     string `bun:"service_plan_id"`
	Status     string `bun:"account_status"`
}

// Service resolves customer identifiers against the customers table.
type Service struct {
	db bun.IDB
}

var _ contractx.Directory = (*Service)(nil)

func New(db bun.IDB) (*Service, error) {
	if db == nil {
		return nil, errors.New("directory db is required")
	}
	return &Service{db: db}, nil
}

// Authenticate returns the profile for customerID, or ErrCustomerNotFound.
// Lookup is a case-sensitive exact match except for the admin sentinel.
func (s *Service) Authenticate(ctx context.Context, customerID string) (*contractx.CustomerProfile, error) {
	id := strings.TrimSpace(customerID)
	if id == "" {
		return nil, fmt.Errorf("%w: customer id is empty", contractx.ErrValidation)
	}

	if strings.EqualFold(id, adminSentinel) {
		return &contractx.CustomerProfile{
			CustomerID: adminSentinel,
			Name:       "Administrator",
			Email:      "admin@telecom.com",
			Phone:      "N/A",
			PlanID:     "N/A",
			Status:     "admin",
			UserType:   "admin",
		}, nil
	}

	var row customerRow
	err := s.db.NewSelect().
		Model(&row).
		Where("c.customer_id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", contractx.ErrCustomerNotFound, id)
		}
		return nil, fmt.Errorf("directory lookup: %w", err)
	}

	return &contractx.CustomerProfile{
		CustomerID: row.CustomerID,
		Name:       row.Name,
		Email:      row.Email,
		Phone:      row.Phone,
		PlanID:     row.PlanID,
		Status:     row.Status,
		UserType:   "customer",
	}, nil
}

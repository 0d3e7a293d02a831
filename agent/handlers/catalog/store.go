package catalog

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Plan is one row of the service_plans table.
type Plan struct {
	bun.BaseModel `bun:"table:service_plans,alias:p"`

	PlanID               string  `bun:"plan_id,pk" json:"plan_id"`
	Name                 string  `bun:"name" json:"name"`
	MonthlyCost          float64 `bun:"monthly_cost" json:"monthly_cost"`
	DataLimitGB          int     `bun:"data_limit_gb" json:"data_limit_gb"`
	UnlimitedData        bool    `bun:"unlimited_data" json:"unlimited_data"`
	UnlimitedVoice       bool    `bun:"unlimited_voice" json:"unlimited_voice"`
	SMSCount             int     `bun:"sms_count" json:"sms_count"`
	UnlimitedSMS         bool    `bun:"unlimited_sms" json:"unlimited_sms"`
	InternationalRoaming bool    `bun:"international_roaming" json:"international_roaming"`
	Description          string  `bun:"description" json:"description,omitempty"`
}

// Store reads the plan catalog for the recommendation handler.
type Store interface {
	AllPlans(ctx context.Context) ([]Plan, error)
}

type bunStore struct {
	db bun.IDB
}

func NewStore(db bun.IDB) Store {
	return &bunStore{db: db}
}

func (s *bunStore) AllPlans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	err := s.db.NewSelect().
		Model(&plans).
		Order("monthly_cost ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select service plans: %w", err)
	}
	return plans, nil
}

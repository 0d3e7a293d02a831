package network

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Incident is one row of the network_incidents table.
type Incident struct {
	bun.BaseModel `bun:"table:network_incidents,alias:i"`

	IncidentID   string `bun:"incident_id" json:"incident_id"`
	IncidentType string `bun:"incident_type" json:"incident_type"`
	Location     string `bun:"location" json:"location"`
	Status       string `bun:"status" json:"status"`
	Severity     string `bun:"severity" json:"severity"`
	Description  string `bun:"description" json:"description,omitempty"`
}

// Tower is one row of the cell_towers table.
type Tower struct {
	bun.BaseModel `bun:"table:cell_towers,alias:t"`

	TowerID           string `bun:"tower_id" json:"tower_id"`
	AreaID            string `bun:"area_id" json:"area_id"`
	TowerType         string `bun:"tower_type" json:"tower_type"`
	OperationalStatus string `bun:"operational_status" json:"operational_status"`
}

// Store reads live network status for the troubleshooting handler.
type Store interface {
	OpenIncidents(ctx context.Context, limit int) ([]Incident, error)
	DegradedTowers(ctx context.Context, limit int) ([]Tower, error)
}

type bunStore struct {
	db bun.IDB
}

func NewStore(db bun.IDB) Store {
	return &bunStore{db: db}
}

func (s *bunStore) OpenIncidents(ctx context.Context, limit int) ([]Incident, error) {
	if limit <= 0 {
		limit = 10
	}

	var incidents []Incident
	err := s.db.NewSelect().
		Model(&incidents).
		Where("i.status != ?", "resolved").
		Order("severity DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select open incidents: %w", err)
	}
	return incidents, nil
}

func (s *bunStore) DegradedTowers(ctx context.Context, limit int) ([]Tower, error) {
	if limit <= 0 {
		limit = 10
	}

	var towers []Tower
	err := s.db.NewSelect().
		Model(&towers).
		Where("t.operational_status != ?", "operational").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select degraded towers: %w", err)
	}
	return towers, nil
}

package directory

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/siamtel/assistant/agent/contract"
)

// lazyDB opens a bun handle without connecting. The admin sentinel and the
// validation paths never touch the database, so no server is needed.
func lazyDB() *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN("postgres://localhost:1/unused?sslmode=disable")))
	return bun.NewDB(sqldb, pgdialect.New())
}

func TestNewRequiresDB(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}

func TestAuthenticateEmptyID(t *testing.T) {
	t.Parallel()

	svc, err := New(lazyDB())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = svc.Authenticate(context.Background(), "   ")
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthenticateAdminSentinel(t *testing.T) {
	t.Parallel()

	svc, err := New(lazyDB())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, id := range []string{"admin", "Admin", "ADMIN", " admin "} {
		profile, err := svc.Authenticate(context.Background(), id)
		if err != nil {
			t.Fatalf("Authenticate(%q) error = %v", id, err)
		}
		if profile.UserType != "admin" {
			t.Fatalf("Authenticate(%q) user type = %q, want admin", id, profile.UserType)
		}
		if profile.Name != "Administrator" {
			t.Fatalf("Authenticate(%q) name = %q", id, profile.Name)
		}
	}
}

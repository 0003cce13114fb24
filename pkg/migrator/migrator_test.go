package migrator

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/ghuser/pantry/migrations"
)

func TestUp_Idempotent(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close() //nolint:errcheck
	if err := db.PingContext(context.Background()); err != nil {
		t.Skipf("PostgreSQL not available: %v", err)
	}

	for i := range 2 {
		if err := Up(context.Background(), db, migrations.FS); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	var constraint string
	err = db.QueryRowContext(context.Background(),
		`SELECT conname FROM pg_constraint WHERE conname = 'stash_items_product_id_expiry_date_key' AND condeferrable`,
	).Scan(&constraint)
	if err != nil {
		t.Fatalf("expected deferrable expiry date constraint: %v", err)
	}
}

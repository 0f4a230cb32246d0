package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
)

const defaultImage = "postgres:17-alpine"

// caseTables lists every table written by the workflow, children first.
var caseTables = []string{
	"customer_notifications",
	"case_notes",
	"case_tasks",
	"case_history",
	"cases",
	"notification_cooldowns",
	"staff",
}

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB starts one PostgreSQL container per test binary, applies the
// embedded goose migrations and returns a fresh pool closed via t.Cleanup.
// CASEDESK_TEST_PG_IMAGE overrides the image.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// DSN returns the connection string of the shared container.
// SetupTestDB must have been called first.
func DSN() string {
	return sharedDSN
}

// Reset empties every workflow table. Tests that assert on global state,
// such as ledger verification, call it first; they must not run in parallel
// with other tests of the same binary.
func Reset(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), "TRUNCATE "+strings.Join(caseTables, ", ")+" CASCADE")
	if err != nil {
		t.Fatalf("testhelper: reset tables: %v", err)
	}
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	image := os.Getenv("CASEDESK_TEST_PG_IMAGE")
	if image == "" {
		image = defaultImage
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "casedesk",
				"POSTGRES_PASSWORD": "casedesk",
				"POSTGRES_DB":       "casedesk_test",
				"TZ":                "UTC",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("get container endpoint: %w", err)
	}

	dsn := fmt.Sprintf("postgres://casedesk:casedesk@%s/casedesk_test?sslmode=disable&timezone=UTC", endpoint)

	if _, err := postgres.Migrate(ctx, dsn, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}

	return dsn, nil
}

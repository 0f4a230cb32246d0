package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current time truncated to PostgreSQL precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedStaff creates a staff member with the given role. The password hash
// is a placeholder and does not verify against any password.
func SeedStaff(t *testing.T, pool *pgxpool.Pool, role domain.StaffRole) domain.Staff {
	t.Helper()

	suffix := uniqueSuffix()
	s := domain.Staff{
		ID:           uuid.New(),
		Email:        "staff-" + suffix + "@firm.example",
		Name:         "Staff " + suffix,
		Role:         role,
		PasswordHash: "seeded",
		CreatedAt:    Now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO staff (id, email, name, role, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.Email, s.Name, string(s.Role), s.PasswordHash, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStaff: %v", err)
	}

	return s
}

// SeedCase creates a case in the given state together with its creation
// ledger record, the way the workflow service does.
func SeedCase(t *testing.T, pool *pgxpool.Pool, state domain.CaseState) domain.Case {
	t.Helper()
	ctx := context.Background()

	now := Now()
	email := "customer-" + uniqueSuffix() + "@example.com"
	c := domain.Case{
		ID:              uuid.New(),
		CustomerID:      uuid.New(),
		Title:           "Residence permit " + uniqueSuffix(),
		Category:        "immigration",
		Subcategory:     "residence",
		State:           state,
		DocumentState:   domain.DocumentStateMissing,
		Priority:        domain.PriorityMedium,
		ContactEmail:    &email,
		LastStateChange: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cases (id, customer_id, title, category, subcategory, state, document_state,
		                    priority, contact_email, last_state_change, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.CustomerID, c.Title, c.Category, c.Subcategory, string(c.State), string(c.DocumentState),
		string(c.Priority), c.ContactEmail, c.LastStateChange, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCase insert case: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO case_history (id, case_id, state_from, state_in, date)
		 VALUES ($1, $2, $3, $3, $4)`,
		uuid.New(), c.ID, string(c.State), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCase insert history: %v", err)
	}

	return c
}

// SeedTask attaches a task to caseID.
func SeedTask(t *testing.T, pool *pgxpool.Pool, caseID uuid.UUID, done bool) domain.CaseTask {
	t.Helper()

	task := domain.CaseTask{
		ID:        uuid.New(),
		CaseID:    caseID,
		Title:     "Collect passport copy " + uniqueSuffix(),
		Done:      done,
		CreatedAt: Now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO case_tasks (id, case_id, title, done, created_at) VALUES ($1, $2, $3, $4, $5)`,
		task.ID, task.CaseID, task.Title, task.Done, task.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}

	return task
}

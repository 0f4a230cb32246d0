package domain

import (
	"time"

	"github.com/google/uuid"
)

// Case is a unit of legal work tracked through the fixed workflow.
type Case struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	Title           string
	Category        string
	Subcategory     string
	State           CaseState
	DocumentState   DocumentState
	Priority        Priority
	Deadline        *time.Time
	SLADue          *time.Time
	AssignedTo      *uuid.UUID
	ContactEmail    *string
	LastStateChange time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsClosed reports whether the case reached the terminal state.
func (c *Case) IsClosed() bool {
	return IsTerminal(c.State)
}

// HistoryRecord is one immutable ledger entry. The creation record has
// StateFrom == StateIn.
type HistoryRecord struct {
	ID        uuid.UUID
	CaseID    uuid.UUID
	StateFrom CaseState
	StateIn   CaseState
	Date      time.Time
	ActorID   *uuid.UUID
}

// IsCreation reports whether the record seeds the case rather than moves it.
func (r HistoryRecord) IsCreation() bool {
	return r.StateFrom == r.StateIn
}

// CaseTask is a staff to-do item attached to a case.
type CaseTask struct {
	ID        uuid.UUID
	CaseID    uuid.UUID
	Title     string
	Done      bool
	CreatedAt time.Time
	DueDate   *time.Time
}

// Note is an append-only free-text remark on a case.
type Note struct {
	ID       uuid.UUID
	CaseID   uuid.UUID
	Date     time.Time
	Text     string
	AuthorID *uuid.UUID
}

// CustomerNotification is a message surfaced to staff about a customer.
// ExternalID is set for notifications pulled from the customer portal and
// is unique per customer.
type CustomerNotification struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	CaseID     *uuid.UUID
	Source     NotificationSource
	ExternalID *string
	Message    string
	CreatedAt  time.Time
}

// CaseMismatch is a ledger inconsistency found by verification.
// LedgerState is nil when the case has no ledger records at all.
type CaseMismatch struct {
	CaseID      uuid.UUID
	CaseState   CaseState
	LedgerState *CaseState
	LastRecord  *time.Time
}

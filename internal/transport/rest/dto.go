package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/service/caseflow"
)

type caseResponse struct {
	ID              uuid.UUID          `json:"id"`
	CustomerID      uuid.UUID          `json:"customerId"`
	Title           string             `json:"title"`
	Category        string             `json:"category"`
	Subcategory     string             `json:"subcategory,omitempty"`
	State           string             `json:"state"`
	Stage           string             `json:"stage"`
	DocumentState   string             `json:"documentState"`
	Priority        string             `json:"priority"`
	Deadline        *time.Time         `json:"deadline,omitempty"`
	SLADue          *time.Time         `json:"slaDue,omitempty"`
	AssignedTo      *uuid.UUID         `json:"assignedTo,omitempty"`
	ContactEmail    *string            `json:"contactEmail,omitempty"`
	LastStateChange time.Time          `json:"lastStateChange"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	Successors      []string           `json:"successors"`
	Evaluation      evaluationResponse `json:"evaluation"`
	DeadlineStatus  deadlineResponse   `json:"deadlineStatus"`
	Tasks           []taskResponse     `json:"tasks"`
}

type evaluationResponse struct {
	Ready        bool `json:"ready"`
	PendingTasks int  `json:"pendingTasks"`
	SLAOverdue   bool `json:"slaOverdue"`
}

type deadlineResponse struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

type taskResponse struct {
	ID        uuid.UUID  `json:"id"`
	CaseID    uuid.UUID  `json:"caseId"`
	Title     string     `json:"title"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"createdAt"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
}

type historyResponse struct {
	ID        uuid.UUID  `json:"id"`
	StateFrom string     `json:"stateFrom"`
	StateIn   string     `json:"stateIn"`
	Date      time.Time  `json:"date"`
	ActorID   *uuid.UUID `json:"actorId,omitempty"`
}

type noteResponse struct {
	ID       uuid.UUID  `json:"id"`
	Date     time.Time  `json:"date"`
	Text     string     `json:"text"`
	AuthorID *uuid.UUID `json:"authorId,omitempty"`
}

type notificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	CaseID    *uuid.UUID `json:"caseId,omitempty"`
	Source    string     `json:"source"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
}

type mismatchResponse struct {
	CaseID      uuid.UUID  `json:"caseId"`
	CaseState   string     `json:"caseState"`
	LedgerState *string    `json:"ledgerState"`
	LastRecord  *time.Time `json:"lastRecord,omitempty"`
}

func toCaseResponse(v caseflow.CaseView) caseResponse {
	c := v.Case
	successors := domain.Successors(c.State)
	succ := make([]string, len(successors))
	for i, s := range successors {
		succ[i] = s.String()
	}
	return caseResponse{
		ID:              c.ID,
		CustomerID:      c.CustomerID,
		Title:           c.Title,
		Category:        c.Category,
		Subcategory:     c.Subcategory,
		State:           c.State.String(),
		Stage:           v.Stage.String(),
		DocumentState:   c.DocumentState.String(),
		Priority:        c.Priority.String(),
		Deadline:        c.Deadline,
		SLADue:          c.SLADue,
		AssignedTo:      c.AssignedTo,
		ContactEmail:    c.ContactEmail,
		LastStateChange: c.LastStateChange,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		Successors:      succ,
		Evaluation: evaluationResponse{
			Ready:        v.Evaluation.Ready,
			PendingTasks: v.Evaluation.PendingTasks,
			SLAOverdue:   v.Evaluation.SLAOverdue,
		},
		DeadlineStatus: deadlineResponse{Type: v.Deadline.Type.String(), Message: v.Deadline.Message},
		Tasks:          toTaskResponses(v.Tasks),
	}
}

func toTaskResponse(t domain.CaseTask) taskResponse {
	return taskResponse{ID: t.ID, CaseID: t.CaseID, Title: t.Title, Done: t.Done, CreatedAt: t.CreatedAt, DueDate: t.DueDate}
}

func toTaskResponses(tasks []domain.CaseTask) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}

func toHistoryResponses(records []domain.HistoryRecord) []historyResponse {
	out := make([]historyResponse, len(records))
	for i, rec := range records {
		out[i] = historyResponse{
			ID:        rec.ID,
			StateFrom: rec.StateFrom.String(),
			StateIn:   rec.StateIn.String(),
			Date:      rec.Date,
			ActorID:   rec.ActorID,
		}
	}
	return out
}

func toNoteResponse(n domain.Note) noteResponse {
	return noteResponse{ID: n.ID, Date: n.Date, Text: n.Text, AuthorID: n.AuthorID}
}

func toNotificationResponses(items []domain.CustomerNotification) []notificationResponse {
	out := make([]notificationResponse, len(items))
	for i, n := range items {
		out[i] = notificationResponse{ID: n.ID, CaseID: n.CaseID, Source: n.Source.String(), Message: n.Message, CreatedAt: n.CreatedAt}
	}
	return out
}

func toMismatchResponses(items []domain.CaseMismatch) []mismatchResponse {
	out := make([]mismatchResponse, len(items))
	for i, m := range items {
		var ledger *string
		if m.LedgerState != nil {
			s := m.LedgerState.String()
			ledger = &s
		}
		out[i] = mismatchResponse{CaseID: m.CaseID, CaseState: m.CaseState.String(), LedgerState: ledger, LastRecord: m.LastRecord}
	}
	return out
}

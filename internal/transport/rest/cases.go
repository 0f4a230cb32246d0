package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/service/caseflow"
	"github.com/heartmarshall/casedesk-backend/internal/transport/dataloader"
)

type caseService interface {
	Create(ctx context.Context, input caseflow.CreateInput) (domain.Case, error)
	Get(ctx context.Context, caseID uuid.UUID) (caseflow.CaseView, error)
	List(ctx context.Context, f domain.CaseFilter) ([]domain.Case, error)
	View(c domain.Case, tasks []domain.CaseTask, now time.Time) caseflow.CaseView
	Now() time.Time
	Transition(ctx context.Context, caseID uuid.UUID, target domain.CaseState) (domain.Case, error)
	History(ctx context.Context, caseID uuid.UUID) ([]domain.HistoryRecord, error)
	Purge(ctx context.Context, caseID uuid.UUID) error

	AddTask(ctx context.Context, caseID uuid.UUID, input caseflow.TaskInput) (domain.CaseTask, error)
	SetTaskDone(ctx context.Context, caseID, taskID uuid.UUID, done bool) (domain.CaseTask, error)
	DeleteTask(ctx context.Context, caseID, taskID uuid.UUID) error
	ListTasks(ctx context.Context, caseID uuid.UUID) ([]domain.CaseTask, error)

	AddNote(ctx context.Context, caseID uuid.UUID, text string) (domain.Note, error)
	ListNotes(ctx context.Context, caseID uuid.UUID) ([]domain.Note, error)
}

// CaseHandler serves the case board, case lifecycle, tasks and notes.
type CaseHandler struct {
	svc caseService
	out presenter
}

// NewCaseHandler creates a CaseHandler.
func NewCaseHandler(svc caseService, logger *slog.Logger, production bool) *CaseHandler {
	return &CaseHandler{svc: svc, out: presenter{log: logger.With("handler", "cases"), production: production}}
}

type createCaseRequest struct {
	CustomerID    uuid.UUID  `json:"customerId"`
	Title         string     `json:"title"`
	Category      string     `json:"category"`
	Subcategory   string     `json:"subcategory"`
	Stage         *string    `json:"stage"`
	State         *string    `json:"state"`
	DocumentState string     `json:"documentState"`
	Priority      string     `json:"priority"`
	Deadline      *time.Time `json:"deadline"`
	SLADue        *time.Time `json:"slaDue"`
	AssignedTo    *uuid.UUID `json:"assignedTo"`
	ContactEmail  *string    `json:"contactEmail"`
}

type transitionRequest struct {
	Target string `json:"target"`
}

// List handles GET /cases: the board, with derived values on every card.
// Query: state, priority, customerId, assignedTo, includeClosed, limit, offset.
func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseCaseFilter(r)
	if err != nil {
		h.out.error(w, r, err)
		return
	}

	cases, err := h.svc.List(r.Context(), f)
	if err != nil {
		h.out.error(w, r, err)
		return
	}

	ids := make([]uuid.UUID, len(cases))
	for i, c := range cases {
		ids[i] = c.ID
	}
	tasks, err := dataloader.FromContext(r.Context()).LoadTasks(r.Context(), ids)
	if err != nil {
		h.out.error(w, r, err)
		return
	}

	now := h.svc.Now()
	out := make([]caseResponse, len(cases))
	for i, c := range cases {
		out[i] = toCaseResponse(h.svc.View(c, tasks[i], now))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /cases.
func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCaseRequest
	if err := decode(w, r, &req); err != nil {
		h.out.error(w, r, err)
		return
	}

	input := caseflow.CreateInput{
		CustomerID:    req.CustomerID,
		Title:         req.Title,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		DocumentState: domain.DocumentState(req.DocumentState),
		Priority:      domain.Priority(req.Priority),
		Deadline:      req.Deadline,
		SLADue:        req.SLADue,
		AssignedTo:    req.AssignedTo,
		ContactEmail:  req.ContactEmail,
	}
	if req.Stage != nil {
		stage := domain.CaseStage(*req.Stage)
		input.Stage = &stage
	}
	if req.State != nil {
		state := domain.CaseState(*req.State)
		input.State = &state
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCaseResponse(h.svc.View(created, nil, h.svc.Now())))
}

// Get handles GET /cases/{id}.
func (h *CaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	view, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseResponse(view))
}

// Transition handles POST /cases/{id}/transitions.
func (h *CaseHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	var req transitionRequest
	if err := decode(w, r, &req); err != nil {
		h.out.error(w, r, err)
		return
	}

	moved, err := h.svc.Transition(r.Context(), id, domain.CaseState(req.Target))
	if err != nil {
		h.out.error(w, r, err)
		return
	}

	view, err := h.svc.Get(r.Context(), moved.ID)
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseResponse(view))
}

// History handles GET /cases/{id}/history.
func (h *CaseHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	records, err := h.svc.History(r.Context(), id)
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponses(records))
}

// Purge handles DELETE /cases/{id}. Admin only.
func (h *CaseHandler) Purge(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.out.error(w, r, err)
		return
	}
	if err := h.svc.Purge(r.Context(), id); err != nil {
		h.out.error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseCaseFilter(r *http.Request) (domain.CaseFilter, error) {
	q := r.URL.Query()
	var f domain.CaseFilter

	if v := q.Get("state"); v != "" {
		s := domain.CaseState(v)
		f.State = &s
	}
	if v := q.Get("priority"); v != "" {
		p := domain.Priority(v)
		f.Priority = &p
	}
	for name, dst := range map[string]**uuid.UUID{"customerId": &f.CustomerID, "assignedTo": &f.AssignedTo} {
		if v := q.Get(name); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return f, domain.NewValidationError(name, "invalid id")
			}
			*dst = &id
		}
	}
	f.IncludeClosed = q.Get("includeClosed") == "true"

	var err error
	if f.Limit, err = intQuery(r, "limit", 0); err != nil {
		return f, err
	}
	if f.Offset, err = intQuery(r, "offset", 0); err != nil {
		return f, err
	}
	return f, nil
}

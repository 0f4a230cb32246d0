// Package caseflow implements the case lifecycle: creation, transitions
// recorded atomically in the history ledger, tasks, notes, the derived
// readiness view, and ledger maintenance.
package caseflow

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/config"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

type caseRepo interface {
	Create(ctx context.Context, c domain.Case) (domain.Case, error)
	UpdateState(ctx context.Context, id uuid.UUID, from, to domain.CaseState, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Case, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Case, error)
	List(ctx context.Context, f domain.CaseFilter) ([]domain.Case, error)
}

type historyRepo interface {
	Append(ctx context.Context, rec domain.HistoryRecord) (domain.HistoryRecord, error)
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.HistoryRecord, error)
	DeleteByCase(ctx context.Context, caseID uuid.UUID) (int64, error)
	Mismatches(ctx context.Context) ([]domain.CaseMismatch, error)
}

type taskRepo interface {
	Create(ctx context.Context, t domain.CaseTask) (domain.CaseTask, error)
	SetDone(ctx context.Context, caseID, taskID uuid.UUID, done bool) (domain.CaseTask, error)
	Delete(ctx context.Context, caseID, taskID uuid.UUID) error
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.CaseTask, error)
	ListByCaseIDs(ctx context.Context, caseIDs []uuid.UUID) ([]domain.CaseTask, error)
	DeleteByCase(ctx context.Context, caseID uuid.UUID) (int64, error)
}

type noteRepo interface {
	Create(ctx context.Context, n domain.Note) (domain.Note, error)
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.Note, error)
	DeleteByCase(ctx context.Context, caseID uuid.UUID) (int64, error)
}

type notificationPurger interface {
	DeleteByCase(ctx context.Context, caseID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	NotifyTransition(ctx context.Context, c domain.Case, stage domain.CaseStage) error
}

type mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// Repos groups the stores the service writes to.
type Repos struct {
	Cases         caseRepo
	History       historyRepo
	Tasks         taskRepo
	Notes         noteRepo
	Notifications notificationPurger
}

// Service implements case workflow operations.
type Service struct {
	log           *slog.Logger
	cases         caseRepo
	history       historyRepo
	tasks         taskRepo
	notes         noteRepo
	notifications notificationPurger
	tx            txManager
	notifier      notifier
	mail          mailer
	scheme        domain.StageScheme
	cfg           config.WorkflowConfig
	now           func() time.Time

	// post-commit side effects
	bg sync.WaitGroup
}

// NewService creates a case workflow service. The stage scheme must already
// be validated by config.Validate.
func NewService(
	logger *slog.Logger,
	repos Repos,
	tx txManager,
	n notifier,
	m mailer,
	cfg config.WorkflowConfig,
) *Service {
	scheme, err := domain.SchemeByName(cfg.StageScheme)
	if err != nil {
		scheme = domain.ClassicScheme
	}
	return &Service{
		log:           logger.With("service", "caseflow"),
		cases:         repos.Cases,
		history:       repos.History,
		tasks:         repos.Tasks,
		notes:         repos.Notes,
		notifications: repos.Notifications,
		tx:            tx,
		notifier:      n,
		mail:          m,
		scheme:        scheme,
		cfg:           cfg,
		now:           time.Now,
	}
}

// WithClock replaces the service clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Scheme returns the stage scheme in use.
func (s *Service) Scheme() domain.StageScheme { return s.scheme }

// Wait blocks until post-transition side effects started so far have
// finished.
func (s *Service) Wait() { s.bg.Wait() }

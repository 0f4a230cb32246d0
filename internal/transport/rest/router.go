package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/config"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/transport/dataloader"
	"github.com/heartmarshall/casedesk-backend/internal/transport/middleware"
)

type accessVerifier interface {
	VerifyAccess(header string) (domain.Identity, error)
}

type taskBatcher interface {
	TasksByCaseIDs(ctx context.Context, caseIDs []uuid.UUID) (map[uuid.UUID][]domain.CaseTask, error)
}

// RouterDeps is everything the HTTP surface is built from.
type RouterDeps struct {
	Logger        *slog.Logger
	Verifier      accessVerifier
	Tasks         taskBatcher
	CORS          config.CORSConfig
	Limiter       *middleware.RateLimiter
	AuthRate      int
	Health        *HealthHandler
	Auth          *AuthHandler
	Cases         *CaseHandler
	Notifications *NotificationHandler
	Admin         *AdminHandler
}

// NewRouter builds the chi router with the global middleware stack.
// A nil Limiter disables rate limiting of the auth endpoints.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Verifier),
	)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/health", d.Health.Health)
	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)

	r.Group(func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(d.Limiter.Limit(d.AuthRate))
		}
		r.Post("/auth/login", d.Auth.Login)
		r.Post("/auth/refresh", d.Auth.Refresh)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireIdentity)

		r.Route("/cases", func(r chi.Router) {
			r.With(dataloader.Middleware(d.Tasks)).Get("/", d.Cases.List)
			r.Post("/", d.Cases.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", d.Cases.Get)
				r.With(middleware.RequireAdmin).Delete("/", d.Cases.Purge)
				r.Post("/transitions", d.Cases.Transition)
				r.Get("/history", d.Cases.History)

				r.Get("/tasks", d.Cases.ListTasks)
				r.Post("/tasks", d.Cases.AddTask)
				r.Put("/tasks/{taskID}/done", d.Cases.SetTaskDone)
				r.Delete("/tasks/{taskID}", d.Cases.DeleteTask)

				r.Get("/notes", d.Cases.ListNotes)
				r.Post("/notes", d.Cases.AddNote)
			})
		})

		r.Get("/customers/{id}/notifications", d.Notifications.List)
		r.Post("/customers/{id}/notifications/refresh", d.Notifications.Refresh)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/ledger/verify", d.Admin.VerifyLedger)
		r.Get("/cooldowns", d.Admin.ListCooldowns)
		r.Delete("/cooldowns/{key}", d.Admin.ClearCooldown)
	})

	return r
}

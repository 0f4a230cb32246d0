package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/casedesk-backend/internal/adapter/mail"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/portal"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/caserepo"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/cooldown"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/note"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/staff"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/task"
	"github.com/heartmarshall/casedesk-backend/internal/auth"
	"github.com/heartmarshall/casedesk-backend/internal/config"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
	authsvc "github.com/heartmarshall/casedesk-backend/internal/service/auth"
	"github.com/heartmarshall/casedesk-backend/internal/service/caseflow"
	cooldownsvc "github.com/heartmarshall/casedesk-backend/internal/service/cooldown"
	"github.com/heartmarshall/casedesk-backend/internal/service/deadline"
	"github.com/heartmarshall/casedesk-backend/internal/service/mailer"
	notificationsvc "github.com/heartmarshall/casedesk-backend/internal/service/notification"
)

type mailTransport interface {
	Name() string
	Send(ctx context.Context, msg domain.MailMessage) error
}

// Services is the wired service layer shared by the server and casectl.
type Services struct {
	Tokens        *auth.TokenIssuer
	Auth          *authsvc.Service
	Cases         *caseflow.Service
	Cooldowns     *cooldownsvc.Guard
	Notifications *notificationsvc.Service
	Mailer        *mailer.Service
	Deadlines     *deadline.Service
}

// NewServices builds repositories, adapters and services on top of pool.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Services {
	txm := postgres.NewTxManager(pool)

	cases := caserepo.New(pool)
	staffRepo := staff.New(pool)
	notifications := notification.New(pool)

	var primary, fallback mailTransport
	if cfg.Mail.SMTPConfigured() {
		primary = mail.NewSMTP(mail.SMTPConfig{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			Username: cfg.Mail.SMTPUser,
			Password: cfg.Mail.SMTPPassword,
			From:     cfg.Mail.From,
		}, logger)
	}
	if cfg.Mail.FallbackConfigured() {
		fallback = mail.NewHTTPAPI(cfg.Mail.FallbackURL, cfg.Mail.FallbackKey, cfg.Mail.From, logger)
	}
	if primary == nil && fallback == nil {
		logger.Warn("no mail transport configured, outgoing mail will be dropped")
	}
	outbox := mailer.NewService(logger, primary, fallback, cfg.Mail)

	guard := cooldownsvc.NewGuard(logger, cooldown.New(pool), cfg.Cooldown)
	feed := notificationsvc.NewService(logger, notifications, cases,
		portal.NewClient(cfg.Portal.BaseURL, cfg.Portal.Timeout, logger), guard)

	tokens := auth.NewTokenIssuer(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret, cfg.Auth.Issuer,
		cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)

	return &Services{
		Tokens: tokens,
		Auth:   authsvc.NewService(logger, staffRepo, tokens, cfg.Auth),
		Cases: caseflow.NewService(logger, caseflow.Repos{
			Cases:         cases,
			History:       history.New(pool),
			Tasks:         task.New(pool),
			Notes:         note.New(pool),
			Notifications: notifications,
		}, txm, feed, outbox, cfg.Workflow),
		Cooldowns:     guard,
		Notifications: feed,
		Mailer:        outbox,
		Deadlines:     deadline.NewService(logger, cases, staffRepo, outbox, cfg.Workflow.SoonWindow),
	}
}

package config

import (
	"fmt"
	"time"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Workflow.validate(); err != nil {
		return fmt.Errorf("workflow: %w", err)
	}
	if err := c.Cooldown.validate(); err != nil {
		return fmt.Errorf("cooldown: %w", err)
	}
	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}
	switch c.Server.Environment {
	case "production", "staging", "development":
	default:
		return fmt.Errorf("server.environment must be production, staging or development (got %q)", c.Server.Environment)
	}
	return nil
}

func (a *AuthConfig) validate() error {
	if len(a.AccessSecret) < 32 {
		return fmt.Errorf("access_secret must be at least 32 characters (got %d)", len(a.AccessSecret))
	}
	if len(a.RefreshSecret) < 32 {
		return fmt.Errorf("refresh_secret must be at least 32 characters (got %d)", len(a.RefreshSecret))
	}
	if a.AccessSecret == a.RefreshSecret {
		return fmt.Errorf("access_secret and refresh_secret must differ")
	}
	if a.AccessTokenTTL <= 0 || a.RefreshTokenTTL <= a.AccessTokenTTL {
		return fmt.Errorf("refresh_token_ttl (%s) must exceed access_token_ttl (%s)", a.RefreshTokenTTL, a.AccessTokenTTL)
	}
	if a.BcryptCost < 4 || a.BcryptCost > 31 {
		return fmt.Errorf("bcrypt_cost must be in [4, 31] (got %d)", a.BcryptCost)
	}
	return nil
}

func (w *WorkflowConfig) validate() error {
	if _, err := domain.SchemeByName(w.StageScheme); err != nil {
		return err
	}
	if w.SoonWindow <= 0 {
		return fmt.Errorf("soon_window must be > 0 (got %s)", w.SoonWindow)
	}
	for name, d := range map[string]time.Duration{
		"urgent": w.SLA.Urgent, "high": w.SLA.High, "medium": w.SLA.Medium, "low": w.SLA.Low,
	} {
		if d < 0 {
			return fmt.Errorf("sla.%s must be >= 0 (got %s)", name, d)
		}
	}
	return nil
}

func (c *CooldownConfig) validate() error {
	if c.Short <= 0 {
		return fmt.Errorf("short must be > 0 (got %s)", c.Short)
	}
	if c.Long < c.Short {
		return fmt.Errorf("long (%s) must not be shorter than short (%s)", c.Long, c.Short)
	}
	return nil
}

func (m *MailConfig) validate() error {
	if m.Retries < 1 {
		return fmt.Errorf("retries must be >= 1 (got %d)", m.Retries)
	}
	if m.BaseDelay < 0 {
		return fmt.Errorf("base_delay must be >= 0 (got %s)", m.BaseDelay)
	}
	return nil
}

// SLAFor returns the SLA window for a priority.
func (w WorkflowConfig) SLAFor(p domain.Priority) time.Duration {
	switch p {
	case domain.PriorityUrgent:
		return w.SLA.Urgent
	case domain.PriorityHigh:
		return w.SLA.High
	case domain.PriorityMedium:
		return w.SLA.Medium
	case domain.PriorityLow:
		return w.SLA.Low
	}
	return 0
}

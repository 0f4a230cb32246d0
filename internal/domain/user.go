package domain

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a firm employee who can log in and work cases.
type Staff struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         StaffRole
	PasswordHash string
	CreatedAt    time.Time
}

// Identity returns the claims that may be embedded in an access token.
// The password hash is never part of it.
func (s Staff) Identity() Identity {
	return Identity{
		ID:    s.ID,
		Email: s.Email,
		Name:  s.Name,
		Role:  s.Role,
	}
}

// Identity is a verified actor as seen by the workflow core.
type Identity struct {
	ID         uuid.UUID
	Email      string
	Name       string
	Role       StaffRole
	Attributes map[string]any
}

// IsAdmin reports whether the actor may run administrative operations.
func (i Identity) IsAdmin() bool {
	return i.Role == StaffRoleAdmin
}

// Cooldown is a persisted suppression window for a downstream endpoint.
type Cooldown struct {
	EndpointKey string
	Until       time.Time
	Reason      string
}

// Active reports whether the cooldown still suppresses calls at now.
func (c Cooldown) Active(now time.Time) bool {
	return now.Before(c.Until)
}

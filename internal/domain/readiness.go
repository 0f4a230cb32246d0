package domain

import (
	"fmt"
	"math"
	"time"
)

// Evaluation is the derived, never-stored projection of a case.
type Evaluation struct {
	Ready        bool
	PendingTasks int
	SLAOverdue   bool
}

// Evaluate derives readiness and SLA status for c at now. It is pure: the
// same inputs always yield the same output, so callers recompute it on every
// read instead of caching it.
func Evaluate(c Case, tasks []CaseTask, scheme StageScheme, now time.Time) Evaluation {
	pending := 0
	for _, t := range tasks {
		if !t.Done {
			pending++
		}
	}
	return Evaluation{
		Ready:        scheme.ToStage(c.State) == scheme.Actionable(),
		PendingTasks: pending,
		SLAOverdue:   c.SLADue != nil && now.After(*c.SLADue),
	}
}

// DeadlineType is the UI severity of a case deadline.
type DeadlineType string

const (
	DeadlineOverdue DeadlineType = "overdue"
	DeadlineSoon    DeadlineType = "soon"
	DeadlineNone    DeadlineType = "none"
)

func (d DeadlineType) String() string { return string(d) }

// DefaultSoonWindow is how far ahead a deadline counts as "soon".
const DefaultSoonWindow = 48 * time.Hour

// DeadlineStatus is a classified deadline plus a ready-to-render message.
type DeadlineStatus struct {
	Type    DeadlineType
	Message string
}

// ClassifyDeadline classifies deadline relative to now. A nil deadline or one
// further out than soonWindow has no signal.
func ClassifyDeadline(deadline *time.Time, now time.Time, soonWindow time.Duration) DeadlineStatus {
	if deadline == nil {
		return DeadlineStatus{Type: DeadlineNone}
	}
	until := deadline.Sub(now)
	switch {
	case until < 0:
		return DeadlineStatus{Type: DeadlineOverdue, Message: "Overdue by " + humanHours(-until)}
	case until > 0 && until <= soonWindow:
		return DeadlineStatus{Type: DeadlineSoon, Message: "Due in " + humanHours(until)}
	}
	return DeadlineStatus{Type: DeadlineNone}
}

// humanHours renders d in whole hours, switching to days above 48h and to
// minutes below one hour.
func humanHours(d time.Duration) string {
	switch {
	case d < time.Hour:
		m := int(math.Ceil(d.Minutes()))
		return fmt.Sprintf("%dm", m)
	case d > 48*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

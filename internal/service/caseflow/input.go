package caseflow

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

const (
	maxTitleLength    = 200
	maxCategoryLength = 100
	maxNoteLength     = 10000
	maxTaskLength     = 500
)

// CreateInput holds parameters for opening a case. Either Stage or State may
// pick the initial position; with neither, the case starts in INTAKE.
type CreateInput struct {
	CustomerID    uuid.UUID
	Title         string
	Category      string
	Subcategory   string
	Stage         *domain.CaseStage
	State         *domain.CaseState
	DocumentState domain.DocumentState
	Priority      domain.Priority
	Deadline      *time.Time
	SLADue        *time.Time
	AssignedTo    *uuid.UUID
	ContactEmail  *string
}

func (i *CreateInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Category = strings.TrimSpace(i.Category)
	i.Subcategory = strings.TrimSpace(i.Subcategory)
	if i.ContactEmail != nil {
		e := strings.TrimSpace(*i.ContactEmail)
		if e == "" {
			i.ContactEmail = nil
		} else {
			i.ContactEmail = &e
		}
	}
	if i.Priority == "" {
		i.Priority = domain.PriorityMedium
	}
	if i.DocumentState == "" {
		i.DocumentState = domain.DocumentStateMissing
	}
}

// Validate validates the create input against the given stage scheme.
func (i CreateInput) Validate(scheme domain.StageScheme) error {
	var errs []domain.FieldError

	if i.CustomerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "customer_id", Message: "required"})
	}

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(i.Category) > maxCategoryLength {
		errs = append(errs, domain.FieldError{Field: "category", Message: "too long"})
	}
	if len(i.Subcategory) > maxCategoryLength {
		errs = append(errs, domain.FieldError{Field: "subcategory", Message: "too long"})
	}

	switch {
	case i.Stage != nil && i.State != nil:
		errs = append(errs, domain.FieldError{Field: "stage", Message: "cannot be combined with state"})
	case i.Stage != nil:
		if _, ok := scheme.SeedState(*i.Stage); !ok {
			errs = append(errs, domain.FieldError{Field: "stage", Message: "unknown stage"})
		}
	case i.State != nil:
		if !i.State.IsValid() {
			errs = append(errs, domain.FieldError{Field: "state", Message: "unknown state"})
		}
	}

	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if !i.DocumentState.IsValid() {
		errs = append(errs, domain.FieldError{Field: "document_state", Message: "unknown document state"})
	}

	if i.ContactEmail != nil && !strings.Contains(*i.ContactEmail, "@") {
		errs = append(errs, domain.FieldError{Field: "contact_email", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// initialState resolves the seed state. Validate must have passed.
func (i CreateInput) initialState(scheme domain.StageScheme) domain.CaseState {
	switch {
	case i.State != nil:
		return *i.State
	case i.Stage != nil:
		st, _ := scheme.SeedState(*i.Stage)
		return st
	}
	return domain.CaseStateIntake
}

// TaskInput holds parameters for adding a task.
type TaskInput struct {
	Title   string
	DueDate *time.Time
}

// Validate validates the task input.
func (i TaskInput) Validate() error {
	title := strings.TrimSpace(i.Title)
	switch {
	case title == "":
		return domain.NewValidationError("title", "required")
	case len(title) > maxTaskLength:
		return domain.NewValidationError("title", "too long")
	}
	return nil
}

func validateNote(text string) error {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return domain.NewValidationError("text", "required")
	case len(text) > maxNoteLength:
		return domain.NewValidationError("text", "too long")
	}
	return nil
}

package domain

import "github.com/google/uuid"

// CaseFilter contains filtering/pagination parameters for the case board.
type CaseFilter struct {
	State         *CaseState
	Priority      *Priority
	CustomerID    *uuid.UUID
	AssignedTo    *uuid.UUID
	IncludeClosed bool
	Limit         int
	Offset        int
}

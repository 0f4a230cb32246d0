package domain

// CaseState is the granular workflow position of a case. It is the only
// persisted representation; the stage is always derived from it.
type CaseState string

const (
	CaseStateIntake           CaseState = "INTAKE"
	CaseStateSendProposal     CaseState = "SEND_PROPOSAL"
	CaseStateWaitingProposal  CaseState = "WAITING_RESPONSE_P"
	CaseStateDiscussing       CaseState = "DISCUSSING_Q"
	CaseStateSendContract     CaseState = "SEND_CONTRACT"
	CaseStateWaitingContract  CaseState = "WAITING_RESPONSE_C"
	CaseStateWaitingAuthority CaseState = "WAITING_AUTHORITY"
	CaseStateClosed           CaseState = "CLOSED"
)

// AllCaseStates lists every legal state in workflow order.
var AllCaseStates = []CaseState{
	CaseStateIntake,
	CaseStateSendProposal,
	CaseStateWaitingProposal,
	CaseStateDiscussing,
	CaseStateSendContract,
	CaseStateWaitingContract,
	CaseStateWaitingAuthority,
	CaseStateClosed,
}

func (s CaseState) String() string { return string(s) }

func (s CaseState) IsValid() bool {
	switch s {
	case CaseStateIntake, CaseStateSendProposal, CaseStateWaitingProposal, CaseStateDiscussing,
		CaseStateSendContract, CaseStateWaitingContract, CaseStateWaitingAuthority, CaseStateClosed:
		return true
	}
	return false
}

// IsWaiting reports whether the firm is waiting on someone outside it:
// the customer or the authorities.
func (s CaseState) IsWaiting() bool {
	switch s {
	case CaseStateWaitingProposal, CaseStateWaitingContract, CaseStateWaitingAuthority:
		return true
	}
	return false
}

// Priority ranks how urgently a case needs attention.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// DocumentState tells whether the customer has supplied the required documents.
type DocumentState string

const (
	DocumentStateOK      DocumentState = "ok"
	DocumentStateMissing DocumentState = "missing"
)

func (d DocumentState) String() string { return string(d) }

func (d DocumentState) IsValid() bool {
	return d == DocumentStateOK || d == DocumentStateMissing
}

// StaffRole represents the authorization level of a staff member.
type StaffRole string

const (
	StaffRoleStaff StaffRole = "staff"
	StaffRoleAdmin StaffRole = "admin"
)

func (r StaffRole) String() string { return string(r) }

func (r StaffRole) IsValid() bool {
	return r == StaffRoleStaff || r == StaffRoleAdmin
}

// NotificationSource tells where a customer notification originated.
type NotificationSource string

const (
	NotificationSourceWorkflow NotificationSource = "workflow"
	NotificationSourcePortal   NotificationSource = "portal"
)

func (s NotificationSource) String() string { return string(s) }

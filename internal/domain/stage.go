package domain

import "fmt"

// CaseStage is a coarse grouping of states for display and reporting.
type CaseStage string

// Classic deployment stages.
const (
	StageIntake     CaseStage = "INTAKE"
	StageActionable CaseStage = "ACTIONABLE"
	StageAwaiting   CaseStage = "AWAITING"
	StageClosed     CaseStage = "CLOSED"
)

// Detailed deployment stages.
const (
	StageNew                CaseStage = "NEW"
	StageInProgress         CaseStage = "IN_PROGRESS"
	StageWaitingCustomer    CaseStage = "WAITING_CUSTOMER"
	StageWaitingAuthorities CaseStage = "WAITING_AUTHORITIES"
	StageFinalized          CaseStage = "FINALIZED"
)

func (s CaseStage) String() string { return string(s) }

// StageScheme maps granular states onto one deployment's stage set.
// The state->stage direction is total; the stage->state direction picks one
// canonical representative per stage and is used only to seed new cases.
type StageScheme struct {
	name       string
	stages     []CaseStage
	byState    map[CaseState]CaseStage
	seeds      map[CaseStage]CaseState
	actionable CaseStage
}

// ClassicScheme groups states into INTAKE / ACTIONABLE / AWAITING / CLOSED.
var ClassicScheme = StageScheme{
	name:   "classic",
	stages: []CaseStage{StageIntake, StageActionable, StageAwaiting, StageClosed},
	byState: map[CaseState]CaseStage{
		CaseStateIntake:           StageIntake,
		CaseStateSendProposal:     StageActionable,
		CaseStateWaitingProposal:  StageAwaiting,
		CaseStateDiscussing:       StageActionable,
		CaseStateSendContract:     StageActionable,
		CaseStateWaitingContract:  StageAwaiting,
		CaseStateWaitingAuthority: StageAwaiting,
		CaseStateClosed:           StageClosed,
	},
	seeds: map[CaseStage]CaseState{
		StageIntake:     CaseStateIntake,
		StageActionable: CaseStateSendProposal,
		StageAwaiting:   CaseStateWaitingProposal,
		StageClosed:     CaseStateClosed,
	},
	actionable: StageActionable,
}

// DetailedScheme splits waiting cases by who the firm is waiting on.
var DetailedScheme = StageScheme{
	name: "detailed",
	stages: []CaseStage{
		StageNew, StageInProgress, StageWaitingCustomer, StageWaitingAuthorities, StageFinalized,
	},
	byState: map[CaseState]CaseStage{
		CaseStateIntake:           StageNew,
		CaseStateSendProposal:     StageInProgress,
		CaseStateWaitingProposal:  StageWaitingCustomer,
		CaseStateDiscussing:       StageInProgress,
		CaseStateSendContract:     StageInProgress,
		CaseStateWaitingContract:  StageWaitingCustomer,
		CaseStateWaitingAuthority: StageWaitingAuthorities,
		CaseStateClosed:           StageFinalized,
	},
	seeds: map[CaseStage]CaseState{
		StageNew:                CaseStateIntake,
		StageInProgress:         CaseStateSendProposal,
		StageWaitingCustomer:    CaseStateWaitingProposal,
		StageWaitingAuthorities: CaseStateWaitingAuthority,
		StageFinalized:          CaseStateClosed,
	},
	actionable: StageInProgress,
}

// SchemeByName returns the scheme configured under name.
func SchemeByName(name string) (StageScheme, error) {
	switch name {
	case "", ClassicScheme.name:
		return ClassicScheme, nil
	case DetailedScheme.name:
		return DetailedScheme, nil
	}
	return StageScheme{}, fmt.Errorf("unknown stage scheme %q", name)
}

// Name returns the configuration name of the scheme.
func (s StageScheme) Name() string { return s.name }

// Stages returns the scheme's stages in display order.
func (s StageScheme) Stages() []CaseStage {
	out := make([]CaseStage, len(s.stages))
	copy(out, s.stages)
	return out
}

// Actionable is the stage in which a case is ready for staff work.
func (s StageScheme) Actionable() CaseStage { return s.actionable }

// ToStage maps a state to its stage. Every legal state has a stage; an
// unknown state yields the empty stage.
func (s StageScheme) ToStage(state CaseState) CaseStage {
	return s.byState[state]
}

// SeedState returns the representative state used when a case is created
// from a stage selection. ok is false for stages outside the scheme.
func (s StageScheme) SeedState(stage CaseStage) (state CaseState, ok bool) {
	state, ok = s.seeds[stage]
	return state, ok
}

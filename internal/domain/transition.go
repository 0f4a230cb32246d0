package domain

import (
	"slices"
	"time"
)

// transitions is the fixed legal graph. Every state is a key; terminal
// states map to an empty set. Self-loops are not allowed anywhere.
var transitions = map[CaseState][]CaseState{
	CaseStateIntake:           {CaseStateSendProposal, CaseStateClosed},
	CaseStateSendProposal:     {CaseStateWaitingProposal, CaseStateClosed},
	CaseStateWaitingProposal:  {CaseStateDiscussing, CaseStateSendContract, CaseStateClosed},
	CaseStateDiscussing:       {CaseStateSendProposal, CaseStateSendContract, CaseStateClosed},
	CaseStateSendContract:     {CaseStateWaitingContract, CaseStateClosed},
	CaseStateWaitingContract:  {CaseStateDiscussing, CaseStateWaitingAuthority, CaseStateClosed},
	CaseStateWaitingAuthority: {CaseStateClosed},
	CaseStateClosed:           {},
}

// Successors returns a copy of the legal successor set of s.
// Unknown states have no successors.
func Successors(s CaseState) []CaseState {
	return slices.Clone(transitions[s])
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s CaseState) bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether current -> target is an edge of the legal graph.
func CanTransition(current, target CaseState) bool {
	return slices.Contains(transitions[current], target)
}

// ApplyTransition returns a copy of c moved to target at the given time.
// The input case is never modified; on failure the returned error is a
// *TransitionError carrying both states.
func ApplyTransition(c Case, target CaseState, at time.Time) (Case, error) {
	if !CanTransition(c.State, target) {
		return c, &TransitionError{Current: c.State, Attempted: target}
	}
	next := c
	next.State = target
	next.LastStateChange = at
	next.UpdatedAt = at
	return next, nil
}

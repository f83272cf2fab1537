// Package workflow implements the status lifecycle and reply-thread rules
// shared by every submission variant (crop-issue reports and subsidy
// applications). A variant is described by a Lifecycle (its status graph)
// and a ReplyPolicy (who may write to its thread); the engine itself holds
// no state and takes the caller explicitly on every call.
package workflow

import (
	"fmt"
	"slices"

	"github.com/krishisathi/backend/internal/domain"
)

// Definition describes one variant's closed status set and transition graph.
type Definition[S ~string] struct {
	Name     string
	Statuses []S
	Edges    map[S][]S
	// Terminal lists terminal-leaning statuses: entering one stamps the
	// resolution timestamp, and no transition leaves it.
	Terminal []S
	// ThreadClosed lists statuses in which no new replies are accepted.
	ThreadClosed []S
}

// Lifecycle validates status changes for one submission variant.
type Lifecycle[S ~string] struct {
	name     string
	statuses []S
	edges    map[S][]S
	terminal map[S]bool
	closed   map[S]bool
}

// NewLifecycle builds a Lifecycle from a Definition. It panics if an edge or
// a terminal/thread-closed status is not a member of Statuses.
func NewLifecycle[S ~string](def Definition[S]) *Lifecycle[S] {
	l := &Lifecycle[S]{
		name:     def.Name,
		statuses: slices.Clone(def.Statuses),
		edges:    make(map[S][]S, len(def.Edges)),
		terminal: make(map[S]bool, len(def.Terminal)),
		closed:   make(map[S]bool, len(def.ThreadClosed)),
	}

	for from, tos := range def.Edges {
		l.mustHave(from)
		for _, to := range tos {
			l.mustHave(to)
		}
		l.edges[from] = slices.Clone(tos)
	}
	for _, s := range def.Terminal {
		l.mustHave(s)
		l.terminal[s] = true
	}
	for _, s := range def.ThreadClosed {
		l.mustHave(s)
		l.closed[s] = true
	}
	return l
}

func (l *Lifecycle[S]) mustHave(s S) {
	if !l.Has(s) {
		panic(fmt.Sprintf("workflow: %s: unknown status %q", l.name, s))
	}
}

// Name returns the variant name used in error messages and logs.
func (l *Lifecycle[S]) Name() string { return l.name }

// Has reports whether s belongs to the variant's status set.
func (l *Lifecycle[S]) Has(s S) bool {
	return slices.Contains(l.statuses, s)
}

// isTerminal reports whether s is terminal-leaning.
func (l *Lifecycle[S]) isTerminal(s S) bool { return l.terminal[s] }

// ThreadOpen reports whether replies may be appended while in status s.
func (l *Lifecycle[S]) ThreadOpen(s S) bool { return !l.closed[s] }

// Next returns the statuses reachable from s in one step. Terminal statuses
// never have successors.
func (l *Lifecycle[S]) Next(s S) []S {
	if l.isTerminal(s) {
		return nil
	}
	return slices.Clone(l.edges[s])
}

// Outcome describes the side effects of a permitted transition.
type Outcome struct {
	// StampResolution is true when the submission enters a terminal-leaning
	// status and its resolution timestamp must be set.
	StampResolution bool
}

// Transition validates moving a submission from current to requested on
// behalf of caller. Only admins change status. Nothing is mutated: the
// caller applies the returned Outcome.
func (l *Lifecycle[S]) Transition(current, requested S, caller domain.Caller) (Outcome, error) {
	if !caller.IsAdmin() {
		return Outcome{}, fmt.Errorf("%s status change: %w", l.name, domain.ErrForbidden)
	}
	if !l.Has(requested) {
		return Outcome{}, domain.NewValidationError("status", fmt.Sprintf("unknown %s status %q", l.name, requested))
	}
	if l.terminal[current] {
		return Outcome{}, fmt.Errorf("%s is already %s: %w", l.name, current, domain.ErrInvalidTransition)
	}
	if !slices.Contains(l.edges[current], requested) {
		return Outcome{}, fmt.Errorf("%s %s -> %s: %w", l.name, current, requested, domain.ErrInvalidTransition)
	}
	return Outcome{StampResolution: l.terminal[requested]}, nil
}

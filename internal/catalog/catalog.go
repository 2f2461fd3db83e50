// Package catalog holds the browsing state of one session: the active
// section, the search query and the selected idea, and derives the list of
// visible ideas from them.
//
// A ViewModel is not safe for concurrent use. Callers serialize access, as
// the bubbletea Update loop does.
package catalog

import (
	"iter"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/n0roo/workshop/internal/idea"
)

// State is the mutable part of a session
type State struct {
	ActiveSection Section
	SearchQuery   string

	selected    idea.Idea
	hasSelected bool
}

// Selected returns the selected idea, if any
func (s State) Selected() (idea.Idea, bool) {
	return s.selected, s.hasSelected
}

// ViewModel filters an idea collection by section and search query
type ViewModel struct {
	id    string
	ideas []idea.Idea
	state State
}

// New creates a view model over a copy of ideas, starting in the catalog section
func New(ideas []idea.Idea) *ViewModel {
	vm := &ViewModel{
		id:    uuid.New().String(),
		state: State{ActiveSection: SectionCatalog},
	}
	vm.SetIdeas(ideas)
	return vm
}

// ID returns the session identifier
func (vm *ViewModel) ID() string {
	return vm.id
}

// SetIdeas replaces the idea collection. Section, query and selection are kept.
func (vm *ViewModel) SetIdeas(ideas []idea.Idea) {
	vm.ideas = make([]idea.Idea, len(ideas))
	for i, it := range ideas {
		vm.ideas[i] = it.Clone()
	}
}

// Ideas returns the full collection in source order
func (vm *ViewModel) Ideas() []idea.Idea {
	return slices.Clone(vm.ideas)
}

// Snapshot returns a copy of the current state
func (vm *ViewModel) Snapshot() State {
	return vm.state
}

// ActiveSection returns the active section
func (vm *ViewModel) ActiveSection() Section {
	return vm.state.ActiveSection
}

// SetActiveSection switches the section. Search query and selection persist.
func (vm *ViewModel) SetActiveSection(s Section) {
	vm.state.ActiveSection = s
}

// SearchQuery returns the query exactly as it was set
func (vm *ViewModel) SearchQuery() string {
	return vm.state.SearchQuery
}

// SetSearchQuery stores text verbatim; case folding happens at match time.
func (vm *ViewModel) SetSearchQuery(text string) {
	vm.state.SearchQuery = text
}

// Select sets the selected idea. It need not be visible in the active section.
func (vm *ViewModel) Select(it idea.Idea) {
	vm.state.selected = it
	vm.state.hasSelected = true
}

// ClearSelection closes the detail view
func (vm *ViewModel) ClearSelection() {
	vm.state.selected = idea.Idea{}
	vm.state.hasSelected = false
}

// Selected returns the selected idea, if any
func (vm *ViewModel) Selected() (idea.Idea, bool) {
	return vm.state.Selected()
}

// VisibleIdeas yields the ideas of the active section whose description
// contains the search query, in collection order. The sequence is evaluated
// lazily against the state at iteration time and can be ranged over again.
func (vm *ViewModel) VisibleIdeas() iter.Seq[idea.Idea] {
	return func(yield func(idea.Idea) bool) {
		section := vm.state.ActiveSection
		query := strings.ToLower(vm.state.SearchQuery)
		for _, it := range vm.ideas {
			if !InSection(it, section) || !matchesQuery(it, query) {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

// Visible collects VisibleIdeas into a slice
func (vm *ViewModel) Visible() []idea.Idea {
	return slices.Collect(vm.VisibleIdeas())
}

// InboxCount counts inbox ideas in the whole collection, ignoring section and query
func (vm *ViewModel) InboxCount() int {
	n := 0
	for _, it := range vm.ideas {
		if it.Status == idea.StatusInbox {
			n++
		}
	}
	return n
}

// InSection reports whether an idea belongs to a section. Projects are not
// built from ideas, so nothing is in SectionProjects.
func InSection(it idea.Idea, s Section) bool {
	switch s {
	case SectionInbox:
		return it.Status == idea.StatusInbox
	case SectionCatalog:
		return it.Status == idea.StatusProcessed
	default:
		return false
	}
}

// MatchesQuery reports whether the description contains query, ignoring case.
// Tags are not searched.
func MatchesQuery(it idea.Idea, query string) bool {
	return matchesQuery(it, strings.ToLower(query))
}

func matchesQuery(it idea.Idea, lowered string) bool {
	return strings.Contains(strings.ToLower(it.Description), lowered)
}

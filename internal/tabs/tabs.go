// Package tabs holds the selection state of the deployment guide's tab set.
package tabs

import (
	"errors"
	"fmt"
	"strings"
)

type ID string

const (
	Prerequisites ID = "prerequisites"
	Terraform     ID = "terraform"
	CICD          ID = "cicd"
	Vercel        ID = "vercel"
)

// Default is the tab shown before any selection is made.
const Default = Prerequisites

var ErrUnknownTab = errors.New("unknown tab")

type Tab struct {
	ID    ID
	Label string
}

var all = []Tab{
	{ID: Prerequisites, Label: "Prerequisites"},
	{ID: Terraform, Label: "Terraform Setup"},
	{ID: CICD, Label: "CI/CD Pipeline"},
	{ID: Vercel, Label: "Vercel Integration"},
}

// All returns the tabs in display order.
func All() []Tab {
	out := make([]Tab, len(all))
	copy(out, all)
	return out
}

func Valid(id ID) bool {
	for _, t := range all {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Parse maps a raw query value to a tab ID. Empty and unknown values
// resolve to Default.
func Parse(raw string) ID {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	if Valid(id) {
		return id
	}
	return Default
}

type State struct {
	active ID
}

func New() State {
	return State{active: Default}
}

// Starting returns a state with id active, or the default state if id is
// not a known tab.
func Starting(id ID) State {
	s := New()
	_ = s.Select(id)
	return s
}

func (s State) Active() ID {
	return s.active
}

func (s State) IsActive(id ID) bool {
	return s.active == id
}

// Select makes id the active tab. Selecting the active tab changes nothing.
func (s *State) Select(id ID) error {
	if !Valid(id) {
		return fmt.Errorf("%w: %q", ErrUnknownTab, id)
	}
	s.active = id
	return nil
}

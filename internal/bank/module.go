package bank

import (
	"fmt"
	"slices"
)

// Version identifies the instrument revision. Results persisted under one
// version are final and are never rescored against a later bank.
const Version = "1.0.0"

// ModuleID identifies one of the four assessment modules.
type ModuleID string

const (
	ModuleA ModuleID = "A" // forced-choice interest
	ModuleB ModuleID = "B" // timed-choice strength
	ModuleC ModuleID = "C" // open-ended skill
	ModuleD ModuleID = "D" // friction comfort
)

// ModuleOrder returns the fixed administration order.
func ModuleOrder() []ModuleID {
	return []ModuleID{ModuleA, ModuleB, ModuleC, ModuleD}
}

// NextModule returns the module after id in administration order, or
// ("", false) when id is the last module.
func NextModule(id ModuleID) (ModuleID, bool) {
	order := ModuleOrder()
	for i, m := range order {
		if m == id && i+1 < len(order) {
			return order[i+1], true
		}
	}
	return "", false
}

// Kind is the response format of a module. The set is closed: every Kind
// has exactly one scoring rule.
type Kind string

const (
	KindForcedChoice Kind = "forced-choice"
	KindTimedChoice  Kind = "timed-choice"
	KindOpenEnded    Kind = "open-ended"
	KindFriction     Kind = "friction"
)

// FrictionLevel grades how much resistance an option represents.
type FrictionLevel string

const (
	FrictionLow    FrictionLevel = "low"
	FrictionMedium FrictionLevel = "medium"
	FrictionHigh   FrictionLevel = "high"
)

// Option is a selectable answer on a choice item. The populated fields
// depend on the owning module's Kind: forced-choice options carry a
// Domain tag, timed-choice options add Correct, and friction options
// carry FrictionLevel plus a 0-2 Score.
type Option struct {
	Text          string
	Domain        Domain
	Correct       bool
	FrictionLevel FrictionLevel
	Score         int
}

// Item is a single question or task within a module. Choice items have
// Options; open-ended items (tasks) have a Domain routing tag plus
// MinWords/MaxWords bounds instead.
type Item struct {
	ID       string
	Prompt   string
	Options  []Option
	Domain   Domain
	MinWords int
	MaxWords int
}

// Module is one of the four fixed assessment stages.
type Module struct {
	ID    ModuleID
	Kind  Kind
	Title string
	Items []Item
}

// GetModule returns a module definition by ID.
func GetModule(id ModuleID) (Module, error) {
	for _, m := range modules {
		if m.ID == id {
			return m, nil
		}
	}
	return Module{}, fmt.Errorf("module not found: %q", id)
}

// AllModules returns the four modules in administration order.
func AllModules() []Module {
	return slices.Clone(modules)
}

// Package fixture is a tiny model package exercising scalars, nested
// objects, collections, and enum formatting, used only by plan's own tests.
package fixture

import (
	"time"

	"github.com/google/uuid"

	"github.com/sr9000dev/ddbmapper/ddbitem"
)

// Level is an enum-like int type with a String method and variants
// Low=0, Medium=1, High=2, usable for both "G" and "D" format testing.
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "Low"
	case LevelMedium:
		return "Medium"
	case LevelHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Address is a nested object with no mapper of its own registered in some
// test scenarios (forcing inline expansion) and a registered one in others
// (forcing delegation).
type Address struct {
	Line1 string
	City  string
}

// Order is the root model: scalars, a nested object, a collection, and an
// enum member.
type Order struct {
	ID        string
	CreatedAt time.Time
	Total     float64
	Shipping  Address
	Tags      ddbitem.Set[string]
	Priority  Level
	RefID     uuid.UUID
	Labels    *[]string
}

// BeforeToItem and the rest of the hook quartet exercise §6's optional
// lifecycle hooks; bodies are trivial since render tests only assert the
// call sites are emitted, not any particular hook behavior.
func (o Order) BeforeToItem(item ddbitem.Item) {
	item["hooked"] = nil
}

func (o Order) AfterToItem(item ddbitem.Item) {
	delete(item, "hooked")
}

func (o *Order) BeforeFromItem(item ddbitem.Item) error {
	return nil
}

func (o *Order) AfterFromItem(item ddbitem.Item) error {
	return nil
}

// A and B form a deliberate cycle through pointer indirection (the only way
// Go can express a recursive struct at all), exercising §4.5 rule 1.
type A struct {
	B *B
}

type B struct {
	A *A
}

// Widget has two package-level functions that could each serve as its
// constructor, neither named NewWidget, exercising the fatal "two or more
// constructor-preference markers resolved" path of the Constructor Selector.
type Widget struct {
	Name  string
	Count int
}

func NewWidgetFromName(name string, count int) Widget {
	return Widget{Name: name, Count: count}
}

func NewWidgetLegacy(name string, count int) Widget {
	return Widget{Name: name, Count: count}
}

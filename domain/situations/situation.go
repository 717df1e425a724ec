// Package situations holds the life-situations domain model: curated bundles
// of scripture, prayer and resource content keyed by emotional theme.
package situations

import (
	"fmt"

	"leavn/domain/scripture"
)

// Category classifies the area of life a situation belongs to.
type Category string

const (
	CategoryEmotional  Category = "emotional"
	CategorySpiritual  Category = "spiritual"
	CategoryRelational Category = "relational"
	CategoryPhysical   Category = "physical"
	CategoryFinancial  Category = "financial"
	CategoryCareer     Category = "career"
	CategoryFamily     Category = "family"
)

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryEmotional, CategorySpiritual, CategoryRelational,
		CategoryPhysical, CategoryFinancial, CategoryCareer, CategoryFamily:
		return true
	}
	return false
}

// Prayer is a short prayer text attached to a situation.
type Prayer struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Resource is an external link offered alongside a situation.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// LifeSituation is a read-only content record: a titled theme carrying the
// emotions it addresses, an ordered list of scripture references, and
// optional prayers and resources.
type LifeSituation struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Category    Category              `json:"category"`
	Emotions    []EmotionalState      `json:"emotions"`
	Scriptures  []scripture.Reference `json:"scriptures"`
	Prayers     []Prayer              `json:"prayers,omitempty"`
	Resources   []Resource            `json:"resources,omitempty"`
}

// Validate enforces the structural invariants of a situation record,
// in particular that it carries at least one scripture reference.
func (s LifeSituation) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("situation missing id")
	}
	if s.Title == "" {
		return fmt.Errorf("situation %s missing title", s.ID)
	}
	if !s.Category.Valid() {
		return fmt.Errorf("situation %s has unknown category %q", s.ID, s.Category)
	}
	if len(s.Scriptures) == 0 {
		return fmt.Errorf("situation %s has no scripture references", s.ID)
	}
	for _, ref := range s.Scriptures {
		if err := ref.Validate(); err != nil {
			return fmt.Errorf("situation %s: %w", s.ID, err)
		}
	}
	for _, e := range s.Emotions {
		if !e.Valid() {
			return fmt.Errorf("situation %s has unknown emotion %q", s.ID, e)
		}
	}
	return nil
}

// MatchesEmotion reports whether the situation is tagged with the given state.
func (s LifeSituation) MatchesEmotion(e EmotionalState) bool {
	for _, tagged := range s.Emotions {
		if tagged == e {
			return true
		}
	}
	return false
}

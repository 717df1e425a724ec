// Package scripture defines the value objects for Bible references and text.
package scripture

import (
	"fmt"
	"strings"
)

// Translation identifies a Bible translation by its common abbreviation.
type Translation string

const (
	TranslationWEB Translation = "WEB"
	TranslationKJV Translation = "KJV"
	TranslationASV Translation = "ASV"
)

// Reference points at a verse or a contiguous verse range within a chapter.
// EndVerse is zero for single-verse references.
type Reference struct {
	Book     string `json:"book"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	EndVerse int    `json:"end_verse,omitempty"`
	Preview  string `json:"preview,omitempty"`
}

// NewReference creates a single-verse reference.
func NewReference(book string, chapter, verse int) Reference {
	return Reference{Book: book, Chapter: chapter, Verse: verse}
}

// NewRangeReference creates a reference covering verses start through end.
func NewRangeReference(book string, chapter, start, end int) Reference {
	return Reference{Book: book, Chapter: chapter, Verse: start, EndVerse: end}
}

// WithPreview returns a copy of the reference carrying short preview text.
func (r Reference) WithPreview(preview string) Reference {
	r.Preview = preview
	return r
}

// IsRange reports whether the reference spans more than one verse.
func (r Reference) IsRange() bool {
	return r.EndVerse > r.Verse
}

// Validate checks the structural soundness of the reference.
func (r Reference) Validate() error {
	if strings.TrimSpace(r.Book) == "" {
		return fmt.Errorf("scripture reference missing book")
	}
	if r.Chapter < 1 {
		return fmt.Errorf("scripture reference %s has invalid chapter %d", r.Book, r.Chapter)
	}
	if r.Verse < 1 {
		return fmt.Errorf("scripture reference %s %d has invalid verse %d", r.Book, r.Chapter, r.Verse)
	}
	if r.EndVerse != 0 && r.EndVerse < r.Verse {
		return fmt.Errorf("scripture reference %s %d:%d has end verse before start", r.Book, r.Chapter, r.Verse)
	}
	return nil
}

// String renders the reference in the conventional citation format,
// e.g. "Philippians 4:6-7" or "Psalm 23:1".
func (r Reference) String() string {
	if r.IsRange() {
		return fmt.Sprintf("%s %d:%d-%d", r.Book, r.Chapter, r.Verse, r.EndVerse)
	}
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// Verse is a single verse with its text in some translation.
type Verse struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Number  int    `json:"number"`
	Text    string `json:"text"`
}

// Reference returns the single-verse reference for this verse.
func (v Verse) Reference() Reference {
	return NewReference(v.Book, v.Chapter, v.Number)
}

// Passage is the resolved text for a reference: one or more verses in order.
type Passage struct {
	Ref         Reference   `json:"reference"`
	Translation Translation `json:"translation"`
	Verses      []Verse     `json:"verses"`
}

// Text joins the verse texts of the passage with single spaces.
func (p Passage) Text() string {
	parts := make([]string, 0, len(p.Verses))
	for _, v := range p.Verses {
		parts = append(parts, strings.TrimSpace(v.Text))
	}
	return strings.Join(parts, " ")
}

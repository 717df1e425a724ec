// Package bible provides BibleService implementations: an embedded
// translation for offline use and a remote API client with caching.
package bible

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"leavn/domain/scripture"
	apperrors "leavn/pkg/errors"
)

const defaultSearchLimit = 20

// MemoryService serves an embedded subset of the World English Bible. It
// covers every reference in the shipped situation catalog plus a handful of
// widely-read passages.
type MemoryService struct {
	verses    []scripture.Verse
	byChapter map[string][]scripture.Verse
}

// NewMemoryService creates the embedded-translation service.
func NewMemoryService() *MemoryService {
	verses := embeddedVerses()
	byChapter := make(map[string][]scripture.Verse)
	for _, v := range verses {
		key := chapterKey(v.Book, v.Chapter)
		byChapter[key] = append(byChapter[key], v)
	}
	for _, chapter := range byChapter {
		sort.Slice(chapter, func(i, j int) bool { return chapter[i].Number < chapter[j].Number })
	}
	return &MemoryService{verses: verses, byChapter: byChapter}
}

// Translation identifies the embedded translation.
func (s *MemoryService) Translation() scripture.Translation {
	return scripture.TranslationWEB
}

// GetPassage resolves a reference against the embedded text.
func (s *MemoryService) GetPassage(ctx context.Context, ref scripture.Reference) (scripture.Passage, error) {
	if err := ref.Validate(); err != nil {
		return scripture.Passage{}, apperrors.NewValidationError(err.Error())
	}

	end := ref.EndVerse
	if end == 0 {
		end = ref.Verse
	}

	chapter := s.byChapter[chapterKey(ref.Book, ref.Chapter)]
	verses := make([]scripture.Verse, 0, end-ref.Verse+1)
	for _, v := range chapter {
		if v.Number >= ref.Verse && v.Number <= end {
			verses = append(verses, v)
		}
	}
	if len(verses) == 0 {
		return scripture.Passage{}, apperrors.NewNotFoundError("passage " + ref.String())
	}
	return scripture.Passage{Ref: ref, Translation: s.Translation(), Verses: verses}, nil
}

// GetChapter returns the embedded verses of a chapter in verse order.
func (s *MemoryService) GetChapter(ctx context.Context, book string, chapter int) ([]scripture.Verse, error) {
	verses := s.byChapter[chapterKey(book, chapter)]
	if len(verses) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("chapter %s %d", book, chapter))
	}
	return append([]scripture.Verse(nil), verses...), nil
}

// Search does a case-insensitive substring match over the embedded text.
func (s *MemoryService) Search(ctx context.Context, query string, limit int) ([]scripture.Verse, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, apperrors.NewValidationError("search query must not be empty")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	matches := make([]scripture.Verse, 0, limit)
	for _, v := range s.verses {
		if strings.Contains(strings.ToLower(v.Text), query) {
			matches = append(matches, v)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches, nil
}

func chapterKey(book string, chapter int) string {
	return strings.ToLower(strings.TrimSpace(book)) + "#" + strconv.Itoa(chapter)
}

package lectio

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// KeySeparator joins the components of composite record keys. Reference
// packs and the annotation store use the same key shape, so the separator
// is part of the storage contract.
const KeySeparator = "|"

// Ref identifies a single verse by canonical book name, chapter ordinal,
// and verse ordinal.
type Ref struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

// Key returns the composite record key for the reference, e.g. "John|3|16".
func (r Ref) Key() string {
	return fmt.Sprintf("%s%s%d%s%d", r.Book, KeySeparator, r.Chapter, KeySeparator, r.Verse)
}

// String returns the human-readable form of the reference, e.g. "John 3:16".
func (r Ref) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// Validate returns an error if the reference contains invalid fields.
// Validation errors return EINVALID error code.
func (r Ref) Validate() error {
	if r.Book == "" {
		return Errorf(EINVALID, "Book required.")
	}
	if r.Chapter < 1 {
		return Errorf(EINVALID, "Chapter must be positive.")
	}
	if r.Verse < 1 {
		return Errorf(EINVALID, "Verse must be positive.")
	}
	return nil
}

// ChapterKey returns the composite key for a chapter, e.g. "John|3".
func ChapterKey(book string, chapter int) string {
	return fmt.Sprintf("%s%s%d", book, KeySeparator, chapter)
}

// ParseRef parses a verse reference in either the human-readable form
// ("John 3:16", "1 Corinthians 13:4") or the key form ("John|3|16").
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}, Errorf(EINVALID, "Reference required.")
	}

	var ref Ref
	if strings.Contains(s, KeySeparator) {
		parts := strings.Split(s, KeySeparator)
		if len(parts) != 3 {
			return Ref{}, Errorf(EINVALID, "Invalid reference %q.", s)
		}
		chapter, err := strconv.Atoi(parts[1])
		if err != nil {
			return Ref{}, Errorf(EINVALID, "Invalid chapter in reference %q.", s)
		}
		verse, err := strconv.Atoi(parts[2])
		if err != nil {
			return Ref{}, Errorf(EINVALID, "Invalid verse in reference %q.", s)
		}
		ref = Ref{Book: parts[0], Chapter: chapter, Verse: verse}
	} else {
		i := strings.LastIndexByte(s, ' ')
		if i < 0 {
			return Ref{}, Errorf(EINVALID, "Invalid reference %q.", s)
		}
		chapterPart, versePart, found := strings.Cut(s[i+1:], ":")
		if !found {
			return Ref{}, Errorf(EINVALID, "Invalid reference %q.", s)
		}
		chapter, err := strconv.Atoi(chapterPart)
		if err != nil {
			return Ref{}, Errorf(EINVALID, "Invalid chapter in reference %q.", s)
		}
		verse, err := strconv.Atoi(versePart)
		if err != nil {
			return Ref{}, Errorf(EINVALID, "Invalid verse in reference %q.", s)
		}
		ref = Ref{Book: strings.TrimSpace(s[:i]), Chapter: chapter, Verse: verse}
	}

	if err := ref.Validate(); err != nil {
		return Ref{}, err
	}
	return ref, nil
}

// Verse represents a single verse of a translation.
type Verse struct {
	Translation string `json:"translation"`
	Ref
	Text string `json:"text"`
}

// Validate returns an error if the verse contains invalid fields.
// Validation errors return EINVALID error code.
func (v *Verse) Validate() error {
	if v.Translation == "" {
		return Errorf(EINVALID, "Translation required.")
	}
	if err := v.Ref.Validate(); err != nil {
		return err
	}
	if v.Text == "" {
		return Errorf(EINVALID, "Text required.")
	}
	return nil
}

// VerseService represents a service for managing stored verse text.
type VerseService interface {
	// SaveVerses writes a batch of verses in a single transaction. Existing
	// verses with the same key are overwritten, so re-importing a source is
	// idempotent. Returns EABORTED if the transaction was rolled back; no
	// partial batch is ever visible.
	SaveVerses(ctx context.Context, verses []*Verse) error

	// FindVersesByChapter returns all verses of a chapter ordered by verse
	// ordinal. An unknown chapter returns an empty slice, not an error.
	FindVersesByChapter(ctx context.Context, translation, book string, chapter int) ([]*Verse, error)

	// CountVerses returns the number of stored verses for a translation.
	CountVerses(ctx context.Context, translation string) (int, error)

	// ScanVerses visits every verse of a translation in key order, calling
	// fn for each. Visiting stops early when fn returns false.
	ScanVerses(ctx context.Context, translation string, fn func(*Verse) bool) error

	// Translations returns the distinct translation identifiers with at
	// least one stored verse, sorted alphabetically.
	Translations(ctx context.Context) ([]string, error)

	// DeleteTranslation removes all verses of a translation. Deleting an
	// unknown translation is a no-op.
	DeleteTranslation(ctx context.Context, translation string) error
}

// SearchService represents a service for full-text lookup over stored
// verses.
type SearchService interface {
	// SearchVerses returns verses whose text contains the query,
	// case-insensitively, in key order. A blank query returns an empty
	// slice without touching storage. When limit is not positive a default
	// cap applies.
	SearchVerses(ctx context.Context, translation, query string, limit int) ([]*Verse, error)
}

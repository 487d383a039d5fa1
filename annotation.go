package lectio

import (
	"context"
	"time"
)

// ColorNone marks an annotation with no highlight. Highlight colors are
// free-form strings chosen by the presentation layer; the store treats
// anything other than ColorNone as highlighted.
const ColorNone = "none"

// NoteKind classifies the note attached to an annotation.
type NoteKind string

const (
	NoteKindStudy    NoteKind = "study"
	NoteKindResearch NoteKind = "research"
	NoteKindPersonal NoteKind = "personal"
)

// Valid reports whether the kind is one of the known note kinds.
func (k NoteKind) Valid() bool {
	switch k {
	case NoteKindStudy, NoteKindResearch, NoteKindPersonal:
		return true
	}
	return false
}

// Annotation represents the user state layered onto a single verse. It is
// keyed identically to the verse it decorates; a verse with no annotation
// record simply has none. All user-visible defaults live in NewAnnotation.
type Annotation struct {
	Translation string `json:"translation"`
	Ref
	Color        string    `json:"color"`
	Underline    bool      `json:"underline"`
	Bold         bool      `json:"bold"`
	Bookmarked   bool      `json:"bookmarked"`
	Note         string    `json:"note"`
	NoteKind     NoteKind  `json:"noteKind"`
	NoteFavorite bool      `json:"noteFavorite"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewAnnotation returns an annotation for the given verse with every field
// at its default. The first patch against an unannotated verse is applied
// on top of exactly this value.
func NewAnnotation(translation string, ref Ref) *Annotation {
	return &Annotation{
		Translation: translation,
		Ref:         ref,
		Color:       ColorNone,
		NoteKind:    NoteKindStudy,
	}
}

// Key returns the composite record key of the annotated verse.
func (a *Annotation) Key() string {
	return a.Ref.Key()
}

// Validate returns an error if the annotation contains invalid fields.
// Validation errors return EINVALID error code.
func (a *Annotation) Validate() error {
	if a.Translation == "" {
		return Errorf(EINVALID, "Translation required.")
	}
	if err := a.Ref.Validate(); err != nil {
		return err
	}
	if a.Color == "" {
		return Errorf(EINVALID, "Color required.")
	}
	if !a.NoteKind.Valid() {
		return Errorf(EINVALID, "Invalid note kind %q.", a.NoteKind)
	}
	return nil
}

// AnnotationPatch carries a partial update of an annotation. Nil fields are
// left untouched by Apply, so a patch that only sets a color cannot erase a
// note written earlier, and vice versa.
type AnnotationPatch struct {
	Color        *string   `json:"color"`
	Underline    *bool     `json:"underline"`
	Bold         *bool     `json:"bold"`
	Bookmarked   *bool     `json:"bookmarked"`
	Note         *string   `json:"note"`
	NoteKind     *NoteKind `json:"noteKind"`
	NoteFavorite *bool     `json:"noteFavorite"`
}

// Zero reports whether the patch sets no fields at all.
func (p AnnotationPatch) Zero() bool {
	return p.Color == nil && p.Underline == nil && p.Bold == nil &&
		p.Bookmarked == nil && p.Note == nil && p.NoteKind == nil &&
		p.NoteFavorite == nil
}

// Apply merges the patch into the annotation. The UpdatedAt stamp is the
// store's responsibility, not the patch's.
func (p AnnotationPatch) Apply(a *Annotation) {
	if p.Color != nil {
		a.Color = *p.Color
	}
	if p.Underline != nil {
		a.Underline = *p.Underline
	}
	if p.Bold != nil {
		a.Bold = *p.Bold
	}
	if p.Bookmarked != nil {
		a.Bookmarked = *p.Bookmarked
	}
	if p.Note != nil {
		a.Note = *p.Note
	}
	if p.NoteKind != nil {
		a.NoteKind = *p.NoteKind
	}
	if p.NoteFavorite != nil {
		a.NoteFavorite = *p.NoteFavorite
	}
}

// AnnotationFilter represents a filter used by FindAnnotations. The
// Translation field is required; the boolean fields are additive
// restrictions and the zero value of each means "don't filter".
type AnnotationFilter struct {
	Translation string

	// HasNote restricts to annotations with a non-empty note.
	HasNote bool

	// NoteKind restricts to notes of one kind.
	NoteKind *NoteKind

	// Favorite restricts to annotations whose note is marked favorite.
	Favorite bool

	// Bookmarked restricts to verse-level bookmarks.
	Bookmarked bool

	// Colored restricts to annotations with a highlight color.
	Colored bool

	// Limit caps the number of returned annotations. Zero means no cap.
	Limit int
}

// AnnotationService represents a service for managing verse annotations.
type AnnotationService interface {
	// UpsertAnnotation applies a patch to the annotation for a verse,
	// synthesizing the default annotation first if none is stored. The
	// read-merge-write runs in a single transaction and stamps UpdatedAt.
	// Returns the merged annotation.
	UpsertAnnotation(ctx context.Context, translation string, ref Ref, patch AnnotationPatch) (*Annotation, error)

	// FindAnnotationByRef returns the annotation for a verse. Returns
	// ENOTFOUND if no annotation is stored for the key.
	FindAnnotationByRef(ctx context.Context, translation string, ref Ref) (*Annotation, error)

	// FindAnnotationsByChapter returns all annotations of a chapter keyed
	// by Ref.Key(). An unannotated chapter returns an empty map.
	FindAnnotationsByChapter(ctx context.Context, translation, book string, chapter int) (map[string]*Annotation, error)

	// FindAnnotations returns annotations matching the filter, most
	// recently updated first.
	FindAnnotations(ctx context.Context, filter AnnotationFilter) ([]*Annotation, error)

	// AnnotatedChapterKeys returns the distinct translation-qualified
	// chapter keys ("translation|book|chapter") that carry at least one
	// annotation.
	AnnotatedChapterKeys(ctx context.Context) ([]string, error)

	// DeleteAnnotation removes the annotation for a verse. Deleting an
	// absent annotation is a no-op, not an error.
	DeleteAnnotation(ctx context.Context, translation string, ref Ref) error
}

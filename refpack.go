package lectio

import "context"

// Commentary is the study commentary attached to a single verse in a
// reference pack.
type Commentary struct {
	Summary   string   `json:"summary,omitempty"`
	Points    []string `json:"points,omitempty"`
	Questions []string `json:"questions,omitempty"`
}

// CrossRef points from one verse to a related verse in a reference pack.
type CrossRef struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Note    string `json:"note,omitempty"`
}

// Ref returns the verse reference the cross-reference points at.
func (c CrossRef) Ref() Ref {
	return Ref{Book: c.Book, Chapter: c.Chapter, Verse: c.Verse}
}

// PackLoader represents a service that loads the bundled reference packs.
// Packs are read-only study material keyed by Ref.Key() strings; each Load
// call reads an entire pack, so callers are expected to memoize.
type PackLoader interface {
	// LoadTopics returns topic tags per verse key.
	LoadTopics(ctx context.Context) (map[string][]string, error)

	// LoadCommentary returns commentary per verse key.
	LoadCommentary(ctx context.Context) (map[string]Commentary, error)

	// LoadCrossRefs returns cross-references per verse key.
	LoadCrossRefs(ctx context.Context) (map[string][]CrossRef, error)
}

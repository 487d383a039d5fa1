// Package refpack loads the bundled reference packs: topic tags,
// commentary, and cross-references keyed by verse reference.
package refpack

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/awalczyk/lectio"
)

// Pack file names expected at the root of the loader's filesystem.
const (
	topicsFile     = "topics.json"
	commentaryFile = "commentary.json"
	crossRefsFile  = "crossrefs.json"
)

var _ lectio.PackLoader = (*Loader)(nil)

// Loader reads reference packs from a filesystem, typically an embedded or
// on-disk pack directory. Every Load call reads and parses the whole file;
// the reading layer memoizes.
type Loader struct {
	FS fs.FS
}

// NewLoader returns a Loader reading packs from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

// LoadTopics returns topic tags per verse key.
func (l *Loader) LoadTopics(ctx context.Context) (map[string][]string, error) {
	var topics map[string][]string
	if err := l.load(topicsFile, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// LoadCommentary returns commentary per verse key.
func (l *Loader) LoadCommentary(ctx context.Context) (map[string]lectio.Commentary, error) {
	var commentary map[string]lectio.Commentary
	if err := l.load(commentaryFile, &commentary); err != nil {
		return nil, err
	}
	return commentary, nil
}

// LoadCrossRefs returns cross-references per verse key.
func (l *Loader) LoadCrossRefs(ctx context.Context) (map[string][]lectio.CrossRef, error) {
	var crossRefs map[string][]lectio.CrossRef
	if err := l.load(crossRefsFile, &crossRefs); err != nil {
		return nil, err
	}
	return crossRefs, nil
}

// load reads and unmarshals one pack file. A missing file is an error,
// since packs ship with the application.
func (l *Loader) load(name string, v any) error {
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return fmt.Errorf("failed to read reference pack %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return lectio.Errorf(lectio.EMALFORMED, "reference pack %s is not valid JSON: %v", name, err)
	}
	return nil
}

// Package fs writes study annotations to disk as markdown.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/awalczyk/lectio"
)

// BookPath returns the relative export path for one book of a translation.
// Example: ("kjv", "John") → kjv/43-john.md
func BookPath(translation, book string) (string, error) {
	ordinal, ok := lectio.BookOrdinal(book)
	if !ok {
		return "", lectio.Errorf(lectio.EINVALID, "Unknown book %q.", book)
	}
	slug := strings.ReplaceAll(strings.ToLower(book), " ", "-")
	return filepath.Join(translation, fmt.Sprintf("%02d-%s.md", ordinal, slug)), nil
}

// FormatBook formats one book's annotations as markdown with YAML
// frontmatter. Annotations are rendered in the order given.
func FormatBook(translation, book string, exported time.Time, annotations []*lectio.Annotation) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("translation: ")
	b.WriteString(translation)
	b.WriteString("\nbook: ")
	b.WriteString(book)
	b.WriteString("\nexported: ")
	b.WriteString(exported.Format("2006-01-02"))
	b.WriteString("\n---\n")

	for _, a := range annotations {
		b.WriteString("\n## ")
		b.WriteString(a.Ref.String())
		b.WriteString("\n")
		if a.Note != "" {
			b.WriteString("\n")
			b.WriteString(a.Note)
			b.WriteString("\n")
		}
		if marks := annotationMarks(a); len(marks) > 0 {
			b.WriteString("\n")
			for _, mark := range marks {
				b.WriteString(mark)
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// annotationMarks lists the non-default annotation fields as "key: value"
// lines. A plain study note renders no marks at all.
func annotationMarks(a *lectio.Annotation) []string {
	var marks []string
	if a.Color != "" && a.Color != lectio.ColorNone {
		marks = append(marks, "highlight: "+a.Color)
	}
	if a.Underline {
		marks = append(marks, "underline: yes")
	}
	if a.Bold {
		marks = append(marks, "bold: yes")
	}
	if a.NoteKind != lectio.NoteKindStudy {
		marks = append(marks, "kind: "+string(a.NoteKind))
	}
	if a.NoteFavorite {
		marks = append(marks, "favorite: yes")
	}
	if a.Bookmarked {
		marks = append(marks, "bookmarked: yes")
	}
	return marks
}

// Exporter writes the annotations of a translation as one markdown file
// per book. Files are written to <baseDir>/<translation>.tmp and the
// directory is swapped into place once every book has been written, so a
// failed export never leaves a half-written tree behind.
type Exporter struct {
	baseDir string
}

// NewExporter creates an exporter rooted at baseDir.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

func (e *Exporter) tempDir(translation string) string {
	return filepath.Join(e.baseDir, translation+".tmp")
}

func (e *Exporter) finalDir(translation string) string {
	return filepath.Join(e.baseDir, translation)
}

// Export writes the annotations grouped by book in canon order and
// returns the relative paths of the written files. An empty annotation
// list writes nothing and leaves any previous export untouched.
func (e *Exporter) Export(ctx context.Context, translation string, annotations []*lectio.Annotation) ([]string, error) {
	if translation == "" {
		return nil, lectio.Errorf(lectio.EINVALID, "Translation required.")
	}
	if len(annotations) == 0 {
		return nil, nil
	}

	byBook := make(map[string][]*lectio.Annotation)
	for _, a := range annotations {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if _, ok := lectio.BookOrdinal(a.Book); !ok {
			return nil, lectio.Errorf(lectio.EINVALID, "Unknown book %q.", a.Book)
		}
		byBook[a.Book] = append(byBook[a.Book], a)
	}

	tmp := e.tempDir(translation)
	defer os.RemoveAll(tmp)
	if err := os.MkdirAll(tmp, 0755); err != nil {
		return nil, err
	}

	exported := time.Now().UTC()
	var written []string
	for _, book := range lectio.Books() {
		anns, ok := byBook[book]
		if !ok {
			continue
		}
		sort.Slice(anns, func(i, j int) bool {
			if anns[i].Chapter != anns[j].Chapter {
				return anns[i].Chapter < anns[j].Chapter
			}
			return anns[i].Verse < anns[j].Verse
		})

		relPath, err := BookPath(translation, book)
		if err != nil {
			return nil, err
		}
		name := filepath.Base(relPath)
		content := FormatBook(translation, book, exported, anns)
		if err := os.WriteFile(filepath.Join(tmp, name), []byte(content), 0644); err != nil {
			return nil, err
		}
		written = append(written, relPath)
	}

	// Atomically replace any previous export of this translation.
	if err := os.RemoveAll(e.finalDir(translation)); err != nil {
		return nil, err
	}
	if err := os.Rename(tmp, e.finalDir(translation)); err != nil {
		return nil, err
	}
	return written, nil
}

// Package biblexml parses translation source documents: XML with a
// book/chapter/verse element hierarchy where each level carries a numeric
// "number" attribute and verse elements carry the text payload.
package biblexml

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/awalczyk/lectio"
	"github.com/beevik/etree"
)

// Result holds the outcome of decoding one source document.
type Result struct {
	// Verses are the decoded verses in document order.
	Verses []*lectio.Verse

	// BookCount is the number of distinct books that produced at least
	// one verse.
	BookCount int

	// SkippedBooks counts book elements whose ordinal fell outside the
	// 66-book canon.
	SkippedBooks int

	// SkippedChapters counts chapter elements without a usable ordinal.
	SkippedChapters int

	// SkippedVerses counts verse elements dropped for a missing ordinal
	// or empty normalized text.
	SkippedVerses int
}

// Parser decodes translation source documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes src into verses stamped with the given translation.
// A document that is not well-formed XML returns EMALFORMED; a well-formed
// document that yields no verses returns an empty Result, leaving the
// empty-source decision to the caller.
//
// The walk visits direct children only: book elements under the root,
// chapter elements under a book, verse elements under a chapter. Elements
// at unexpected depths are invisible.
func (p *Parser) Parse(translation, src string) (*Result, error) {
	if translation == "" {
		return nil, lectio.Errorf(lectio.EINVALID, "Translation required.")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(src); err != nil {
		return nil, lectio.Errorf(lectio.EMALFORMED, "source is not well-formed XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, lectio.Errorf(lectio.EMALFORMED, "source has no root element")
	}

	result := &Result{}
	books := make(map[string]bool)

	for _, bookEl := range root.SelectElements("book") {
		name, ok := lectio.BookName(numberAttr(bookEl))
		if !ok {
			result.SkippedBooks++
			continue
		}

		for _, chapterEl := range bookEl.SelectElements("chapter") {
			chapter := numberAttr(chapterEl)
			if chapter < 1 {
				result.SkippedChapters++
				continue
			}

			for _, verseEl := range chapterEl.SelectElements("verse") {
				verse := numberAttr(verseEl)
				if verse < 1 {
					result.SkippedVerses++
					continue
				}

				text := normalizeText(textContent(verseEl))
				if text == "" {
					result.SkippedVerses++
					continue
				}

				result.Verses = append(result.Verses, &lectio.Verse{
					Translation: translation,
					Ref:         lectio.Ref{Book: name, Chapter: chapter, Verse: verse},
					Text:        text,
				})
				books[name] = true
			}
		}
	}

	result.BookCount = len(books)
	return result, nil
}

// numberAttr reads an element's numeric "number" attribute. Missing or
// non-numeric attributes return 0, which no valid ordinal uses.
func numberAttr(el *etree.Element) int {
	n, err := strconv.Atoi(strings.TrimSpace(el.SelectAttrValue("number", "")))
	if err != nil {
		return 0
	}
	return n
}

// textContent concatenates all character data beneath an element,
// including text nested inside inline markup.
func textContent(el *etree.Element) string {
	var b strings.Builder
	collectText(el, &b)
	return b.String()
}

func collectText(el *etree.Element, b *strings.Builder) {
	for _, child := range el.Child {
		switch c := child.(type) {
		case *etree.CharData:
			b.WriteString(c.Data)
		case *etree.Element:
			collectText(c, b)
		}
	}
}

// normalizeText collapses every run of Unicode whitespace, non-breaking
// spaces included, to a single ASCII space and trims both ends.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}

	return b.String()
}

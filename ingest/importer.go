// Package ingest provides translation import orchestration.
// It coordinates source parsing, bulk storage, progress reporting, and
// import session bookkeeping.
package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/awalczyk/lectio"
	"github.com/awalczyk/lectio/biblexml"
	"github.com/cespare/xxhash/v2"
)

// progressInterval is the number of accumulated verses between progress
// callbacks during an import.
const progressInterval = 250

// ProgressFunc is a callback for reporting import progress. It receives
// the running count of accumulated verses.
type ProgressFunc func(verses int)

// Result holds the outcome of an import operation.
type Result struct {
	Translation string
	VerseCount  int
	BookCount   int
	SourceHash  string
	Skipped     bool
	Duration    time.Duration
}

// Importer orchestrates translation imports.
type Importer struct {
	Verses   lectio.VerseService
	Sessions lectio.SessionService
	Settings lectio.SettingService
	Logger   *slog.Logger
}

// ImportTranslation reads the entire source document, parses it, and
// writes every verse in a single transaction: either the whole document
// lands or none of it does, and re-importing the same document is
// idempotent. origin names where the source came from (file path or URL)
// and is recorded in the session. The progress callback, if provided,
// fires on every progressInterval-th accumulated verse and once more with
// the final count after the write lands.
func (im *Importer) ImportTranslation(ctx context.Context, translation, origin string, source io.Reader, progress ProgressFunc) (*Result, error) {
	started := time.Now().UTC()

	data, err := io.ReadAll(source)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	src := string(data)

	parsed, err := biblexml.NewParser().Parse(translation, src)
	if err != nil {
		return nil, err
	}
	if len(parsed.Verses) == 0 {
		return nil, lectio.Errorf(lectio.EEMPTY, "source for %q produced no verses", translation)
	}

	if skipped := parsed.SkippedBooks + parsed.SkippedChapters + parsed.SkippedVerses; skipped > 0 {
		im.logger().Warn("import skipped unusable source entries",
			"translation", translation,
			"books", parsed.SkippedBooks,
			"chapters", parsed.SkippedChapters,
			"verses", parsed.SkippedVerses,
		)
	}

	if progress != nil {
		for i := range parsed.Verses {
			if (i+1)%progressInterval == 0 {
				progress(i + 1)
			}
		}
	}

	if err := im.Verses.SaveVerses(ctx, parsed.Verses); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(len(parsed.Verses))
	}

	result := &Result{
		Translation: translation,
		VerseCount:  len(parsed.Verses),
		BookCount:   parsed.BookCount,
		SourceHash:  sourceHash(src),
		Duration:    time.Since(started),
	}

	im.record(ctx, origin, started, result)

	im.logger().Info("import finished",
		"translation", translation,
		"verses", result.VerseCount,
		"books", result.BookCount,
		"duration", result.Duration,
	)

	return result, nil
}

// ImportTranslationIfEmpty imports only when the translation has no stored
// verses. Any stored verse at all counts as imported, even if a prior
// import was cut short, so a skipped result does not prove the store
// matches the source.
func (im *Importer) ImportTranslationIfEmpty(ctx context.Context, translation, origin string, source io.Reader, progress ProgressFunc) (*Result, error) {
	count, err := im.Verses.CountVerses(ctx, translation)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		im.logger().Info("translation already imported",
			"translation", translation,
			"verses", count,
		)
		return &Result{Translation: translation, VerseCount: count, Skipped: true}, nil
	}

	return im.ImportTranslation(ctx, translation, origin, source, progress)
}

// record persists the session and mirrors the source hash into settings.
// Bookkeeping failures are logged, not surfaced: the verses are already
// durable at this point and that is the result that matters.
func (im *Importer) record(ctx context.Context, origin string, started time.Time, result *Result) {
	if im.Sessions != nil {
		session := &lectio.ImportSession{
			Translation: result.Translation,
			Source:      origin,
			VerseCount:  result.VerseCount,
			BookCount:   result.BookCount,
			SourceHash:  result.SourceHash,
			StartedAt:   started,
			FinishedAt:  time.Now().UTC(),
		}
		if err := im.Sessions.CreateImportSession(ctx, session); err != nil {
			im.logger().Warn("failed to record import session",
				"translation", result.Translation,
				"error", err,
			)
		}
	}

	if im.Settings != nil {
		key := "import." + result.Translation + ".hash"
		if err := im.Settings.SetSetting(ctx, key, result.SourceHash); err != nil {
			im.logger().Warn("failed to record source hash",
				"translation", result.Translation,
				"error", err,
			)
		}
	}
}

func (im *Importer) logger() *slog.Logger {
	if im.Logger != nil {
		return im.Logger
	}
	return slog.Default()
}

// sourceHash computes a hash of the raw source text using xxhash.
func sourceHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/awalczyk/lectio"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	var source io.Reader
	if isRemoteSource(c.Source) {
		body, err := deps.Fetcher.Fetch(deps.Ctx, c.Source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
			return err
		}
		source = strings.NewReader(body)
	} else {
		f, err := os.Open(c.Source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot open source %s: %v\n", c.Source, err)
			return err
		}
		defer f.Close()
		source = f
	}

	progress := func(verses int) {
		fmt.Fprintf(deps.Stdout, "\r  %d verses", verses)
	}

	importFn := deps.Importer.ImportTranslationIfEmpty
	if c.Force {
		importFn = deps.Importer.ImportTranslation
	}

	result, err := importFn(deps.Ctx, c.Translation, c.Source, source, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	if result.Skipped {
		fmt.Fprintf(deps.Stdout, "Translation %q already has %d verses. Use --force to re-import.\n",
			c.Translation, result.VerseCount)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "\rImported %s: %d verses across %d books in %s\n",
		c.Translation, result.VerseCount, result.BookCount, result.Duration.Round(time.Millisecond))
	return nil
}

func isRemoteSource(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

package main

import (
	"fmt"

	"github.com/awalczyk/lectio"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	translations, err := deps.Verses.Translations(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	if len(translations) == 0 {
		fmt.Fprintln(deps.Stdout, "No translations imported. Use 'lectio import' to add one.")
		return nil
	}

	for _, translation := range translations {
		count, err := deps.Verses.CountVerses(deps.Ctx, translation)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s: %d verses\n", translation, count)

		sessions, err := deps.Sessions.FindImportSessions(deps.Ctx, translation)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
			return err
		}
		if len(sessions) > 0 {
			s := sessions[0]
			fmt.Fprintf(deps.Stdout, "  last import %s from %s (%d verses, %d books)\n",
				s.FinishedAt.Format("2006-01-02 15:04"), s.Source, s.VerseCount, s.BookCount)
		}
	}
	return nil
}

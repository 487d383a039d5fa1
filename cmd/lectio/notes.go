package main

import (
	"fmt"

	"github.com/awalczyk/lectio"
	"github.com/awalczyk/lectio/reader"
)

// Run executes the notes command.
func (c *NotesCmd) Run(deps *Dependencies) error {
	filter := reader.NotesFilter{
		FavoritesOnly: c.Favorites,
		All:           c.All,
	}
	if c.Kind != "" {
		kind := lectio.NoteKind(c.Kind)
		if !kind.Valid() {
			err := lectio.Errorf(lectio.EINVALID, "Invalid note kind %q.", c.Kind)
			fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
			return err
		}
		filter.Kind = &kind
	}

	notes, err := deps.Provider.Notes(deps.Ctx, c.Translation, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	if len(notes) == 0 {
		fmt.Fprintf(deps.Stdout, "No notes for %q.\n", c.Translation)
		return nil
	}
	for _, a := range notes {
		fmt.Fprintln(deps.Stdout, formatAnnotation(a))
	}
	return nil
}

// Run executes the highlights command.
func (c *HighlightsCmd) Run(deps *Dependencies) error {
	highlights, err := deps.Provider.Highlights(deps.Ctx, c.Translation)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	if len(highlights) == 0 {
		fmt.Fprintf(deps.Stdout, "No highlights for %q.\n", c.Translation)
		return nil
	}
	for _, a := range highlights {
		fmt.Fprintln(deps.Stdout, formatAnnotation(a))
	}
	return nil
}

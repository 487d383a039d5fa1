package main

import (
	"fmt"

	"github.com/awalczyk/lectio"
)

// Run executes the bookmark command.
func (c *BookmarkCmd) Run(deps *Dependencies) error {
	added, err := deps.Provider.ToggleChapterBookmark(deps.Ctx, c.Translation, c.Book, c.Chapter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	if added {
		fmt.Fprintf(deps.Stdout, "Bookmarked %s %d (%s).\n", c.Book, c.Chapter, c.Translation)
	} else {
		fmt.Fprintf(deps.Stdout, "Removed bookmark on %s %d (%s).\n", c.Book, c.Chapter, c.Translation)
	}
	return nil
}

// Run executes the bookmarks command.
func (c *BookmarksCmd) Run(deps *Dependencies) error {
	if c.Verses {
		annotations, err := deps.Provider.VerseBookmarks(deps.Ctx, c.Translation)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
			return err
		}
		if len(annotations) == 0 {
			fmt.Fprintf(deps.Stdout, "No verse bookmarks for %q.\n", c.Translation)
			return nil
		}
		for _, a := range annotations {
			fmt.Fprintln(deps.Stdout, formatAnnotation(a))
		}
		return nil
	}

	bookmarks, err := deps.Provider.ChapterBookmarks(deps.Ctx, c.Translation)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}
	if len(bookmarks) == 0 {
		fmt.Fprintf(deps.Stdout, "No bookmarks for %q.\n", c.Translation)
		return nil
	}
	for _, b := range bookmarks {
		fmt.Fprintf(deps.Stdout, "%s %d  saved %s\n", b.Book, b.Chapter, b.SavedAt.Format("2006-01-02"))
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/awalczyk/lectio"
)

// Run executes the chapter command.
func (c *ChapterCmd) Run(deps *Dependencies) error {
	chapter, err := deps.Provider.Chapter(deps.Ctx, c.Translation, c.Book, c.Chapter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	if len(chapter.Verses) == 0 {
		fmt.Fprintf(deps.Stdout, "No verses for %s %d in %q.\n", c.Book, c.Chapter, c.Translation)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s %d (%s)\n\n", chapter.Book, chapter.Chapter, chapter.Translation)
	for _, v := range chapter.Verses {
		marker := " "
		if v.Annotation != nil {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%3d%s %s\n", v.Verse.Verse, marker, v.Text)
		if v.Annotation != nil {
			if detail := annotationDetail(v.Annotation); detail != "" {
				fmt.Fprintf(deps.Stdout, "     %s\n", detail)
			}
		}
	}
	return nil
}

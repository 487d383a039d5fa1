package main

import (
	"fmt"
	"strings"

	"github.com/awalczyk/lectio"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	hits, err := deps.Search.SearchVerses(deps.Ctx, c.Translation, query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	if len(hits) == 0 {
		fmt.Fprintf(deps.Stdout, "No matches for %q in %q.\n", query, c.Translation)
		return nil
	}

	for _, v := range hits {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", v.Ref.String(), v.Text)
	}

	word := "matches"
	if len(hits) == 1 {
		word = "match"
	}
	fmt.Fprintf(deps.Stdout, "\n%d %s\n", len(hits), word)
	return nil
}

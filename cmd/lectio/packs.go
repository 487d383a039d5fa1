package main

import (
	"fmt"
	"strings"

	"github.com/awalczyk/lectio"
)

// Run executes the topics command.
func (c *TopicsCmd) Run(deps *Dependencies) error {
	ref, err := lectio.ParseRef(c.Ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	topics, err := deps.Provider.Topics(deps.Ctx, ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	if len(topics) == 0 {
		fmt.Fprintf(deps.Stdout, "No topics for %s.\n", ref)
		return nil
	}
	fmt.Fprintln(deps.Stdout, strings.Join(topics, ", "))
	return nil
}

// Run executes the commentary command.
func (c *CommentaryCmd) Run(deps *Dependencies) error {
	ref, err := lectio.ParseRef(c.Ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	entry, err := deps.Provider.Commentary(deps.Ctx, ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	if entry == nil {
		fmt.Fprintf(deps.Stdout, "No commentary for %s.\n", ref)
		return nil
	}
	if entry.Summary != "" {
		fmt.Fprintln(deps.Stdout, entry.Summary)
	}
	for _, point := range entry.Points {
		fmt.Fprintf(deps.Stdout, "- %s\n", point)
	}
	if len(entry.Questions) > 0 {
		fmt.Fprintln(deps.Stdout, "Questions:")
		for _, q := range entry.Questions {
			fmt.Fprintf(deps.Stdout, "- %s\n", q)
		}
	}
	return nil
}

// Run executes the crossrefs command.
func (c *CrossRefsCmd) Run(deps *Dependencies) error {
	ref, err := lectio.ParseRef(c.Ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	refs, err := deps.Provider.CrossRefs(deps.Ctx, ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	if len(refs) == 0 {
		fmt.Fprintf(deps.Stdout, "No cross-references for %s.\n", ref)
		return nil
	}
	for _, cr := range refs {
		if cr.Note != "" {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", cr.Ref(), cr.Note)
		} else {
			fmt.Fprintln(deps.Stdout, cr.Ref())
		}
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/awalczyk/lectio"
)

// Run executes the annotate command.
func (c *AnnotateCmd) Run(deps *Dependencies) error {
	ref, err := lectio.ParseRef(c.Ref)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	patch := lectio.AnnotationPatch{
		Color:        c.Color,
		Underline:    c.Underline,
		Bold:         c.Bold,
		Bookmarked:   c.Bookmark,
		Note:         c.Note,
		NoteFavorite: c.Favorite,
	}
	if c.Kind != nil {
		kind := lectio.NoteKind(*c.Kind)
		if !kind.Valid() {
			err := lectio.Errorf(lectio.EINVALID, "Invalid note kind %q.", *c.Kind)
			fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
			return err
		}
		patch.NoteKind = &kind
	}

	if c.Clear {
		if !patch.Zero() {
			err := lectio.Errorf(lectio.EINVALID, "--clear cannot be combined with other changes.")
			fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
			return err
		}
		if err := deps.Provider.ClearAnnotation(deps.Ctx, c.Translation, ref); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Cleared annotation on %s.\n", ref)
		return nil
	}

	// No changes requested: show the stored annotation.
	if patch.Zero() {
		a, err := deps.Annotations.FindAnnotationByRef(deps.Ctx, c.Translation, ref)
		if lectio.ErrorCode(err) == lectio.ENOTFOUND {
			fmt.Fprintf(deps.Stdout, "No annotation on %s.\n", ref)
			return nil
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, formatAnnotation(a))
		return nil
	}

	a, err := deps.Provider.Annotate(deps.Ctx, c.Translation, ref, patch)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, formatAnnotation(a))
	return nil
}

// annotationDetail renders the user state of an annotation without its
// reference, e.g. "[amber] (research, favorite) the note".
func annotationDetail(a *lectio.Annotation) string {
	var parts []string
	if a.Color != "" && a.Color != lectio.ColorNone {
		parts = append(parts, "["+a.Color+"]")
	}
	if a.Underline {
		parts = append(parts, "underline")
	}
	if a.Bold {
		parts = append(parts, "bold")
	}
	if a.Bookmarked {
		parts = append(parts, "bookmarked")
	}
	if a.Note != "" {
		kind := "(" + string(a.NoteKind)
		if a.NoteFavorite {
			kind += ", favorite"
		}
		parts = append(parts, kind+") "+a.Note)
	}
	return strings.Join(parts, " ")
}

// formatAnnotation renders one annotation as a single listing line.
func formatAnnotation(a *lectio.Annotation) string {
	detail := annotationDetail(a)
	if detail == "" {
		return a.Ref.String()
	}
	return a.Ref.String() + "  " + detail
}

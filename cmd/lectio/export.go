package main

import (
	"fmt"

	"github.com/awalczyk/lectio"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	annotations, err := deps.Annotations.FindAnnotations(deps.Ctx, lectio.AnnotationFilter{Translation: c.Translation})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	if len(annotations) == 0 {
		fmt.Fprintf(deps.Stdout, "No annotations to export for %q.\n", c.Translation)
		return nil
	}

	paths, err := deps.Exporter.Export(deps.Ctx, c.Translation, annotations)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d annotations to %d files:\n", len(annotations), len(paths))
	for _, p := range paths {
		fmt.Fprintf(deps.Stdout, "  %s\n", p)
	}
	return nil
}

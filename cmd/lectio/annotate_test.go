package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/awalczyk/lectio"
	main "github.com/awalczyk/lectio/cmd/lectio"
	"github.com/awalczyk/lectio/mock"
	"github.com/awalczyk/lectio/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("applies the requested changes", func(t *testing.T) {
		t.Parallel()

		var gotRef lectio.Ref
		var gotPatch lectio.AnnotationPatch
		annotations := &mock.AnnotationService{
			UpsertAnnotationFn: func(_ context.Context, translation string, ref lectio.Ref, patch lectio.AnnotationPatch) (*lectio.Annotation, error) {
				gotRef = ref
				gotPatch = patch
				a := lectio.NewAnnotation(translation, ref)
				patch.Apply(a)
				return a, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Provider:    &reader.Provider{Annotations: annotations},
			Annotations: annotations,
		}

		color := "amber"
		note := "the heart of the gospel"
		favorite := true
		cmd := &main.AnnotateCmd{
			Translation: "kjv",
			Ref:         "John 3:16",
			Color:       &color,
			Note:        &note,
			Favorite:    &favorite,
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, lectio.Ref{Book: "John", Chapter: 3, Verse: 16}, gotRef)
		require.NotNil(t, gotPatch.Color)
		assert.Equal(t, "amber", *gotPatch.Color)
		require.NotNil(t, gotPatch.Note)
		assert.Equal(t, "the heart of the gospel", *gotPatch.Note)
		require.NotNil(t, gotPatch.NoteFavorite)
		assert.True(t, *gotPatch.NoteFavorite)
		assert.Nil(t, gotPatch.Underline)
		assert.Nil(t, gotPatch.Bold)
		assert.Nil(t, gotPatch.Bookmarked)
		assert.Contains(t, stdout.String(), "John 3:16  [amber] (study, favorite) the heart of the gospel")
	})

	t.Run("maps the kind flag onto the patch", func(t *testing.T) {
		t.Parallel()

		var gotPatch lectio.AnnotationPatch
		annotations := &mock.AnnotationService{
			UpsertAnnotationFn: func(_ context.Context, translation string, ref lectio.Ref, patch lectio.AnnotationPatch) (*lectio.Annotation, error) {
				gotPatch = patch
				a := lectio.NewAnnotation(translation, ref)
				patch.Apply(a)
				return a, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Provider:    &reader.Provider{Annotations: annotations},
			Annotations: annotations,
		}

		note := "compare the Hebrew"
		kind := "research"
		cmd := &main.AnnotateCmd{
			Translation: "kjv",
			Ref:         "Psalms 23:1",
			Note:        &note,
			Kind:        &kind,
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotPatch.NoteKind)
		assert.Equal(t, lectio.NoteKindResearch, *gotPatch.NoteKind)
		assert.Contains(t, stdout.String(), "Psalms 23:1  (research) compare the Hebrew")
	})

	t.Run("rejects an unknown note kind", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		kind := "casual"
		cmd := &main.AnnotateCmd{Translation: "kjv", Ref: "John 3:16", Kind: &kind}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, lectio.EINVALID, lectio.ErrorCode(err))
		assert.Contains(t, stderr.String(), `Invalid note kind "casual".`)
		assert.Empty(t, stdout.String())
	})

	t.Run("shows the stored annotation when no changes are requested", func(t *testing.T) {
		t.Parallel()

		annotations := &mock.AnnotationService{
			FindAnnotationByRefFn: func(_ context.Context, translation string, ref lectio.Ref) (*lectio.Annotation, error) {
				a := lectio.NewAnnotation(translation, ref)
				a.Underline = true
				a.Note = "remember this"
				return a, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Annotations: annotations,
		}

		cmd := &main.AnnotateCmd{Translation: "kjv", Ref: "John 3:16"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "John 3:16  underline (study) remember this")
	})

	t.Run("reports a verse without an annotation", func(t *testing.T) {
		t.Parallel()

		annotations := &mock.AnnotationService{
			FindAnnotationByRefFn: func(_ context.Context, _ string, ref lectio.Ref) (*lectio.Annotation, error) {
				return nil, lectio.Errorf(lectio.ENOTFOUND, "Annotation not found.")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Annotations: annotations,
		}

		cmd := &main.AnnotateCmd{Translation: "kjv", Ref: "John 3:16"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No annotation on John 3:16.")
		assert.Empty(t, stderr.String())
	})

	t.Run("clears the annotation", func(t *testing.T) {
		t.Parallel()

		var deletedRef lectio.Ref
		annotations := &mock.AnnotationService{
			DeleteAnnotationFn: func(_ context.Context, _ string, ref lectio.Ref) error {
				deletedRef = ref
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Provider: &reader.Provider{Annotations: annotations},
		}

		cmd := &main.AnnotateCmd{Translation: "kjv", Ref: "John 3:16", Clear: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, lectio.Ref{Book: "John", Chapter: 3, Verse: 16}, deletedRef)
		assert.Contains(t, stdout.String(), "Cleared annotation on John 3:16.")
	})

	t.Run("rejects clear combined with other changes", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		color := "amber"
		cmd := &main.AnnotateCmd{Translation: "kjv", Ref: "John 3:16", Clear: true, Color: &color}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, lectio.EINVALID, lectio.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--clear cannot be combined with other changes.")
	})

	t.Run("rejects a malformed reference", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.AnnotateCmd{Translation: "kjv", Ref: "nonsense"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, lectio.EINVALID, lectio.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("returns error when the upsert fails", func(t *testing.T) {
		t.Parallel()

		dbErr := lectio.Errorf(lectio.EINTERNAL, "database error")
		annotations := &mock.AnnotationService{
			UpsertAnnotationFn: func(_ context.Context, _ string, _ lectio.Ref, _ lectio.AnnotationPatch) (*lectio.Annotation, error) {
				return nil, dbErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Provider: &reader.Provider{Annotations: annotations},
		}

		underline := true
		cmd := &main.AnnotateCmd{Translation: "kjv", Ref: "John 3:16", Underline: &underline}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}

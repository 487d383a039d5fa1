package lectio_test

import (
	"testing"

	"github.com/awalczyk/lectio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_Key(t *testing.T) {
	t.Parallel()

	ref := lectio.Ref{Book: "John", Chapter: 3, Verse: 16}
	assert.Equal(t, "John|3|16", ref.Key())
	assert.Equal(t, "John 3:16", ref.String())
}

func TestChapterKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Song of Solomon|2", lectio.ChapterKey("Song of Solomon", 2))
}

func TestRef_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  lectio.Ref
		ok   bool
	}{
		{"valid", lectio.Ref{Book: "Genesis", Chapter: 1, Verse: 1}, true},
		{"missing book", lectio.Ref{Chapter: 1, Verse: 1}, false},
		{"zero chapter", lectio.Ref{Book: "Genesis", Verse: 1}, false},
		{"zero verse", lectio.Ref{Book: "Genesis", Chapter: 1}, false},
		{"negative verse", lectio.Ref{Book: "Genesis", Chapter: 1, Verse: -2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.ref.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, lectio.EINVALID, lectio.ErrorCode(err))
			}
		})
	}
}

func TestParseRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want lectio.Ref
	}{
		{"John 3:16", lectio.Ref{Book: "John", Chapter: 3, Verse: 16}},
		{"1 Corinthians 13:4", lectio.Ref{Book: "1 Corinthians", Chapter: 13, Verse: 4}},
		{"Song of Solomon 2:1", lectio.Ref{Book: "Song of Solomon", Chapter: 2, Verse: 1}},
		{"John|3|16", lectio.Ref{Book: "John", Chapter: 3, Verse: 16}},
		{"  Psalms 23:1 ", lectio.Ref{Book: "Psalms", Chapter: 23, Verse: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := lectio.ParseRef(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRef_Invalid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"   ",
		"John",
		"John 3",
		"John three:16",
		"John 3:sixteen",
		"John|3",
		"John|3|16|b",
		"John|x|16",
		"3:16",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			_, err := lectio.ParseRef(in)
			assert.Equal(t, lectio.EINVALID, lectio.ErrorCode(err), "input %q", in)
		})
	}
}

func TestVerse_Validate(t *testing.T) {
	t.Parallel()

	verse := &lectio.Verse{
		Translation: "kjv",
		Ref:         lectio.Ref{Book: "Genesis", Chapter: 1, Verse: 1},
		Text:        "In the beginning",
	}
	require.NoError(t, verse.Validate())

	verse.Text = ""
	assert.Equal(t, lectio.EINVALID, lectio.ErrorCode(verse.Validate()))

	verse.Text = "In the beginning"
	verse.Translation = ""
	assert.Equal(t, lectio.EINVALID, lectio.ErrorCode(verse.Validate()))
}

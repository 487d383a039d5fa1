package main

import (
	"context"
	"io"

	"github.com/awalczyk/lectio"
	"github.com/awalczyk/lectio/fs"
	"github.com/awalczyk/lectio/ingest"
	"github.com/awalczyk/lectio/reader"
	"github.com/awalczyk/lectio/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	DB          *sqlite.DB
	Provider    *reader.Provider
	Verses      lectio.VerseService
	Annotations lectio.AnnotationService
	Settings    lectio.SettingService
	Sessions    lectio.SessionService

	// Wired per command in Run.
	Importer *ingest.Importer
	Fetcher  lectio.SourceFetcher
	Search   lectio.SearchService
	Exporter *fs.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to an explicit config file" type:"path"`
	DB      string `help:"Path to the database file" type:"path"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Import     ImportCmd     `cmd:"" help:"Import a translation from an XML source"`
	Chapter    ChapterCmd    `cmd:"" help:"Show a chapter with its annotations"`
	Search     SearchCmd     `cmd:"" help:"Search verse text"`
	Annotate   AnnotateCmd   `cmd:"" help:"Annotate a verse or show its annotation"`
	Bookmark   BookmarkCmd   `cmd:"" help:"Toggle a chapter bookmark"`
	Bookmarks  BookmarksCmd  `cmd:"" help:"List bookmarks"`
	Notes      NotesCmd      `cmd:"" help:"List notes"`
	Highlights HighlightsCmd `cmd:"" help:"List highlighted verses"`
	Topics     TopicsCmd     `cmd:"" help:"Show topic tags for a verse"`
	Commentary CommentaryCmd `cmd:"" help:"Show commentary for a verse"`
	Crossrefs  CrossRefsCmd  `cmd:"" help:"Show cross-references for a verse"`
	Setting    SettingCmd    `cmd:"" help:"Manage stored settings"`
	Export     ExportCmd     `cmd:"" help:"Export annotations as markdown"`
	Status     StatusCmd     `cmd:"" help:"Show stored translations and recent imports"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Translation string `arg:"" help:"Translation identifier, e.g. kjv"`
	Source      string `arg:"" help:"Path or URL of the source XML"`
	Force       bool   `short:"f" help:"Re-import even if the translation already has verses"`
}

// ChapterCmd is the "chapter" subcommand.
type ChapterCmd struct {
	Translation string `arg:"" help:"Translation identifier"`
	Book        string `arg:"" help:"Book name, e.g. John"`
	Chapter     int    `arg:"" help:"Chapter number"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Translation string   `arg:"" help:"Translation identifier"`
	Query       []string `arg:"" help:"Text to search for"`
	Limit       int      `short:"n" default:"0" help:"Maximum results (0 uses the configured limit)"`
}

// AnnotateCmd is the "annotate" subcommand. With no change flags it shows
// the current annotation instead of writing one.
type AnnotateCmd struct {
	Translation string `arg:"" help:"Translation identifier"`
	Ref         string `arg:"" help:"Verse reference, e.g. 'John 3:16'"`

	Color     *string `help:"Highlight color ('none' clears the highlight)"`
	Underline *bool   `negatable:"" help:"Underline the verse"`
	Bold      *bool   `negatable:"" help:"Bold the verse"`
	Bookmark  *bool   `negatable:"" help:"Bookmark the verse"`
	Note      *string `help:"Note text (an empty string clears the note)"`
	Kind      *string `help:"Note kind: study, research or personal"`
	Favorite  *bool   `negatable:"" help:"Mark the note as favorite"`
	Clear     bool    `help:"Remove the annotation entirely"`
}

// BookmarkCmd is the "bookmark" subcommand.
type BookmarkCmd struct {
	Translation string `arg:"" help:"Translation identifier"`
	Book        string `arg:"" help:"Book name"`
	Chapter     int    `arg:"" help:"Chapter number"`
}

// BookmarksCmd is the "bookmarks" subcommand.
type BookmarksCmd struct {
	Translation string `arg:"" help:"Translation identifier"`
	Verses      bool   `help:"List verse-level bookmarks instead of chapters"`
}

// NotesCmd is the "notes" subcommand.
type NotesCmd struct {
	Translation string `arg:"" help:"Translation identifier"`
	Kind        string `help:"Restrict to one note kind"`
	Favorites   bool   `help:"Restrict to favorite notes"`
	All         bool   `help:"List all notes instead of the most recent"`
}

// HighlightsCmd is the "highlights" subcommand.
type HighlightsCmd struct {
	Translation string `arg:"" help:"Translation identifier"`
}

// TopicsCmd is the "topics" subcommand.
type TopicsCmd struct {
	Ref string `arg:"" help:"Verse reference, e.g. 'John 3:16'"`
}

// CommentaryCmd is the "commentary" subcommand.
type CommentaryCmd struct {
	Ref string `arg:"" help:"Verse reference, e.g. 'John 3:16'"`
}

// CrossRefsCmd is the "crossrefs" subcommand.
type CrossRefsCmd struct {
	Ref string `arg:"" help:"Verse reference, e.g. 'John 3:16'"`
}

// SettingCmd groups the "setting" subcommands.
type SettingCmd struct {
	Get   SettingGetCmd   `cmd:"" help:"Print a setting value"`
	Set   SettingSetCmd   `cmd:"" help:"Store a setting value"`
	Unset SettingUnsetCmd `cmd:"" help:"Remove a setting"`
}

// SettingGetCmd is the "setting get" subcommand.
type SettingGetCmd struct {
	Key string `arg:"" help:"Setting key"`
}

// SettingSetCmd is the "setting set" subcommand.
type SettingSetCmd struct {
	Key   string `arg:"" help:"Setting key"`
	Value string `arg:"" help:"Setting value"`
}

// SettingUnsetCmd is the "setting unset" subcommand.
type SettingUnsetCmd struct {
	Key string `arg:"" help:"Setting key"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Translation string `arg:"" help:"Translation identifier"`
	Dir         string `help:"Export directory (defaults to the configured one)" type:"path"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}

// Package lectio provides a local, offline-first scripture reading and
// study tool. It imports translations from XML sources into an embedded
// database, layers per-verse annotations and chapter bookmarks on top of
// the text, and serves merged reading views, substring search, and static
// study references (topics, commentary, cross-references) to the CLI.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, biblexml/, reader/).
package lectio

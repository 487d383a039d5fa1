package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/awalczyk/lectio/config"
	lectiofs "github.com/awalczyk/lectio/fs"
	lectiohttp "github.com/awalczyk/lectio/http"
	"github.com/awalczyk/lectio/ingest"
	"github.com/awalczyk/lectio/reader"
	"github.com/awalczyk/lectio/refpack"
	lectioslog "github.com/awalczyk/lectio/slog"
	"github.com/awalczyk/lectio/sqlite"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overrides the configured path when set before Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Provider assembled over the SQLite services, for end-to-end testing.
	Provider *reader.Provider
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lectio"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lectio --help' to see available commands")
	}
	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()
	if i := strings.IndexByte(cmd, ' '); i > 0 {
		cmd = cmd[:i]
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cli.Verbose)

	// Open database
	dbPath := cfg.DB.Path
	if m.DBPath != "" {
		dbPath = m.DBPath
	}
	if cli.DB != "" {
		dbPath = cli.DB
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}

	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LECTIO_DB_PATH or pass --db to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	verses := sqlite.NewVerseService(m.DB)
	annotations := sqlite.NewAnnotationService(m.DB)
	bookmarks := sqlite.NewBookmarkService(m.DB)
	settings := sqlite.NewSettingService(m.DB)
	sessions := sqlite.NewSessionService(m.DB)

	m.Provider = &reader.Provider{
		Verses:      verses,
		Annotations: annotations,
		Bookmarks:   bookmarks,
		Settings:    settings,
		Packs:       refpack.NewLoader(os.DirFS(cfg.Packs.Dir)),
		SearchLimit: cfg.Search.Limit,
	}

	deps.DB = m.DB
	deps.Provider = m.Provider
	deps.Verses = verses
	deps.Annotations = annotations
	deps.Settings = settings
	deps.Sessions = sessions
	deps.Search = lectioslog.NewLoggingSearchService(m.Provider, logger)

	// Wire command-specific dependencies based on command
	if cmd == "import" {
		fetcher := lectiohttp.NewFetcher(
			lectiohttp.WithTimeout(cfg.Fetch.Timeout),
			lectiohttp.WithHostLimiter(lectiohttp.NewHostLimiter(cfg.Fetch.RPS)),
		)
		deps.Fetcher = lectioslog.NewLoggingFetcher(fetcher, logger)
		deps.Importer = &ingest.Importer{
			Verses:   verses,
			Sessions: sessions,
			Settings: settings,
			Logger:   logger,
		}
	}

	if cmd == "export" {
		dir := cfg.Export.Dir
		if cli.Export.Dir != "" {
			dir = cli.Export.Dir
		}
		deps.Exporter = lectiofs.NewExporter(dir)
	}

	return kongCtx.Run(deps)
}

// newLogger builds the stderr logger. Verbose lowers the level to Info;
// the default surfaces only warnings.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
		w = colorable.NewColorable(f)
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
}

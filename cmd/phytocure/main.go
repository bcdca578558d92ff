package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/phytocure"
	"github.com/fwojciec/phytocure/fs"
	"github.com/fwojciec/phytocure/htmltomarkdown"
	phytohttp "github.com/fwojciec/phytocure/http"
	"github.com/fwojciec/phytocure/knapsack"
	"github.com/fwojciec/phytocure/lookup"
	"github.com/fwojciec/phytocure/pfaf"
	phytoslog "github.com/fwojciec/phytocure/slog"
	"github.com/fwojciec/phytocure/sqlite"
	phytoyaml "github.com/fwojciec/phytocure/yaml"
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
	// Database path. Set before calling Run().
	DBPath string

	// Source endpoints. Tests point these at local servers.
	CompoundsURL string
	UsageURL     string

	// Stdin is read when search is run without plant names.
	Stdin io.Reader

	// SQLite database used by the history service.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		CompoundsURL: knapsack.DefaultBaseURL,
		UsageURL:     pfaf.DefaultBaseURL,
		Stdin:        os.Stdin,
	}
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
	deps := &Dependencies{
		Ctx:          ctx,
		Stdin:        m.Stdin,
		Stdout:       stdout,
		Stderr:       stderr,
		Translations: phytocure.DefaultTranslations(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("phytocure"),
		kong.Description("Look up plant compounds, traditional uses and associated diseases"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'phytocure --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Lang, err = phytocure.ParseLanguage(cli.Lang)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", phytocure.ErrorMessage(err))
		return err
	}

	deps.Associations = phytocure.DefaultAssociations()
	if cli.Associations != "" {
		deps.Associations, err = phytoyaml.LoadAssociationsFile(cli.Associations)
		if err != nil {
			return fmt.Errorf("failed to load associations from %q: %w", cli.Associations, err)
		}
	}

	needsDB := cmd == "history" || cmd == "forget" || (cmd == "search" && !cli.Search.NoHistory)
	if needsDB {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PHYTOCURE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.History = sqlite.NewHistoryService(m.DB)
	}

	if cmd == "search" {
		limiter := phytohttp.NewDomainLimiter(1.0)
		fetcher := phytoslog.NewLoggingFetcher(
			phytohttp.NewFetcher(
				phytohttp.WithTimeout(cli.Search.Timeout),
				phytohttp.WithLimiter(limiter),
			),
			logger,
		)
		defer fetcher.Close()

		svc := &lookup.Service{
			Compounds: phytoslog.NewLoggingCompoundSource(
				knapsack.NewSource(fetcher, knapsack.WithBaseURL(m.CompoundsURL)), logger),
			Usage: phytoslog.NewLoggingUsageSource(
				pfaf.NewSource(fetcher, pfaf.WithBaseURL(m.UsageURL)), logger),
			Associations: deps.Associations,
			History:      deps.History,
		}
		deps.Searcher = phytoslog.NewLoggingSearcher(svc, logger)
		deps.Converter = htmltomarkdown.NewConverter()
		if cli.Search.Output != "" {
			deps.Reports = fs.NewWriter(cli.Search.Output)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PHYTOCURE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "phytocure.db"
	}
	dir := filepath.Join(home, ".phytocure")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "phytocure.db")
}

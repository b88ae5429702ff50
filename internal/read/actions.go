package read

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/annefou/FIP-Analyzer/models"
	"github.com/annefou/FIP-Analyzer/pkg/enrich"
	"github.com/annefou/FIP-Analyzer/pkg/fair"
	"github.com/annefou/FIP-Analyzer/pkg/nanopub"
	"github.com/annefou/FIP-Analyzer/pkg/profile"
	"github.com/annefou/FIP-Analyzer/pkg/rdf"
	"github.com/annefou/FIP-Analyzer/pkg/report"
	"github.com/annefou/FIP-Analyzer/pkg/wizard"
	"github.com/urfave/cli/v2"
)

func ReadAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	if c.Bool("debug") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	path := c.Args().First()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: no input file provided")
		fmt.Fprintln(os.Stderr, "Usage: fip-analyzer read <file.trig|file.json> [--fetch]")
		os.Exit(1)
	}

	cfg := models.DefaultConfig()
	if c.IsSet("config") {
		var err error
		cfg, err = models.LoadConfig(c.String("config"))
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(2)
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return readWizardExport(c, logger, path)
	}
	return readNanopubFile(c, logger, cfg, path)
}

// readWizardExport handles FIP Wizard JSON exports. These carry the full
// declaration set inline, so no network access is needed.
func readWizardExport(c *cli.Context, logger *slog.Logger, path string) error {
	logger.Info("reading FIP Wizard export", "file", path)

	info, declarations, err := wizard.ReadFile(path)
	if err != nil {
		logger.Error("failed to read wizard export", "file", path, "error", err)
		os.Exit(1)
	}
	logger.Info("parsed wizard export", "declarations", len(declarations))

	if c.Bool("enrich") {
		enricher := enrich.NewEnricher(logger)
		enricher.Declarations(declarations)
		enricher.DetectLanguage(info)
	}

	report.Render(os.Stdout, info, fair.Organize(declarations))
	return nil
}

// readNanopubFile handles TriG and N-Quads profile files. Without --fetch
// only the locally available header is shown.
func readNanopubFile(c *cli.Context, logger *slog.Logger, cfg *models.Config, path string) error {
	logger.Info("reading FIP nanopublication", "file", path)

	quads, err := rdf.ParseFile(path)
	if err != nil {
		logger.Error("failed to parse RDF file", "file", path, "error", err)
		os.Exit(1)
	}
	logger.Debug("parsed quads", "count", len(quads), "graphs", len(rdf.GraphNames(quads)))

	info := profile.Extract(quads)

	if c.Bool("local") || !c.Bool("fetch") {
		report.RenderHeaderOnly(os.Stdout, info, path)
		return nil
	}

	if info.DeclarationIndex == "" {
		logger.Warn("profile has no declaration index, nothing to fetch")
		report.RenderHeaderOnly(os.Stdout, info, path)
		return nil
	}

	fetcher := nanopub.NewFetcher(cfg, logger)
	debug := c.Bool("debug")

	fmt.Fprintf(os.Stderr, "📥 Fetching declaration index: %s\n", info.DeclarationIndex)
	indexQuads, err := fetcher.Fetch(info.DeclarationIndex)
	if err != nil {
		logger.Error("failed to fetch declaration index", "error", err)
		os.Exit(2)
	}
	if len(indexQuads) == 0 {
		report.RenderIndexUnavailable(os.Stdout, info)
		report.RenderHeaderOnly(os.Stdout, info, path)
		return nil
	}

	uris := nanopub.ExtractDeclarations(indexQuads, debug, os.Stdout)
	if len(uris) == 0 {
		report.RenderEmptyIndexHint(os.Stdout, path)
		report.RenderHeaderOnly(os.Stdout, info, path)
		return nil
	}
	if len(uris) > cfg.MaxDeclarations {
		logger.Warn("capping declaration fetch", "found", len(uris), "cap", cfg.MaxDeclarations)
		uris = uris[:cfg.MaxDeclarations]
	}

	var declarations []models.Declaration
	for i, uri := range uris {
		fmt.Fprintf(os.Stderr, "\r   Fetching declarations: %d/%d", i+1, len(uris))
		declQuads, err := fetcher.Fetch(uri)
		if err != nil {
			logger.Error("failed to fetch declaration", "uri", uri, "error", err)
			continue
		}
		if len(declQuads) == 0 {
			logger.Debug("declaration unavailable on all endpoints", "uri", uri)
			continue
		}
		decl := nanopub.ParseDeclaration(declQuads, debug, os.Stdout)
		if decl.QuestionID == "" {
			logger.Debug("declaration has no recognizable question", "uri", uri)
			continue
		}
		declarations = append(declarations, decl)
	}
	fmt.Fprintln(os.Stderr)
	logger.Info("fetched declarations", "usable", len(declarations), "total", len(uris))

	if c.Bool("enrich") {
		enricher := enrich.NewEnricher(logger)
		enricher.Declarations(declarations)
		enricher.DetectLanguage(info)
	}

	report.Render(os.Stdout, info, fair.Organize(declarations))
	return nil
}

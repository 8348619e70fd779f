// Package app implements the application layer for syster.
package app

import (
	"context"
	"maps"
	"slices"

	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/syster/internal/core/ports"
	"go.trai.ch/zerr"
)

// CorpusParser parses every source file below a directory.
type CorpusParser interface {
	ParseAll(ctx context.Context, path string) []domain.FileEntry
}

// logConfigurer is implemented by loggers that support runtime reconfiguration.
type logConfigurer interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	config  *domain.Config
	locator ports.StdlibLocator
	parser  CorpusParser
	hasher  ports.Hasher
	logger  ports.Logger
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	locator ports.StdlibLocator,
	parser CorpusParser,
	hasher ports.Hasher,
	log ports.Logger,
) *App {
	return &App{
		config:  cfg,
		locator: locator,
		parser:  parser,
		hasher:  hasher,
		logger:  log,
	}
}

// ConfigureLogging applies the log section of the configuration. verbose
// forces debug output regardless of the configuration.
func (a *App) ConfigureLogging(verbose bool) {
	lc, ok := a.logger.(logConfigurer)
	if !ok {
		return
	}
	lc.SetVerbose(verbose || a.config.Log.Verbose)
	lc.SetJSON(a.config.Log.JSON)
}

// StdlibOptions configures the Stdlib method.
type StdlibOptions struct {
	// Path overrides the configured and resolved corpus location.
	Path string
}

// FileSummary describes one parsed file.
type FileSummary struct {
	Path     string          `json:"path"`
	Language domain.Language `json:"language"`
	Elements int             `json:"elements"`
	Imports  int             `json:"imports"`
}

// StdlibReport summarises a parsed standard library corpus.
type StdlibReport struct {
	Path        string                  `json:"path"`
	Files       []FileSummary           `json:"files"`
	Elements    int                     `json:"elements"`
	Definitions int                     `json:"definitions"`
	Languages   map[domain.Language]int `json:"languages"`
	Fingerprint string                  `json:"fingerprint"`
}

// SortedLanguages returns the languages present in the report in sorted order.
func (r *StdlibReport) SortedLanguages() []domain.Language {
	return slices.Sorted(maps.Keys(r.Languages))
}

// Stdlib parses the standard library corpus and summarises it.
// It fails with domain.ErrStdlibEmpty when no file could be parsed.
func (a *App) Stdlib(ctx context.Context, opts StdlibOptions) (*StdlibReport, error) {
	dir := a.stdlibDir(opts)
	a.logger.Debug("parsing stdlib", "path", dir)

	entries := a.parser.ParseAll(ctx, dir)
	if len(entries) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrStdlibEmpty, "stdlib summary unavailable"), "path", dir)
	}

	report := &StdlibReport{
		Path:        dir,
		Files:       make([]FileSummary, 0, len(entries)),
		Languages:   make(map[domain.Language]int),
		Fingerprint: a.hasher.ComputeCorpusHash(entries),
	}
	for _, e := range entries {
		report.Files = append(report.Files, FileSummary{
			Path:     e.Path,
			Language: e.File.Language,
			Elements: len(e.File.Elements),
			Imports:  len(e.File.Imports),
		})
		report.Elements += len(e.File.Elements)
		for _, el := range e.File.Elements {
			if el.Kind.IsDefinition() {
				report.Definitions++
			}
		}
		report.Languages[e.File.Language]++
	}

	return report, nil
}

func (a *App) stdlibDir(opts StdlibOptions) string {
	switch {
	case opts.Path != "":
		return opts.Path
	case a.config.Stdlib.Path != "":
		return a.config.Stdlib.Path
	default:
		return a.locator.Resolve()
	}
}

// Package stdlib parses the SysML standard library once per process and
// bootstraps workspaces seeded from that shared result.
package stdlib

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/syster/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// TracerName is the instrumentation scope used for pipeline spans.
const TracerName = "go.trai.ch/syster/internal/engine/stdlib"

// SpanParseAll is the name of the span wrapping every ParseAll call.
const SpanParseAll = "stdlib.parse_all"

// Pipeline discovers and parses every source file below a directory.
type Pipeline struct {
	collector ports.FileCollector
	parser    ports.Parser
	logger    ports.Logger
	workers   int
	tracer    trace.Tracer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers bounds the number of files parsed concurrently.
// Values below one select domain.DefaultParseWorkers.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithTracerProvider sets the provider used to create pipeline spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Pipeline) {
		p.tracer = tp.Tracer(TracerName)
	}
}

// NewPipeline creates a Pipeline from its collaborators.
func NewPipeline(collector ports.FileCollector, parser ports.Parser, logger ports.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		collector: collector,
		parser:    parser,
		logger:    logger,
		workers:   domain.DefaultParseWorkers,
		tracer:    otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseAll parses every recognised file below path and returns the successes
// in discovery order. It never fails: a missing directory or a failed
// enumeration yields an empty slice, and files that fail to parse are left out.
func (p *Pipeline) ParseAll(ctx context.Context, path string) []domain.FileEntry {
	ctx, span := p.tracer.Start(ctx, SpanParseAll, trace.WithAttributes(attribute.String("stdlib.path", path)))
	defer span.End()

	entries := []domain.FileEntry{}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		p.logger.Debug("stdlib directory not available", "path", path)
		span.SetAttributes(attribute.Int("stdlib.discovered", 0), attribute.Int("stdlib.parsed", 0))
		return entries
	}

	paths, err := p.collector.CollectFilePaths(path)
	if err != nil {
		p.logger.Debug("stdlib enumeration failed", "path", path, "error", err)
		span.RecordError(err)
		span.SetAttributes(attribute.Int("stdlib.discovered", 0), attribute.Int("stdlib.parsed", 0))
		return entries
	}

	files := make([]*domain.SyntaxFile, len(paths))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, filePath := range paths {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			file, err := p.parser.LoadAndParse(filePath)
			if err != nil {
				p.logger.Debug("skipping stdlib file", "path", filePath, "error", err)
				return nil
			}
			files[i] = file
			return nil
		})
	}
	_ = g.Wait()

	for i, file := range files {
		if file != nil {
			entries = append(entries, domain.FileEntry{Path: paths[i], File: file})
		}
	}

	span.SetAttributes(
		attribute.Int("stdlib.discovered", len(paths)),
		attribute.Int("stdlib.parsed", len(entries)),
	)
	p.logger.Debug("parsed stdlib", "path", path, "discovered", len(paths), "parsed", len(entries))

	return entries
}

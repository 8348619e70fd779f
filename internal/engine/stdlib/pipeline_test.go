package stdlib_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/syster/internal/core/ports/mocks"
	"go.trai.ch/syster/internal/engine/stdlib"
	"go.uber.org/mock/gomock"
)

func TestPipeline_ParseAll_SkipsMalformedFiles(t *testing.T) {
	dir := writeCorpus(t, 5, 2)

	entries := newPipeline(t).ParseAll(t.Context(), dir)

	require.Len(t, entries, 5)
	for _, e := range entries {
		assert.NotContains(t, filepath.Base(e.Path), "Broken")
		require.NotNil(t, e.File)
		assert.Equal(t, e.Path, e.File.Path)
	}
}

func TestPipeline_ParseAll_PreservesDiscoveryOrder(t *testing.T) {
	dir := writeCorpus(t, 12, 0)
	writeFile(t, filepath.Join(dir, "nested", "Deep.kerml"), "package Deep;\n")

	serial := newPipeline(t, stdlib.WithWorkers(1)).ParseAll(t.Context(), dir)
	parallel := newPipeline(t, stdlib.WithWorkers(8)).ParseAll(t.Context(), dir)

	require.Len(t, serial, 13)
	assert.Equal(t, serial, parallel)

	paths := make([]string, len(serial))
	for i, e := range serial {
		paths[i] = e.Path
	}
	assert.IsNonDecreasing(t, paths)
}

func TestPipeline_ParseAll_MissingDirectory(t *testing.T) {
	entries := newPipeline(t).ParseAll(t.Context(), filepath.Join(t.TempDir(), "absent"))
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestPipeline_ParseAll_PathIsFile(t *testing.T) {
	dir := writeCorpus(t, 1, 0)
	entries := newPipeline(t).ParseAll(t.Context(), filepath.Join(dir, "Lib0.sysml"))
	assert.Empty(t, entries)
}

func TestPipeline_ParseAll_EnumerationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := mocks.NewMockFileCollector(ctrl)
	p := mocks.NewMockParser(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	dir := t.TempDir()
	collector.EXPECT().CollectFilePaths(dir).Return(nil, errors.New("permission denied"))

	entries := stdlib.NewPipeline(collector, p, log).ParseAll(t.Context(), dir)
	assert.Empty(t, entries)
}

func TestPipeline_ParseAll_ParserFailuresOmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := mocks.NewMockFileCollector(ctrl)
	p := mocks.NewMockParser(ctrl)
	log := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	collector.EXPECT().CollectFilePaths(dir).Return([]string{"a.sysml", "b.sysml", "c.kerml"}, nil)
	p.EXPECT().LoadAndParse("a.sysml").Return(&domain.SyntaxFile{Path: "a.sysml"}, nil)
	p.EXPECT().LoadAndParse("b.sysml").Return(nil, domain.ErrUnbalancedBraces)
	p.EXPECT().LoadAndParse("c.kerml").Return(&domain.SyntaxFile{Path: "c.kerml"}, nil)
	log.EXPECT().Debug("skipping stdlib file", "path", "b.sysml", "error", domain.ErrUnbalancedBraces)
	log.EXPECT().Debug("parsed stdlib", gomock.Any())

	entries := stdlib.NewPipeline(collector, p, log).ParseAll(t.Context(), dir)

	require.Len(t, entries, 2)
	assert.Equal(t, "a.sysml", entries[0].Path)
	assert.Equal(t, "c.kerml", entries[1].Path)
}

func TestPipeline_ParseAll_Span(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	dir := writeCorpus(t, 3, 1)
	newPipeline(t, stdlib.WithTracerProvider(tp)).ParseAll(t.Context(), dir)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, stdlib.SpanParseAll, spans[0].Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, dir, attrs["stdlib.path"].AsString())
	assert.Equal(t, int64(4), attrs["stdlib.discovered"].AsInt64())
	assert.Equal(t, int64(3), attrs["stdlib.parsed"].AsInt64())
}

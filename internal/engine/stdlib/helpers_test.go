package stdlib_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/syster/internal/adapters/fs"
	"go.trai.ch/syster/internal/adapters/logger"
	"go.trai.ch/syster/internal/adapters/parser"
	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/syster/internal/engine/stdlib"
)

// writeCorpus creates good well-formed files and bad malformed files below a
// temporary directory and returns it.
func writeCorpus(t *testing.T, good, bad int) string {
	t.Helper()
	dir := t.TempDir()

	for i := range good {
		content := fmt.Sprintf("package Lib%d {\n    part def Thing%d;\n}\n", i, i)
		writeFile(t, filepath.Join(dir, fmt.Sprintf("Lib%d.sysml", i)), content)
	}
	for i := range bad {
		writeFile(t, filepath.Join(dir, fmt.Sprintf("Broken%d.sysml", i)), "package Broken {\n    part def Open;\n")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func quietLogger(t *testing.T) *logger.Logger {
	t.Helper()
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(io.Discard)
	return lg
}

func newPipeline(t *testing.T, opts ...stdlib.Option) *stdlib.Pipeline {
	t.Helper()
	return stdlib.NewPipeline(fs.NewCollector(fs.NewWalker()), parser.New(), quietLogger(t), opts...)
}

// fixedCache returns a cache whose corpus is parsed from dir.
func fixedCache(t *testing.T, dir string) *stdlib.Cache {
	t.Helper()
	p := newPipeline(t)
	return stdlib.NewCache(func() []domain.FileEntry {
		return p.ParseAll(t.Context(), dir)
	})
}

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syster/internal/adapters/config"
	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/syster/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := newLoader(t).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_Overrides(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.DefaultConfigFile, `
stdlib:
  dir: kernel.library
  path: vendor/sysml.library
  workers: 2
  ignore: ["*.bak", "drafts"]
log:
  verbose: true
  json: true
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "kernel.library", cfg.Stdlib.Dir)
	assert.Equal(t, filepath.Join(dir, "vendor", "sysml.library"), cfg.Stdlib.Path)
	assert.Equal(t, 2, cfg.Stdlib.Workers)
	assert.Equal(t, []string{"*.bak", "drafts"}, cfg.Stdlib.Ignore)
	assert.True(t, cfg.Log.Verbose)
	assert.True(t, cfg.Log.JSON)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.DefaultConfigFile, "log:\n  verbose: true\n")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultStdlibDir, cfg.Stdlib.Dir)
	assert.Empty(t, cfg.Stdlib.Path)
	assert.Equal(t, domain.DefaultParseWorkers, cfg.Stdlib.Workers)
	assert.True(t, cfg.Log.Verbose)
}

func TestLoader_Load_ZeroWorkersMeansDefault(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.DefaultConfigFile, "stdlib:\n  workers: 0\n")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultParseWorkers, cfg.Stdlib.Workers)
}

func TestLoader_Load_AbsolutePathKept(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "lib")
	createFile(t, dir, domain.DefaultConfigFile, "stdlib:\n  path: "+abs+"\n")

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.Stdlib.Path)
}

func TestLoader_Load_FindsParentConfig(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.DefaultConfigFile, "stdlib:\n  workers: 3\n")

	nested := filepath.Join(root, "models", "vehicles")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := newLoader(t).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Stdlib.Workers)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "invalid yaml",
			content: "stdlib: [unclosed",
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
			},
		},
		{
			name:    "negative workers",
			content: "stdlib:\n  workers: -1\n",
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, errors.Is(err, domain.ErrInvalidWorkers))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			createFile(t, dir, domain.DefaultConfigFile, tt.content)

			cfg, err := newLoader(t).Load(dir)
			require.Error(t, err)
			assert.Nil(t, cfg)
			tt.check(t, err)
		})
	}
}

func TestLoader_Load_ReadFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory with the config name is found by Stat but cannot be read.
	require.NoError(t, os.Mkdir(filepath.Join(dir, domain.DefaultConfigFile), 0o750))

	_, err := newLoader(t).Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}

package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syster/cmd/syster/commands"
	"go.trai.ch/syster/internal/app"
	"go.trai.ch/syster/internal/build"
	"go.trai.ch/syster/internal/core/domain"
)

type mockApp struct {
	verbose    bool
	configured bool
	stdlibFunc func(ctx context.Context, opts app.StdlibOptions) (*app.StdlibReport, error)
}

func (m *mockApp) ConfigureLogging(verbose bool) {
	m.configured = true
	m.verbose = verbose
}

func (m *mockApp) Stdlib(ctx context.Context, opts app.StdlibOptions) (*app.StdlibReport, error) {
	if m.stdlibFunc != nil {
		return m.stdlibFunc(ctx, opts)
	}
	return sampleReport(), nil
}

func sampleReport() *app.StdlibReport {
	return &app.StdlibReport{
		Path: "/opt/syster/sysml.library",
		Files: []app.FileSummary{
			{Path: "/opt/syster/sysml.library/Base.kerml", Language: domain.LanguageKerML, Elements: 5},
			{Path: "/opt/syster/sysml.library/Items.sysml", Language: domain.LanguageSysML, Elements: 4, Imports: 2},
			{Path: "/opt/syster/sysml.library/Parts.sysml", Language: domain.LanguageSysML, Elements: 5, Imports: 3},
		},
		Elements:    14,
		Definitions: 3,
		Languages:   map[domain.Language]int{domain.LanguageKerML: 1, domain.LanguageSysML: 2},
		Fingerprint: "9f86d081884c7d65",
	}
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(a)
	cli.SetArgs(args)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)

	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Stdlib(t *testing.T) {
	t.Run("renders summary", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "stdlib")
		require.NoError(t, err)

		g := goldie.New(t)
		g.Assert(t, "stdlib_summary", []byte(out))
	})

	t.Run("passes path flag", func(t *testing.T) {
		var captured app.StdlibOptions
		mock := &mockApp{
			stdlibFunc: func(_ context.Context, opts app.StdlibOptions) (*app.StdlibReport, error) {
				captured = opts
				return sampleReport(), nil
			},
		}

		_, err := execute(t, mock, "stdlib", "--path", "/tmp/lib")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/lib", captured.Path)
	})

	t.Run("json output", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "stdlib", "--json")
		require.NoError(t, err)

		var decoded app.StdlibReport
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, sampleReport(), &decoded)
	})

	t.Run("returns app error", func(t *testing.T) {
		mock := &mockApp{
			stdlibFunc: func(_ context.Context, _ app.StdlibOptions) (*app.StdlibReport, error) {
				return nil, domain.ErrStdlibEmpty
			},
		}

		_, err := execute(t, mock, "stdlib")
		require.ErrorIs(t, err, domain.ErrStdlibEmpty)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "stdlib", "extra")
		require.Error(t, err)
	})
}

func TestCommands_VerboseFlag(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "-v", "stdlib")
	require.NoError(t, err)
	assert.True(t, mock.configured)
	assert.True(t, mock.verbose)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "syster version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)
}

func TestCommands_VersionFlag(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

func TestCommands_UnknownCommand(t *testing.T) {
	_, err := execute(t, &mockApp{}, "frobnicate")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrStdlibEmpty))
}

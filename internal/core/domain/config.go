package domain

const (
	// DefaultConfigFile is the configuration file looked up in the working directory.
	DefaultConfigFile = "syster.yaml"

	// DefaultStdlibDir is the directory name holding the standard library corpus.
	DefaultStdlibDir = "sysml.library"

	// DefaultParseWorkers bounds the number of files parsed concurrently.
	DefaultParseWorkers = 8
)

// Config is the resolved configuration for syster.
type Config struct {
	Stdlib StdlibConfig
	Log    LogConfig
}

// StdlibConfig controls how the standard library corpus is located and parsed.
type StdlibConfig struct {
	// Dir is the directory name probed by the path resolver.
	Dir string
	// Path, when set, is used verbatim instead of the resolver.
	Path    string
	Workers int
	Ignore  []string
}

// LogConfig controls logger output.
type LogConfig struct {
	Verbose bool
	JSON    bool
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Stdlib: StdlibConfig{
			Dir:     DefaultStdlibDir,
			Workers: DefaultParseWorkers,
		},
	}
}

package config

// Systerfile represents the structure of the syster.yaml configuration file.
type Systerfile struct {
	Stdlib StdlibDTO `yaml:"stdlib"`
	Log    LogDTO    `yaml:"log"`
}

// StdlibDTO represents the stdlib section of the configuration.
type StdlibDTO struct {
	Dir     string   `yaml:"dir"`
	Path    string   `yaml:"path"`
	Workers *int     `yaml:"workers"`
	Ignore  []string `yaml:"ignore"`
}

// LogDTO represents the log section of the configuration.
type LogDTO struct {
	Verbose bool `yaml:"verbose"`
	JSON    bool `yaml:"json"`
}

// Package config provides the configuration loader for syster.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/syster/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	Filename string
}

// NewLoader creates a new Loader looking for domain.DefaultConfigFile.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Filename: domain.DefaultConfigFile}
}

// Load searches cwd and its parents for the configuration file and returns the
// resolved configuration. When no file is found the defaults are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := l.findConfiguration(cwd)
	if !found {
		l.Logger.Debug("no configuration file found, using defaults", "cwd", cwd)
		return domain.DefaultConfig(), nil
	}

	var file Systerfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg, err := toDomain(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	l.Logger.Debug("loaded configuration", "path", configPath)
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, l.Filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func toDomain(configPath string, file *Systerfile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.Stdlib.Dir != "" {
		cfg.Stdlib.Dir = file.Stdlib.Dir
	}
	if file.Stdlib.Path != "" {
		cfg.Stdlib.Path = resolvePath(configPath, file.Stdlib.Path)
	}
	if w := file.Stdlib.Workers; w != nil {
		switch {
		case *w < 0:
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidWorkers, "invalid stdlib section"), "workers", *w)
		case *w > 0:
			cfg.Stdlib.Workers = *w
		}
	}
	cfg.Stdlib.Ignore = file.Stdlib.Ignore
	cfg.Log = domain.LogConfig{
		Verbose: file.Log.Verbose,
		JSON:    file.Log.JSON,
	}

	return cfg, nil
}

// resolvePath makes a configured path relative to the directory holding the
// configuration file.
func resolvePath(configPath, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(configPath), configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findConfiguration
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

// Package build holds build-time information.
package build

import (
	"path/filepath"
	"runtime"
)

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the git commit the binary was built from.
var Commit = "none"

// Date is the build date.
var Date = "unknown"

// manifestDir is the absolute source root of the module.
// It can be set with -ldflags "-X go.trai.ch/syster/internal/build.manifestDir=/path".
var manifestDir string

// ManifestDir returns the absolute path of the module source root.
// Without a linker override it is derived from the compile-time location of
// this file. It returns an empty string when that location is not absolute,
// as happens with -trimpath builds.
func ManifestDir() string {
	if manifestDir != "" {
		return manifestDir
	}

	_, file, _, ok := runtime.Caller(0)
	if !ok || !filepath.IsAbs(file) {
		return ""
	}

	// file is <root>/internal/build/build.go
	return filepath.Dir(filepath.Dir(filepath.Dir(file)))
}

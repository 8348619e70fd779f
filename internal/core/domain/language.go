package domain

import (
	"path/filepath"
	"strings"
)

// Language identifies the textual notation a source file is written in.
type Language string

const (
	// LanguageSysML is the SysML v2 textual notation (.sysml).
	LanguageSysML Language = "sysml"
	// LanguageKerML is the Kernel Modeling Language notation (.kerml).
	LanguageKerML Language = "kerml"
)

// LanguageForPath returns the language implied by the file extension of path.
// The second result is false for unrecognised extensions.
func LanguageForPath(path string) (Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sysml":
		return LanguageSysML, true
	case ".kerml":
		return LanguageKerML, true
	default:
		return "", false
	}
}

// IsSourceFile reports whether path carries a recognised model source extension.
func IsSourceFile(path string) bool {
	_, ok := LanguageForPath(path)
	return ok
}

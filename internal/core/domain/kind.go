package domain

import (
	"strings"
	"unique"
)

// ElementKind is the declaration keyword sequence of an element, such as
// "package" or "use case def". A corpus repeats a small set of kinds many
// times, so each distinct kind is stored once per process.
type ElementKind struct {
	h unique.Handle[string]
}

// NewElementKind interns kind.
func NewElementKind(kind string) ElementKind {
	return ElementKind{h: unique.Make(kind)}
}

// String returns the keyword sequence, or "" for the zero value.
func (k ElementKind) String() string {
	if k == (ElementKind{}) {
		return ""
	}
	return k.h.Value()
}

// IsDefinition reports whether the kind declares a definition ("part def").
func (k ElementKind) IsDefinition() bool {
	return strings.HasSuffix(k.String(), " def")
}

// MarshalText implements encoding.TextMarshaler.
func (k ElementKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

package domain

import "slices"

// Element is a named declaration found in a source file.
type Element struct {
	Kind          ElementKind
	Name          string
	QualifiedName string
	Line          int
}

// SyntaxFile is the parsed outline of a single model source file.
// Values shared through the stdlib cache must be treated as read-only;
// use Clone to obtain an independently mutable copy.
type SyntaxFile struct {
	Path        string
	Language    Language
	Elements    []Element
	Imports     []string
	ContentHash uint64
}

// Clone returns a deep copy of the file. The copy shares no slices with f.
func (f *SyntaxFile) Clone() *SyntaxFile {
	if f == nil {
		return nil
	}
	return &SyntaxFile{
		Path:        f.Path,
		Language:    f.Language,
		Elements:    slices.Clone(f.Elements),
		Imports:     slices.Clone(f.Imports),
		ContentHash: f.ContentHash,
	}
}

// FileEntry pairs a filesystem path with its parsed file.
type FileEntry struct {
	Path string
	File *SyntaxFile
}

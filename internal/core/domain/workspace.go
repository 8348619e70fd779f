package domain

import (
	"iter"
	"slices"
)

// Workspace holds the parsed files of one session.
// It is owned by a single caller and is not safe for concurrent use.
type Workspace struct {
	files        map[string]*SyntaxFile
	order        []string
	stdlibLoaded bool
}

// NewWorkspace creates an empty Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		files: make(map[string]*SyntaxFile),
	}
}

// AddFile inserts file under path. An existing entry for the same path is
// replaced and keeps its original position.
func (w *Workspace) AddFile(path string, file *SyntaxFile) {
	if _, ok := w.files[path]; !ok {
		w.order = append(w.order, path)
	}
	w.files[path] = file
}

// RemoveFile deletes the entry for path and reports whether it existed.
func (w *Workspace) RemoveFile(path string) bool {
	if _, ok := w.files[path]; !ok {
		return false
	}
	delete(w.files, path)
	w.order = slices.DeleteFunc(w.order, func(p string) bool { return p == path })
	return true
}

// File returns the file stored under path.
func (w *Workspace) File(path string) (*SyntaxFile, bool) {
	f, ok := w.files[path]
	return f, ok
}

// Files yields every path and file in insertion order.
func (w *Workspace) Files() iter.Seq2[string, *SyntaxFile] {
	return func(yield func(string, *SyntaxFile) bool) {
		for _, path := range w.order {
			if !yield(path, w.files[path]) {
				return
			}
		}
	}
}

// Len returns the number of files in the workspace.
func (w *Workspace) Len() int {
	return len(w.files)
}

// MarkStdlibLoaded records that the standard library has been seeded.
// There is no way to clear the flag.
func (w *Workspace) MarkStdlibLoaded() {
	w.stdlibLoaded = true
}

// StdlibLoaded reports whether the standard library has been seeded.
func (w *Workspace) StdlibLoaded() bool {
	return w.stdlibLoaded
}

// Lookup finds the first element whose qualified name equals name and
// returns it together with the path of the declaring file.
func (w *Workspace) Lookup(name string) (Element, string, bool) {
	for path, file := range w.Files() {
		if file == nil {
			continue
		}
		for _, el := range file.Elements {
			if el.QualifiedName == name {
				return el, path, true
			}
		}
	}
	return Element{}, "", false
}

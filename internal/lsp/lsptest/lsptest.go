// Package lsptest provides constructors for language servers in tests.
// Servers seeded with the standard library share one parse of it per test
// binary; each server still receives its own copy of every file.
package lsptest

import (
	"go.trai.ch/syster/internal/engine/stdlib"
	"go.trai.ch/syster/internal/lsp"
)

// NewServer returns a quiet server with an empty workspace.
func NewServer() *lsp.Server {
	return lsp.NewServer(lsp.Config{Verbose: false})
}

// NewServerWithStdlib returns a quiet server whose workspace is seeded from
// the shared standard library cache.
func NewServerWithStdlib() *lsp.Server {
	s := NewServer()
	stdlib.Seed(s.Workspace(), CachedStdlib())
	return s
}

// CachedStdlib returns the shared standard library corpus, parsing it on
// first use.
func CachedStdlib() stdlib.Snapshot {
	return stdlib.Shared().Get()
}

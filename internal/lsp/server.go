// Package lsp holds the language server session: one workspace plus the
// collaborators needed to load files into it.
package lsp

import (
	"io"

	"go.trai.ch/syster/internal/adapters/logger"
	"go.trai.ch/syster/internal/adapters/parser"
	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/syster/internal/core/ports"
	"go.trai.ch/zerr"
)

// Config configures a Server. Zero values select the default logger and parser.
type Config struct {
	// Verbose enables debug logging.
	Verbose bool
	// Transport is the client connection. It may be nil for in-process use.
	Transport io.ReadWriteCloser
	Logger    ports.Logger
	Parser    ports.Parser
}

// verboseSetter is implemented by loggers whose level can be raised.
type verboseSetter interface {
	SetVerbose(enable bool)
}

// Server is a single language server session. It owns exactly one workspace
// and is not safe for concurrent use.
type Server struct {
	workspace *domain.Workspace
	transport io.ReadWriteCloser
	logger    ports.Logger
	parser    ports.Parser
}

// NewServer creates a Server with an empty workspace.
func NewServer(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = logger.New()
	}
	if vs, ok := log.(verboseSetter); ok && cfg.Verbose {
		vs.SetVerbose(true)
	}

	p := cfg.Parser
	if p == nil {
		p = parser.New()
	}

	return &Server{
		workspace: domain.NewWorkspace(),
		transport: cfg.Transport,
		logger:    log,
		parser:    p,
	}
}

// Workspace returns the session workspace for direct mutation.
func (s *Server) Workspace() *domain.Workspace {
	return s.workspace
}

// LoadFile parses the file at path and stores it in the workspace,
// replacing any earlier version.
func (s *Server) LoadFile(path string) error {
	file, err := s.parser.LoadAndParse(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load file into workspace")
	}

	s.workspace.AddFile(path, file)
	s.logger.Debug("loaded file", "path", path, "elements", len(file.Elements))
	return nil
}

// UnloadFile removes path from the workspace and reports whether it was present.
func (s *Server) UnloadFile(path string) bool {
	return s.workspace.RemoveFile(path)
}

// Lookup resolves a qualified element name against the workspace.
func (s *Server) Lookup(qualifiedName string) (domain.Element, string, bool) {
	return s.workspace.Lookup(qualifiedName)
}

// Close releases the transport, if any.
func (s *Server) Close() error {
	if s.transport == nil {
		return nil
	}
	if err := s.transport.Close(); err != nil {
		return zerr.Wrap(err, "failed to close transport")
	}
	return nil
}

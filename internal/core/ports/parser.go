package ports

import "go.trai.ch/syster/internal/core/domain"

// Parser loads and parses a single model source file.
//
//go:generate go run go.uber.org/mock/mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// LoadAndParse reads the file at path and returns its parsed outline.
	LoadAndParse(path string) (*domain.SyntaxFile, error)
}

package ports

import "go.trai.ch/syster/internal/core/domain"

// Hasher computes content hashes for source files and parsed corpora.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash hashes the raw content of the file at path.
	ComputeFileHash(path string) (uint64, error)
	// ComputeCorpusHash returns a fingerprint over the paths and content hashes of entries.
	ComputeCorpusHash(entries []domain.FileEntry) string
}

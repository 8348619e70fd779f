package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/syster/internal/core/domain"
	"go.trai.ch/syster/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for source files and parsed corpora.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeCorpusHash returns a fingerprint over entry paths and content hashes.
// The result depends on entry order.
func (h *Hasher) ComputeCorpusHash(entries []domain.FileEntry) string {
	hasher := xxhash.New()
	var buf [8]byte

	for _, entry := range entries {
		_, _ = hasher.WriteString(entry.Path)
		_, _ = hasher.Write([]byte{0}) // Separator

		var sum uint64
		if entry.File != nil {
			sum = entry.File.ContentHash
		}
		binary.LittleEndian.PutUint64(buf[:], sum)
		_, _ = hasher.Write(buf[:])
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

package source

import (
	"context"
	"fmt"
	"os"

	"github.com/example/storefinder/internal/core/record"
	"github.com/example/storefinder/internal/ports/secondary"
)

// FileSource reads the store list from a local JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads and decodes the file.
func (s *FileSource) Fetch(ctx context.Context) ([]record.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, record.NewLoadError(record.LoadErrorIO, s.path, err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, record.NewLoadError(record.LoadErrorIO, s.path, fmt.Errorf("failed to open store file: %w", err))
	}
	defer f.Close()

	records, err := DecodeRecords(f, s.path)
	if err != nil {
		le := record.AsLoadError(err, s.path)
		if le.Kind == record.LoadErrorNetwork {
			le.Kind = record.LoadErrorIO
		}
		return nil, le
	}
	return records, nil
}

// Describe returns the file path.
func (s *FileSource) Describe() string {
	return s.path
}

// Ensure FileSource implements the interface.
var _ secondary.RecordSource = (*FileSource)(nil)

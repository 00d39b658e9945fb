package source

import (
	"context"
	"fmt"
	"os"

	"github.com/reignstats/reignstats/internal/monarch"
)

type fileSource struct {
	path string
}

// Load reads and decodes the dataset file. A missing or unreadable file is
// reported as ErrFetch.
func (s *fileSource) Load(ctx context.Context) ([]monarch.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open: %w", ErrFetch, err)
	}
	defer f.Close()

	return decode(f)
}

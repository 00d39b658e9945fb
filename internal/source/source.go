package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/reignstats/reignstats/internal/config"
	"github.com/reignstats/reignstats/internal/monarch"
)

var (
	// ErrFetch reports that the dataset could not be retrieved.
	ErrFetch = errors.New("fetch failed")

	// ErrDecode reports that the dataset is not a JSON array of records.
	ErrDecode = errors.New("decode failed")

	// ErrEmptyDataset reports a dataset with no records.
	ErrEmptyDataset = errors.New("dataset is empty")
)

// Source loads the monarch sequence in chronological order.
type Source interface {
	Load(ctx context.Context) ([]monarch.Record, error)
}

// New returns the Source described by cfg.
func New(cfg config.SourceConfig) (Source, error) {
	switch cfg.Type {
	case config.SourceHTTP, "":
		client, err := buildHTTPClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("source: build http client: %w", err)
		}
		return &httpSource{url: cfg.URL, client: client}, nil
	case config.SourceFile:
		return &fileSource{path: cfg.Path}, nil
	default:
		return nil, fmt.Errorf("source: unsupported type %q", cfg.Type)
	}
}

// Static is a Source backed by a fixed slice.
type Static []monarch.Record

// Load returns the slice unchanged.
func (s Static) Load(context.Context) ([]monarch.Record, error) {
	return s, nil
}

// decode reads a JSON array of records from r.
func decode(r io.Reader) ([]monarch.Record, error) {
	var recs []monarch.Record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(recs) == 0 {
		return nil, ErrEmptyDataset
	}
	return recs, nil
}

// Package source loads the monarch dataset.
//
// Source is the capability the CLI depends on; the analytics engine never sees
// where records came from. New(config.SourceConfig) returns:
//   - an HTTP source (http.go) that GETs the dataset URL with an optional
//     timeout, authentication and TLS settings
//   - a file source (file.go) that reads the same JSON from disk
//
// Static serves a fixed slice and exists for tests and embedding.
//
// Failures are classified with sentinel errors: ErrFetch for transport and
// HTTP status failures, ErrDecode for bodies that are not a JSON array of
// records, ErrEmptyDataset for a null or empty array. Callers use errors.Is.
package source

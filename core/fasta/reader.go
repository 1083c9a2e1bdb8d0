// core/fasta/reader.go
package fasta

import "context"

// StreamRecordsPathCtx opens path (plain, gzip, or "-" for stdin), scans
// FASTA, and emits complete records. Cancellation via ctx is honored
// promptly.
func StreamRecordsPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamRecordsCtx(ctx, rc, emit)
}

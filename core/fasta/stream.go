// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one parsed FASTA sequence. ID is the first whitespace-delimited
// token of the header; Seq is the raw concatenated sequence, not validated
// against any alphabet.
type Record struct {
	ID  string
	Seq []byte
}

// ErrDataBeforeHeader marks sequence data appearing before any '>' header.
// Such input must never reach a scan.
var ErrDataBeforeHeader = errors.New("fasta: sequence data before any header")

// StreamRecordsCtx parses FASTA from r and emits one Record per sequence.
// It is cancelable: it returns promptly when ctx is Done, even mid-record.
// emit may return a non-nil error to stop early; that error is returned.
func StreamRecordsCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id      string
		seq     = make([]byte, 0, 1<<20)
		started bool
	)

	flush := func() error {
		if !started {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if started {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
			}
			id = parseHeaderID(line[1:])
			started = true
			continue
		}
		if !started {
			return ErrDataBeforeHeader
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

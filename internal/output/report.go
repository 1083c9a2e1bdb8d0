// internal/output/report.go
package output

import (
	"fmt"
	"io"
	"strings"
)

// Report column names; keep as the single source of truth for header rows.
const (
	ColSequenceID = "Sequence_ID"
	ColTFBS       = "TFBS"
)

// NoneToken marks a sequence with zero occurrences on either strand.
const NoneToken = "None"

// Row is one report record: a sequence ID and its matched sites, forward
// strand first, in scan order.
type Row struct {
	SeqID string
	Sites []string
}

// Header returns the report header line for the given delimiter.
func Header(delim string) string {
	return ColSequenceID + delim + ColTFBS
}

// FormatRow renders one record without a trailing newline.
func FormatRow(r Row, delim string) string {
	if len(r.Sites) == 0 {
		return r.SeqID + delim + NoneToken
	}
	return r.SeqID + delim + strings.Join(r.Sites, delim)
}

// StreamRows consumes rows from a channel and prints them as they arrive.
func StreamRows(w io.Writer, in <-chan Row, delim string, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, Header(delim)); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRow(r, delim)); err != nil {
			return err
		}
	}
	return nil
}

// internal/writers/report.go
package writers

import (
	"io"

	"github.com/srikanth-srinvas/TFBSFinder/internal/output"
)

// StartReportWriter spins up a writer goroutine for report rows.
// Close the returned channel when done and read the final error from the
// second channel; a drained input channel guarantees the writer exited.
func StartReportWriter(out io.Writer, delim string, header bool, bufSize int) (chan<- output.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Row, bufSize)
	errCh := make(chan error, 1)

	go func() {
		err := output.StreamRows(out, in, delim, header)
		// Drain so producers never block after a write failure.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

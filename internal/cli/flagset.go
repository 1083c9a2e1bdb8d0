package cli

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/srikanth-srinvas/TFBSFinder/internal/version"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError. pflag's own
// error/usage printing is silenced; callers render usage via PrintUsage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	return fs
}

// PrintUsage writes the banner and flag defaults for fs to w.
func PrintUsage(w io.Writer, name, oneLiner string, fs *flag.FlagSet) {
	fmt.Fprintf(w,
		`%s: %s

Version: %s

Usage of %s:
`, name, oneLiner, version.Version, name)
	fmt.Fprint(w, fs.FlagUsages())
}

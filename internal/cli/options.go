// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// UsageLine is the one-line description shown in the finder's usage banner.
const UsageLine = "locate transcription-factor binding sites by IUPAC consensus"

// Delimiter names accepted by --delimiter.
const (
	DelimTab   = "tab"
	DelimComma = "comma"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Consensus string
	SeqFiles  []string

	// Run settings
	ConfigFile string
	Threads    int

	// Output
	Output    string
	Delimiter string
	Header    bool // true unless --no-header
	Quiet     bool

	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// A help request surfaces as flag.ErrHelp; the caller renders usage.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVarP(&opt.Consensus, "consensus", "c", "", "consensus motif in IUPAC notation [*]")
	fs.StringSliceVarP(&opt.SeqFiles, "sequences", "s", nil, "FASTA file(s) (repeatable or '-') [*]")

	fs.StringVar(&opt.ConfigFile, "config", "", "YAML run-settings file")
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	fs.StringVarP(&opt.Output, "output", "o", "-", "output file ('-' = stdout) [-]")
	fs.StringVar(&opt.Delimiter, "delimiter", DelimTab, "output field delimiter: tab | comma [tab]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress warnings on stderr [false]")

	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit [false]")
	fs.BoolVarP(&help, "help", "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if opt.Consensus == "" {
		return opt, errors.New("--consensus is required")
	}
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if _, err := Delim(opt.Delimiter); err != nil {
		return opt, err
	}
	return opt, nil
}

// Delim maps a delimiter name to its field separator.
func Delim(name string) (string, error) {
	switch name {
	case DelimTab:
		return "\t", nil
	case DelimComma:
		return ",", nil
	default:
		return "", fmt.Errorf("invalid --delimiter %q (use tab or comma)", name)
	}
}

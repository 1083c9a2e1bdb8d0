// internal/reportcli/options.go
package reportcli

import (
	"errors"

	flag "github.com/spf13/pflag"

	"github.com/srikanth-srinvas/TFBSFinder/internal/cli"
)

// UsageLine is the one-line description shown in the report tool's usage banner.
const UsageLine = "summarize a TFBS result file (site frequencies, no-hit count)"

// Options holds all CLI flags for the aggregation tool.
type Options struct {
	Input      string
	Summary    string
	Delimiter  string
	Top        int
	ConfigFile string

	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVarP(&opt.Input, "input", "i", "", "result file from tfbsfinder ('-' = stdin) [*]")
	fs.StringVar(&opt.Summary, "summary", "-", "summary file ('-' = stdout only) [-]")
	fs.StringVar(&opt.Delimiter, "delimiter", cli.DelimTab, "field delimiter of the result file: tab | comma [tab]")
	fs.IntVar(&opt.Top, "top", 10, "number of most common sites to report [10]")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML run-settings file")

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

	if opt.Input == "" {
		return opt, errors.New("--input is required")
	}
	if opt.Top < 1 {
		return opt, errors.New("--top must be >= 1")
	}
	if _, err := cli.Delim(opt.Delimiter); err != nil {
		return opt, err
	}
	return opt, nil
}

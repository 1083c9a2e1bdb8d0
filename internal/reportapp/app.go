// internal/reportapp/app.go
package reportapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/srikanth-srinvas/TFBSFinder/internal/cli"
	"github.com/srikanth-srinvas/TFBSFinder/internal/config"
	"github.com/srikanth-srinvas/TFBSFinder/internal/report"
	"github.com/srikanth-srinvas/TFBSFinder/internal/reportcli"
	"github.com/srikanth-srinvas/TFBSFinder/internal/version"
	"github.com/srikanth-srinvas/TFBSFinder/internal/writers"
)

func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("tfbs-report")

	if len(argv) == 0 {
		_, _ = reportcli.ParseArgs(fs, []string{"--help"}) // register flags for usage
		cli.PrintUsage(outw, "tfbs-report", reportcli.UsageLine, fs)
		return 0
	}

	opts, err := reportcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(outw, "tfbs-report", reportcli.UsageLine, fs)
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		cli.PrintUsage(outw, "tfbs-report", reportcli.UsageLine, fs)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "tfbs-report version %s\n", version.Version)
		return 0
	}

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		if !fs.Changed("delimiter") {
			opts.Delimiter = cfg.Delimiter
		}
		if !fs.Changed("top") {
			opts.Top = cfg.Top
		}
	}

	delim, err := cli.Delim(opts.Delimiter)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	var in io.ReadCloser
	if opts.Input == "-" {
		in = io.NopCloser(os.Stdin)
	} else {
		in, err = os.Open(opts.Input)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
	}
	sum, err := report.Analyze(in, delim, opts.Top)
	_ = in.Close()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	if opts.Summary != "-" {
		fh, err := os.Create(opts.Summary)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		bw := bufio.NewWriter(fh)
		werr := report.WriteSummary(bw, sum)
		if werr == nil {
			werr = bw.Flush()
		}
		if cerr := fh.Close(); cerr != nil && werr == nil {
			werr = cerr
		}
		if werr != nil {
			_, _ = fmt.Fprintln(stderr, werr)
			return 3
		}
	}

	if err := report.WriteSummary(outw, sum); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

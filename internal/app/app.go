// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	flag "github.com/spf13/pflag"

	"tfbs-core/motif"

	"github.com/srikanth-srinvas/TFBSFinder/internal/cli"
	"github.com/srikanth-srinvas/TFBSFinder/internal/cmdutil"
	"github.com/srikanth-srinvas/TFBSFinder/internal/config"
	"github.com/srikanth-srinvas/TFBSFinder/internal/output"
	"github.com/srikanth-srinvas/TFBSFinder/internal/pipeline"
	"github.com/srikanth-srinvas/TFBSFinder/internal/version"
	"github.com/srikanth-srinvas/TFBSFinder/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("tfbsfinder")

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"--help"}) // register flags for usage
		cli.PrintUsage(outw, "tfbsfinder", cli.UsageLine, fs)
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(outw, "tfbsfinder", cli.UsageLine, fs)
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		cli.PrintUsage(outw, "tfbsfinder", cli.UsageLine, fs)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "tfbsfinder version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	// Layer settings: defaults < config file < explicit flags.
	cfg := config.Default()
	if opts.ConfigFile != "" {
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}
	if !fs.Changed("output") {
		opts.Output = cfg.Output
	}
	if !fs.Changed("delimiter") {
		opts.Delimiter = cfg.Delimiter
	}
	if !fs.Changed("threads") {
		opts.Threads = cfg.Threads
	}

	delim, err := cli.Delim(opts.Delimiter)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	// The consensus is validated and compiled exactly once; the pattern is
	// immutable and shared by every worker.
	pat, err := motif.Compile(opts.Consensus)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	threads := opts.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}

	dst := io.Writer(outw)
	var closeOut func() error
	if opts.Output != "-" {
		fh, err := os.Create(opts.Output)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		bw := bufio.NewWriter(fh)
		dst = bw
		closeOut = func() error {
			if err := bw.Flush(); err != nil {
				_ = fh.Close()
				return err
			}
			return fh.Close()
		}
	}

	rows, errCh := writers.StartReportWriter(dst, delim, opts.Header, 64)

	sequences := 0
	perr := pipeline.ForEachSequence(parent, pipeline.Config{Threads: threads}, opts.SeqFiles, pat,
		func(r pipeline.Result) error {
			sites := make([]string, len(r.Sites))
			for i, occ := range r.Sites {
				sites[i] = occ.Site
			}
			rows <- output.Row{SeqID: r.SeqID, Sites: sites}
			sequences++
			return nil
		})
	close(rows)
	werr := <-errCh

	if perr != nil {
		_, _ = fmt.Fprintln(stderr, perr)
		return 1
	}
	if writers.IsBrokenPipe(werr) {
		return 0
	}
	if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if closeOut != nil {
		if err := closeOut(); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if sequences == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no sequences parsed from input")
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

// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"tfbs-core/fasta"
	"tfbs-core/motif"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Result is the per-sequence scan outcome: every occurrence on the forward
// strand followed by every occurrence on the reverse complement.
type Result struct {
	SeqID string
	Sites []motif.Occurrence
}

// ForEachSequence streams FASTA records from seqFiles through a worker pool
// that scans both strands with pat, and calls visit once per sequence in
// input order. The pattern is immutable and shared by all workers.
// It returns the first error encountered (including context cancellation).
func ForEachSequence(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	pat motif.Pattern,
	visit func(Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		idx int
		rec fasta.Record
	}
	type indexed struct {
		idx int
		res Result
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan indexed, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					res := Result{
						SeqID: j.rec.ID,
						Sites: motif.FindAllStrands(j.rec.Seq, pat),
					}
					select {
					case results <- indexed{idx: j.idx, res: res}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: re-emits results in input order regardless of which worker
	// finished first.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		next := 0
		pending := make(map[int]Result, cfg.Threads*2)
		for r := range results {
			if cerr != nil {
				continue
			}
			pending[r.idx] = r.res
			for {
				res, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(res); err != nil && cerr == nil {
					cerr = err
				}
			}
		}
	}()

	// Feed work. A parse error (including malformed FASTA) aborts the run;
	// for data-before-header it fires before any record of that file has
	// reached a worker.
	var ferr error
	idx := 0
feed:
	for _, fa := range seqFiles {
		err := fasta.StreamRecordsPathCtx(ctx, fa, func(rec fasta.Record) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- job{idx: idx, rec: rec}:
				idx++
				return nil
			}
		})
		if err != nil {
			ferr = err
			break feed
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if ferr != nil {
		return ferr
	}
	return cerr
}

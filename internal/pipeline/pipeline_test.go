// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tfbs-core/fasta"
	"tfbs-core/motif"
)

func writeFasta(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.fa")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fasta: %v", err)
	}
	return path
}

func TestForEachSequenceScansBothStrands(t *testing.T) {
	fa := writeFasta(t, ">s1\nATGGGAAATTCCGGGAAATTCC\n>s2\nATGGTTCC\n")
	pat, err := motif.Compile("GGGRNWYYCC")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	var got []Result
	err = ForEachSequence(context.Background(), Config{Threads: 1}, []string{fa}, pat,
		func(r Result) error {
			got = append(got, r)
			return nil
		})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].SeqID != "s1" || len(got[0].Sites) != 2 {
		t.Errorf("s1 = %+v, want 2 sites", got[0])
	}
	if got[1].SeqID != "s2" || len(got[1].Sites) != 0 {
		t.Errorf("s2 = %+v, want no sites", got[1])
	}
}

func TestForEachSequenceInputOrderUnderConcurrency(t *testing.T) {
	var sb strings.Builder
	const n = 200
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, ">seq%04d\nACGTACGT\n", i)
	}
	fa := writeFasta(t, sb.String())
	pat, err := motif.Compile("ACGT")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	var ids []string
	err = ForEachSequence(context.Background(), Config{Threads: 8}, []string{fa}, pat,
		func(r Result) error {
			ids = append(ids, r.SeqID)
			return nil
		})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	if len(ids) != n {
		t.Fatalf("got %d results, want %d", len(ids), n)
	}
	for i, id := range ids {
		if want := fmt.Sprintf("seq%04d", i); id != want {
			t.Fatalf("result %d = %s, want %s (order not preserved)", i, id, want)
		}
	}
}

func TestForEachSequenceMultipleFiles(t *testing.T) {
	fa1 := writeFasta(t, ">a\nACGT\n")
	fa2 := writeFasta(t, ">b\nACGT\n")
	pat, _ := motif.Compile("ACGT")

	var ids []string
	err := ForEachSequence(context.Background(), Config{Threads: 2}, []string{fa1, fa2}, pat,
		func(r Result) error {
			ids = append(ids, r.SeqID)
			return nil
		})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("ids = %v, want [a b]", ids)
	}
}

func TestForEachSequenceMalformedFasta(t *testing.T) {
	fa := writeFasta(t, "ACGT\n>late\nACGT\n")
	pat, _ := motif.Compile("ACGT")

	visited := 0
	err := ForEachSequence(context.Background(), Config{Threads: 2}, []string{fa}, pat,
		func(Result) error {
			visited++
			return nil
		})
	if !errors.Is(err, fasta.ErrDataBeforeHeader) {
		t.Fatalf("err = %v, want ErrDataBeforeHeader", err)
	}
	if visited != 0 {
		t.Fatalf("malformed file reached the scanner: %d visits", visited)
	}
}

func TestForEachSequenceMissingFile(t *testing.T) {
	pat, _ := motif.Compile("ACGT")
	err := ForEachSequence(context.Background(), Config{Threads: 1},
		[]string{filepath.Join(t.TempDir(), "absent.fa")}, pat,
		func(Result) error { return nil })
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestForEachSequenceVisitErrorPropagates(t *testing.T) {
	fa := writeFasta(t, ">a\nACGT\n>b\nACGT\n")
	pat, _ := motif.Compile("ACGT")
	boom := errors.New("boom")

	err := ForEachSequence(context.Background(), Config{Threads: 1}, []string{fa}, pat,
		func(Result) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestForEachSequenceCancel(t *testing.T) {
	fa := writeFasta(t, ">a\nACGT\n")
	pat, _ := motif.Compile("ACGT")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ForEachSequence(ctx, Config{Threads: 2}, []string{fa}, pat,
		func(Result) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

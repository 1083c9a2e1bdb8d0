// core/motif/scan_test.go
package motif

import "testing"

func mustCompile(t *testing.T, consensus string) Pattern {
	t.Helper()
	p, err := Compile(consensus)
	if err != nil {
		t.Fatalf("compile %q: %v", consensus, err)
	}
	return p
}

func offsets(occs []Occurrence) []int {
	out := make([]int, len(occs))
	for i, o := range occs {
		out[i] = o.Pos
	}
	return out
}

func TestFindAllExact(t *testing.T) {
	p := mustCompile(t, "ACGT")

	hits := FindAll([]byte("ACGT"), p)
	if len(hits) != 1 || hits[0].Pos != 0 || hits[0].Site != "ACGT" {
		t.Fatalf("FindAll(ACGT) = %+v, want one hit at 0", hits)
	}
	if hits := FindAll([]byte("ACGA"), p); len(hits) != 0 {
		t.Fatalf("FindAll(ACGA) = %+v, want none", hits)
	}
}

func TestFindAllDegenerateEveryPosition(t *testing.T) {
	p := mustCompile(t, "R") // A or G
	hits := FindAll([]byte("AGAG"), p)
	want := []int{0, 1, 2, 3}
	got := offsets(hits)
	if len(got) != len(want) {
		t.Fatalf("FindAll(AGAG, R) offsets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FindAll(AGAG, R) offsets = %v, want %v", got, want)
		}
	}
}

func TestFindAllOverlapping(t *testing.T) {
	p := mustCompile(t, "AA")
	hits := FindAll([]byte("AAAA"), p)
	want := []int{0, 1, 2}
	got := offsets(hits)
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("overlap enumeration = %v, want %v", got, want)
	}
}

func TestFindAllShortAndEmpty(t *testing.T) {
	p := mustCompile(t, "ACGT")
	if hits := FindAll([]byte("ACG"), p); hits != nil {
		t.Errorf("short sequence: got %+v, want nil", hits)
	}
	if hits := FindAll(nil, p); hits != nil {
		t.Errorf("empty sequence: got %+v, want nil", hits)
	}
}

func TestFindAllNonACGTNeverMatches(t *testing.T) {
	p := mustCompile(t, "NN")
	if hits := FindAll([]byte("ANGN"), p); len(hits) != 0 {
		t.Fatalf("windows containing sequence N matched N consensus: %+v", hits)
	}
	// Only the window free of ambiguity bytes matches.
	hits := FindAll([]byte("ANGA"), p)
	if len(hits) != 1 || hits[0].Pos != 2 || hits[0].Site != "GA" {
		t.Fatalf("FindAll(ANGA, NN) = %+v, want a single hit at offset 2", hits)
	}
}

func TestFindAllOrdered(t *testing.T) {
	p := mustCompile(t, "AC")
	hits := FindAll([]byte("ACGACGAC"), p)
	last := -1
	for _, h := range hits {
		if h.Pos <= last {
			t.Fatalf("offsets not strictly ascending: %v", offsets(hits))
		}
		last = h.Pos
	}
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3", len(hits))
	}
}

// Recorded end-to-end scenario: GGGAAATTCC appears twice on the forward
// strand of this template and nowhere on the reverse complement.
func TestFindAllStrandsScenario(t *testing.T) {
	p := mustCompile(t, "GGGRNWYYCC")
	seq := []byte("ATGGGAAATTCCGGGAAATTCC")

	both := FindAllStrands(seq, p)
	if len(both) != 2 {
		t.Fatalf("combined hits = %d, want 2 (%+v)", len(both), both)
	}
	wantPos := []int{2, 12}
	for i, h := range both {
		if h.Strand != Forward {
			t.Errorf("hit %d strand = %v, want +", i, h.Strand)
		}
		if h.Pos != wantPos[i] {
			t.Errorf("hit %d pos = %d, want %d", i, h.Pos, wantPos[i])
		}
		if h.Site != "GGGAAATTCC" {
			t.Errorf("hit %d site = %q, want GGGAAATTCC", i, h.Site)
		}
	}
}

// A motif hit on the opposite strand is reported with offsets relative to
// the reverse-complement string.
func TestFindAllStrandsReverseHit(t *testing.T) {
	p := mustCompile(t, "GGGG")
	seq := []byte("ATCCCCTA") // rc = TAGGGGAT

	both := FindAllStrands(seq, p)
	if len(both) != 1 {
		t.Fatalf("combined hits = %d, want 1 (%+v)", len(both), both)
	}
	h := both[0]
	if h.Strand != ReverseComplement || h.Pos != 2 || h.Site != "GGGG" {
		t.Fatalf("hit = %+v, want pos 2 on - strand", h)
	}
}

func TestFindAllStrandsNoMatch(t *testing.T) {
	p := mustCompile(t, "GGGRNWYYCC")
	if hits := FindAllStrands([]byte("ATGGTTCC"), p); len(hits) != 0 {
		t.Fatalf("expected no hits, got %+v", hits)
	}
}

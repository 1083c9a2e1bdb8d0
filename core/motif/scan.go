// core/motif/scan.go
package motif

import "tfbs-core/dna"

/* ----------------------- types --------------------- */

// Strand identifies which strand an occurrence was found on.
type Strand byte

const (
	Forward Strand = iota
	ReverseComplement
)

func (s Strand) String() string {
	if s == ReverseComplement {
		return "-"
	}
	return "+"
}

// Occurrence is one motif hit: 0-based start offset within the scanned
// strand and the matched window.
type Occurrence struct {
	Pos    int
	Site   string
	Strand Strand
}

/* --------------------------- FindAll -------------------------- */

// FindAll returns every occurrence of p in seq, ordered by start offset.
// Overlapping occurrences are all reported: a hit at offset s never
// suppresses a hit at s+1. Short or empty sequences yield an empty result,
// never an error.
func FindAll(seq []byte, p Pattern) []Occurrence {
	k := p.Len()
	if k == 0 || len(seq) < k {
		return nil
	}
	out := make([]Occurrence, 0, 8)
	end := len(seq) - k
	for pos := 0; pos <= end; pos++ {
		if p.MatchAt(seq, pos) {
			out = append(out, Occurrence{Pos: pos, Site: string(seq[pos : pos+k]), Strand: Forward})
		}
	}
	return out
}

// FindAllStrands scans seq and its reverse complement with the same pattern
// and concatenates the two lists, forward hits first. Offsets of
// reverse-complement hits are relative to the reverse-complement string,
// not the original sequence.
func FindAllStrands(seq []byte, p Pattern) []Occurrence {
	out := FindAll(seq, p)
	for _, occ := range FindAll(dna.RevComp(seq), p) {
		occ.Strand = ReverseComplement
		out = append(out, occ)
	}
	return out
}

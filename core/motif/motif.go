// core/motif/motif.go
package motif

import "fmt"

// InvalidCodeError reports the first consensus character that is not one of
// the 15 IUPAC codes, with its 0-based position.
type InvalidCodeError struct {
	Code byte
	Pos  int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid IUPAC code %q at position %d; allowed: A C G T R Y S W K M B D H V N",
		e.Code, e.Pos)
}

// Pattern is a compiled consensus: one acceptance mask per position.
// It is immutable after Compile and safe to share across goroutines.
type Pattern struct {
	masks     []byte
	consensus string
}

// Len returns the window width the pattern matches.
func (p Pattern) Len() int { return len(p.masks) }

// Consensus returns the source consensus string.
func (p Pattern) Consensus() string { return p.consensus }

// Validate returns nil iff every character of consensus is an IUPAC code.
// An empty consensus is rejected.
func Validate(consensus string) error {
	if consensus == "" {
		return fmt.Errorf("empty consensus")
	}
	for i := 0; i < len(consensus); i++ {
		if iupacMask[consensus[i]] == 0 {
			return &InvalidCodeError{Code: consensus[i], Pos: i}
		}
	}
	return nil
}

// Compile validates consensus and builds its per-position acceptance masks.
// Deterministic and side-effect free: equal inputs yield equal patterns.
func Compile(consensus string) (Pattern, error) {
	if err := Validate(consensus); err != nil {
		return Pattern{}, err
	}
	masks := make([]byte, len(consensus))
	for i := 0; i < len(consensus); i++ {
		masks[i] = iupacMask[consensus[i]]
	}
	return Pattern{masks: masks, consensus: consensus}, nil
}

// MatchAt tests the window seq[pos:pos+Len()) against the pattern.
// Out-of-range windows never match.
func (p Pattern) MatchAt(seq []byte, pos int) bool {
	if pos < 0 || pos+len(p.masks) > len(seq) {
		return false
	}
	for i, m := range p.masks {
		if !maskAccepts(m, seq[pos+i]) {
			return false
		}
	}
	return true
}

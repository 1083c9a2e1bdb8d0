// core/motif/iupac.go
package motif

/* -------------------------- IUPAC lookup table -------------------------- */

// iupacMask maps each of the 15 IUPAC codes to its base set.
// bit0=A bit1=C bit2=G bit3=T; zero means "not an IUPAC code".
var iupacMask [256]byte

func init() {
	set := func(c byte, bits byte) { iupacMask[c] = bits }
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any (consensus side only)
}

// BaseMatch returns true if consensus code `c` accepts sequence base `g`.
//
// A sequence base outside {A,C,G,T} is a HARD mismatch — ambiguity codes in
// raw sequence data are never expanded, so an 'N' block in a genome cannot
// produce spurious sites.
func BaseMatch(g, c byte) bool {
	return maskAccepts(iupacMask[c], g)
}

func maskAccepts(mask, g byte) bool {
	if g != 'A' && g != 'C' && g != 'G' && g != 'T' {
		return false
	}
	return mask&iupacMask[g] != 0
}

package mnemonic

import (
	"sort"
	"unicode/utf8"
)

//go:generate go run ../../scripts/kdtablegen -o kdtable_data.go

// TableNormalizer performs NFKD from static tables generated from
// golang.org/x/text/unicode/norm (Unicode kdUnicodeVersion): full
// compatibility decomposition followed by canonical reordering of combining
// marks. Unlike x/text it does not insert U+034F into runs of more than 30
// combining marks.
type TableNormalizer struct{}

type kdMapping struct {
	r rune
	d string
}

type kdClassRange struct {
	lo, hi rune
	ccc    uint8
}

// Hangul syllable composition constants (Unicode chapter 3.12).
const (
	hangulSBase  = 0xAC00
	hangulLBase  = 0x1100
	hangulVBase  = 0x1161
	hangulTBase  = 0x11A7
	hangulTCount = 28
	hangulNCount = 21 * hangulTCount
	hangulSCount = 19 * hangulNCount
)

// Normalize implements Normalizer.
func (TableNormalizer) Normalize(s string) string {
	out := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = appendDecomposed(out, r)
	}
	reorderMarks(out)
	return string(out)
}

func appendDecomposed(out []rune, r rune) []rune {
	switch {
	case r < 0xA0:
		return append(out, r)
	case r >= hangulSBase && r < hangulSBase+hangulSCount:
		s := r - hangulSBase
		out = append(out, hangulLBase+s/hangulNCount, hangulVBase+(s%hangulNCount)/hangulTCount)
		if t := s % hangulTCount; t != 0 {
			out = append(out, hangulTBase+t)
		}
		return out
	}
	d, ok := decomposition(r)
	if !ok {
		return append(out, r)
	}
	for _, dr := range d {
		out = append(out, dr)
	}
	return out
}

// decomposition returns the full NFKD expansion of r, if it has one.
func decomposition(r rune) (string, bool) {
	i := sort.Search(len(kdDecompositions), func(i int) bool {
		return kdDecompositions[i].r >= r
	})
	if i < len(kdDecompositions) && kdDecompositions[i].r == r {
		return kdDecompositions[i].d, true
	}
	return "", false
}

// combiningClass returns the canonical combining class of r. Starters are 0.
func combiningClass(r rune) uint8 {
	if r < 0x300 {
		return 0
	}
	i := sort.Search(len(kdCombiningClasses), func(i int) bool {
		return kdCombiningClasses[i].hi >= r
	})
	if i < len(kdCombiningClasses) && kdCombiningClasses[i].lo <= r {
		return kdCombiningClasses[i].ccc
	}
	return 0
}

// reorderMarks stably sorts each run of combining marks by combining class.
func reorderMarks(rs []rune) {
	for i := 1; i < len(rs); i++ {
		c := combiningClass(rs[i])
		if c == 0 {
			continue
		}
		for j := i; j > 0 && combiningClass(rs[j-1]) > c; j-- {
			rs[j-1], rs[j] = rs[j], rs[j-1]
		}
	}
}

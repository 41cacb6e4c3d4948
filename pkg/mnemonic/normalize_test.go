package mnemonic

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

type identityNormalizer struct{}

func (identityNormalizer) Normalize(s string) string { return s }

type panicNormalizer struct{}

func (panicNormalizer) Normalize(string) string { panic("no unicode tables") }

func TestSelectNormalizer(t *testing.T) {
	tests := []struct {
		name      string
		host      Normalizer
		wantTable bool
	}{
		{"trustworthy host", HostNormalizer{}, false},
		{"host without decomposition", identityNormalizer{}, true},
		{"host that panics", panicNormalizer{}, true},
		{"no host", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, isTable := selectNormalizer(tt.host).(TableNormalizer)
			if isTable != tt.wantTable {
				t.Errorf("selectNormalizer() table = %v, want %v", isTable, tt.wantTable)
			}
		})
	}
}

func TestNormalize_Probe(t *testing.T) {
	if got := Normalize(probeComposed); got != probeDecomposed {
		t.Errorf("Normalize(%+q) = %+q, want %+q", probeComposed, got, probeDecomposed)
	}
}

func TestTableNormalizer_MatchesHost(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii 123",
		"\u3042\u304a\u305e\u3089",
		"\u30ac\u30d0\u30f4\u30a1\u30d1\u30d0\u30b0\u309e",
		"\u3071\u3074\u3077\u307a\u307d",
		"\u00e9l\u00e8ve \u00e7a \u00f1and\u00fa \u00fcber",
		"\u010d\u00ed\u0161lo \u0159e\u017eu \u016fl",
		"\ud55c\uad6d\uc5b4 \uac00\ub098\ub2e4",
		"\uff34\uff32\uff25\uff3a\uff2f\uff32",
		"word\u3000word\u00a0word\u2003word",
		"\ufb01nal \u2122 \u2026 \u00bd",
		"\u309b\u309c",
		"\u334d\u3350 \u32ff \u2474",
		"\u334d\u30ac\u30d0\u30f4\u30a1\u3071\u3070\u3050\u309e\u3061\u3062\u5341\u4eba\u5341\u8272",
		"e\u0301\u0327",
		"\u0229\u0301",
		"\u1e09",
		"q\u0307\u0323",
		"\U0001d400\U0001e030",
	}
	host := HostNormalizer{}
	table := TableNormalizer{}
	for _, in := range inputs {
		if got, want := table.Normalize(in), host.Normalize(in); got != want {
			t.Errorf("TableNormalizer(%+q) = %+q, want %+q", in, got, want)
		}
	}
}

func TestTableNormalizer_MatchesHostForCatalogs(t *testing.T) {
	table := TableNormalizer{}
	for _, wl := range catalog {
		for i := 0; i < wl.Len(); i++ {
			w := wl.Word(i)
			if got, want := table.Normalize(w), norm.NFKD.String(w); got != want {
				t.Fatalf("%s word %d: TableNormalizer(%+q) = %+q, want %+q", wl, i, w, got, want)
			}
		}
	}
}

func TestTableNormalizer_Hangul(t *testing.T) {
	// HAN decomposes into HIEUH, A and NIEUN.
	if got, want := (TableNormalizer{}).Normalize("\ud55c"), "\u1112\u1161\u11ab"; got != want {
		t.Errorf("Normalize(HAN) = %+q, want %+q", got, want)
	}
	// GA has no trailing consonant.
	if got, want := (TableNormalizer{}).Normalize("\uac00"), "\u1100\u1161"; got != want {
		t.Errorf("Normalize(GA) = %+q, want %+q", got, want)
	}
}

func TestTableNormalizer_MatchesHostForAllRunes(t *testing.T) {
	if norm.Version != kdUnicodeVersion {
		t.Skipf("tables are Unicode %s, x/text is %s", kdUnicodeVersion, norm.Version)
	}
	table := TableNormalizer{}
	mismatches := 0
	for r := rune(0); r <= 0x10FFFF; r++ {
		if r >= 0xD800 && r < 0xE000 {
			continue
		}
		s := string(r)
		if got, want := table.Normalize(s), norm.NFKD.String(s); got != want {
			t.Errorf("TableNormalizer(%U) = %+q, want %+q", r, got, want)
			if mismatches++; mismatches > 20 {
				t.Fatal("too many mismatches")
			}
		}
	}
}

func TestTableNormalizer_ReordersMarks(t *testing.T) {
	// Cedilla (class 202) sorts before acute (class 230).
	if got, want := (TableNormalizer{}).Normalize("e\u0301\u0327"), "e\u0327\u0301"; got != want {
		t.Errorf("Normalize() = %+q, want %+q", got, want)
	}
	// Equal classes keep their order.
	if got, want := (TableNormalizer{}).Normalize("a\u0301\u0300"), "a\u0301\u0300"; got != want {
		t.Errorf("Normalize() = %+q, want %+q", got, want)
	}
}

package mnemonic

import (
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Normalizer converts a string into its compatibility-decomposed (NFKD) form.
type Normalizer interface {
	Normalize(s string) string
}

// HostNormalizer delegates to golang.org/x/text.
type HostNormalizer struct{}

// Normalize implements Normalizer.
func (HostNormalizer) Normalize(s string) string {
	return norm.NFKD.String(s)
}

// Probe strings: a composed kana and its decomposed form with a combining
// voiced sound mark. A trustworthy NFKD maps the first onto the second.
const (
	probeComposed   = "\u3042\u304a\u305e\u3089"
	probeDecomposed = "\u3042\u304a\u305d\u3099\u3089"
)

var (
	normalizerOnce sync.Once
	normalizer     Normalizer
)

// Normalize returns the NFKD form of s using the process-wide normalizer.
// The host primitive is probed once; if it fails the probe the static
// decomposition table is used for the rest of the process.
func Normalize(s string) string {
	return processNormalizer().Normalize(s)
}

func processNormalizer() Normalizer {
	normalizerOnce.Do(func() {
		normalizer = selectNormalizer(HostNormalizer{})
	})
	return normalizer
}

// selectNormalizer returns host when it passes the probe, otherwise the
// table normalizer.
func selectNormalizer(host Normalizer) Normalizer {
	if host != nil && supportsNFKD(host) {
		return host
	}
	return TableNormalizer{}
}

func supportsNFKD(n Normalizer) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return n.Normalize(probeComposed) == probeDecomposed
}

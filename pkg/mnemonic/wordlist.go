package mnemonic

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// WordListSize is the number of words in every catalog.
const WordListSize = 1 << bitsPerWord

// Language identifies a word list catalog.
type Language string

const (
	LanguageEnglish            Language = "english"
	LanguageJapanese           Language = "japanese"
	LanguageSpanish            Language = "spanish"
	LanguageChineseSimplified  Language = "chinese_simplified"
	LanguageChineseTraditional Language = "chinese_traditional"
	LanguageFrench             Language = "french"
	LanguageItalian            Language = "italian"
	LanguageCzech              Language = "czech"
	LanguageKorean             Language = "korean"
)

// WordList is an immutable, ordered catalog of 2048 words. The position of a
// word is its index; catalogs must never be reordered.
type WordList struct {
	language Language
	space    rune
	words    []string

	indexOnce sync.Once
	index     map[string]int
}

// Catalogs, in auto-detection priority order. Word data comes from the
// go-bip39 module, which pins the published BIP-39 lists.
var (
	English            = newWordList(LanguageEnglish, ' ', wordlists.English)
	Japanese           = newWordList(LanguageJapanese, '\u3000', wordlists.Japanese)
	Spanish            = newWordList(LanguageSpanish, ' ', wordlists.Spanish)
	ChineseSimplified  = newWordList(LanguageChineseSimplified, ' ', wordlists.ChineseSimplified)
	ChineseTraditional = newWordList(LanguageChineseTraditional, ' ', wordlists.ChineseTraditional)
	French             = newWordList(LanguageFrench, ' ', wordlists.French)
	Italian            = newWordList(LanguageItalian, ' ', wordlists.Italian)
	Czech              = newWordList(LanguageCzech, ' ', wordlists.Czech)
	Korean             = newWordList(LanguageKorean, ' ', wordlists.Korean)
)

var catalog = []*WordList{
	English, Japanese, Spanish, ChineseSimplified, ChineseTraditional,
	French, Italian, Czech, Korean,
}

func newWordList(lang Language, space rune, words []string) *WordList {
	if len(words) != WordListSize {
		panic(fmt.Sprintf("mnemonic: %s word list has %d words, want %d", lang, len(words), WordListSize))
	}
	return &WordList{
		language: lang,
		space:    space,
		words:    append([]string(nil), words...),
	}
}

// Languages returns the supported languages in detection priority order.
func Languages() []Language {
	out := make([]Language, len(catalog))
	for i, wl := range catalog {
		out[i] = wl.language
	}
	return out
}

// WordListFor returns the catalog for lang.
func WordListFor(lang Language) (*WordList, error) {
	for _, wl := range catalog {
		if wl.language == lang {
			return wl, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
}

// AutoDetect returns the first catalog that contains every word of phrase.
func AutoDetect(phrase string) (*WordList, bool) {
	return detectWords(strings.Fields(phrase))
}

func detectWords(words []string) (*WordList, bool) {
	if len(words) == 0 {
		return nil, false
	}
	for _, wl := range catalog {
		if wl.containsAll(words) {
			return wl, true
		}
	}
	return nil, false
}

// Language returns the catalog's language tag.
func (wl *WordList) Language() Language { return wl.language }

// Space returns the separator used to join words into a sentence.
func (wl *WordList) Space() rune { return wl.space }

// Len returns the number of words in the catalog.
func (wl *WordList) Len() int { return len(wl.words) }

// Word returns the word at index i. Indices outside [0, 2047] are a
// programming error and panic.
func (wl *WordList) Word(i int) string {
	if i < 0 || i >= len(wl.words) {
		panic(fmt.Sprintf("mnemonic: word index %d out of range", i))
	}
	return wl.words[i]
}

// Index returns the position of word. Lookups compare NFKD forms, so composed
// and decomposed spellings resolve to the same index.
func (wl *WordList) Index(word string) (int, bool) {
	wl.indexOnce.Do(wl.buildIndex)
	i, ok := wl.index[Normalize(word)]
	return i, ok
}

func (wl *WordList) buildIndex() {
	wl.index = make(map[string]int, len(wl.words))
	for i, w := range wl.words {
		wl.index[Normalize(w)] = i
	}
}

func (wl *WordList) containsAll(words []string) bool {
	for _, w := range words {
		if _, ok := wl.Index(w); !ok {
			return false
		}
	}
	return true
}

// ToIndices resolves each word to its index.
func (wl *WordList) ToIndices(words []string) ([]int, error) {
	indices := make([]int, len(words))
	for i, w := range words {
		idx, ok := wl.Index(w)
		if !ok {
			return nil, &WordError{Word: w, Position: i, Language: wl.language}
		}
		indices[i] = idx
	}
	return indices, nil
}

// GetWords maps indices back to words.
func (wl *WordList) GetWords(indices []int) []string {
	words := make([]string, len(indices))
	for i, idx := range indices {
		words[i] = wl.Word(idx)
	}
	return words
}

// GetSentence joins the words for indices with the catalog's separator.
func (wl *WordList) GetSentence(indices []int) string {
	return strings.Join(wl.GetWords(indices), string(wl.space))
}

// ToBits expands indices into a flat MSB-first bit sequence, 11 bits each.
func (wl *WordList) ToBits(indices []int) []bool {
	return indicesToBits(indices)
}

func (wl *WordList) String() string {
	return string(wl.language)
}

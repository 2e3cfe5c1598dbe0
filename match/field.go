package match

import (
	"unicode"
)

// Boundary bonuses, indexed by the kind of position a run starts at.
const (
	bonusStart      = 1.0 // first rune of the field
	bonusSeparator  = 0.9 // right after whitespace or punctuation
	bonusTransition = 0.7 // lower-to-upper case or letter/digit change
)

// PreparedField is the precomputed representation of one searchable field.
// It is immutable after PrepareField returns and safe for concurrent use.
type PreparedField struct {
	text   string
	folded []rune
	bonus  []float64
	mask   uint64
}

// PrepareField folds text and precomputes its word boundaries and rune mask.
func PrepareField(text string) *PreparedField {
	original := []rune(text)
	f := &PreparedField{
		text:   text,
		folded: make([]rune, len(original)),
		bonus:  make([]float64, len(original)),
	}

	for i, r := range original {
		f.folded[i] = unicode.ToLower(r)
		f.mask |= runeBit(f.folded[i])
		f.bonus[i] = boundaryBonus(original, i)
	}

	return f
}

// Text returns the unfolded field text.
func (f *PreparedField) Text() string {
	return f.text
}

// Len returns the field length in runes.
func (f *PreparedField) Len() int {
	return len(f.folded)
}

func boundaryBonus(runes []rune, i int) float64 {
	if i == 0 {
		return bonusStart
	}
	prev, cur := runes[i-1], runes[i]
	if !isWordRune(prev) {
		if isWordRune(cur) {
			return bonusSeparator
		}
		return 0
	}
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return bonusTransition
	}
	if unicode.IsLetter(prev) && unicode.IsDigit(cur) || unicode.IsDigit(prev) && unicode.IsLetter(cur) {
		return bonusTransition
	}
	return 0
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// runeBit maps a folded rune onto one of 64 presence buckets.
// ASCII letters and digits get a bucket each; everything else shares a few.
// A query can only match a field whose mask covers the query's mask.
func runeBit(r rune) uint64 {
	switch {
	case r >= 'a' && r <= 'z':
		return 1 << uint(r-'a')
	case r >= '0' && r <= '9':
		return 1 << uint(26+r-'0')
	case r == ' ':
		return 1 << 36
	case r < unicode.MaxASCII:
		return 1 << 37
	default:
		return 1 << (38 + uint(r)%26)
	}
}

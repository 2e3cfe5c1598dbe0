package match

// Result is the outcome of matching a query against one field: either no
// match, or a score in [0, 1] together with the matched rune positions.
// The zero value is NoMatch.
type Result struct {
	matched   bool
	score     float64
	positions []int
}

// NoMatch is the result for a field that does not contain the query as a
// subsequence.
var NoMatch = Result{}

// Scored builds a matching result. value is clamped to [0, 1].
func Scored(value float64, positions []int) Result {
	if value < 0 {
		value = 0
	}
	if value > MaxScore {
		value = MaxScore
	}
	return Result{matched: true, score: value, positions: positions}
}

// Matched reports whether the field matched.
func (r Result) Matched() bool {
	return r.matched
}

// Value returns the score and whether the field matched.
// The score is meaningless when ok is false.
func (r Result) Value() (score float64, ok bool) {
	return r.score, r.matched
}

// Positions returns the rune positions in the field that the query consumed.
func (r Result) Positions() []int {
	return r.positions
}

// Better reports whether r outranks other. Any match outranks NoMatch.
func (r Result) Better(other Result) bool {
	if !r.matched {
		return false
	}
	if !other.matched {
		return true
	}
	return r.score > other.score
}

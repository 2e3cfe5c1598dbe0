package match

import (
	"math"
	"slices"
	"unicode"
)

// MaxScore is the score of an exact case-insensitive match.
const MaxScore = 1.0

// Weights of the three scoring signals. They sum to MaxScore, and only an
// exact match can max out coverage, so partial matches stay below MaxScore.
const (
	weightContiguity = 0.35
	weightAlignment  = 0.40
	weightCoverage   = 0.25
)

// Query is a case-folded query ready to be matched against many fields.
type Query struct {
	text   string
	folded []rune
	mask   uint64
}

// PrepareQuery folds a query once so it can be scored against many fields.
func PrepareQuery(query string) Query {
	q := Query{text: query, folded: []rune(query)}
	for i, r := range q.folded {
		q.folded[i] = unicode.ToLower(r)
		q.mask |= runeBit(q.folded[i])
	}
	return q
}

// Text returns the query as given.
func (q Query) Text() string {
	return q.text
}

// Empty reports whether the query has no runes.
func (q Query) Empty() bool {
	return len(q.folded) == 0
}

// Score matches query against field.
func Score(query string, field *PreparedField) Result {
	return PrepareQuery(query).Match(field)
}

// Match scores the query against a prepared field.
//
// An alignment's score depends only on its first and last positions, its
// number of runs and the sum of the boundary bonuses where runs start. For
// every start position of the first query rune, an aligner finds the largest
// bonus sum for each end position and run count, so the result is the best
// scoring alignment of the query in the field.
func (q Query) Match(field *PreparedField) Result {
	if field == nil {
		return NoMatch
	}
	m, n := len(q.folded), field.Len()
	if m == 0 || m > n {
		return NoMatch
	}
	if q.mask&^field.mask != 0 {
		return NoMatch
	}
	if m == n {
		if slices.Equal(q.folded, field.folded) {
			return Scored(MaxScore, sequence(n))
		}
		return NoMatch
	}

	best := NoMatch
	var a *aligner
	forward := make([]int, m)
	for start := 0; start <= n-m; start++ {
		if field.folded[start] != q.folded[0] {
			continue
		}
		if !q.alignForward(field, start, forward) {
			// A later start scans a suffix of this one and cannot succeed.
			break
		}
		if a == nil {
			a = newAligner(q.folded, field)
		}
		if r := a.align(start); r.Better(best) {
			best = r
		}
	}

	return best
}

// alignForward places each query rune at its earliest position after the
// previous one, starting from start.
func (q Query) alignForward(field *PreparedField, start int, positions []int) bool {
	qi := 0
	for fi := start; fi < len(field.folded) && qi < len(q.folded); fi++ {
		if field.folded[fi] == q.folded[qi] {
			positions[qi] = fi
			qi++
		}
	}
	return qi == len(q.folded)
}

// aligner holds the tables for the best-alignment search of one query in one
// field. Cell (qi, fi, runs) is the largest bonus sum of an alignment that
// places query rune qi at field position fi using runs runs, and from holds
// the field position of query rune qi-1 in that alignment.
type aligner struct {
	query  []rune
	field  *PreparedField
	width  int
	sums   [][]float64
	from   [][]int
	runMax []float64
	runAt  []int
}

func newAligner(query []rune, field *PreparedField) *aligner {
	m, n := len(query), field.Len()
	a := &aligner{
		query:  query,
		field:  field,
		width:  m + 1,
		sums:   make([][]float64, m),
		from:   make([][]int, m),
		runMax: make([]float64, m+1),
		runAt:  make([]int, m+1),
	}
	for qi := range m {
		a.sums[qi] = make([]float64, n*a.width)
		a.from[qi] = make([]int, n*a.width)
	}
	return a
}

var unreachable = math.Inf(-1)

// align returns the best alignment whose first rune is at start.
// The caller guarantees that one exists.
func (a *aligner) align(start int) Result {
	m, n, w := len(a.query), a.field.Len(), a.width
	for qi := range a.sums {
		fill(a.sums[qi], unreachable)
	}
	a.sums[0][start*w+1] = a.field.bonus[start]

	for qi := 1; qi < m; qi++ {
		prev, cur, from := a.sums[qi-1], a.sums[qi], a.from[qi]
		fill(a.runMax, unreachable)
		for fi := start + qi; fi <= n-m+qi; fi++ {
			// runMax[r] covers every position of rune qi-1 at least two
			// before fi, i.e. the ones that start a new run at fi.
			if j := fi - 2; j >= start {
				for r := 1; r <= qi; r++ {
					if v := prev[j*w+r]; v > a.runMax[r] {
						a.runMax[r], a.runAt[r] = v, j
					}
				}
			}
			if a.field.folded[fi] != a.query[qi] {
				continue
			}
			for r := 1; r <= qi+1; r++ {
				best, at := prev[(fi-1)*w+r], fi-1
				if r > 1 && a.runMax[r-1] != unreachable {
					if v := a.runMax[r-1] + a.field.bonus[fi]; v > best {
						best, at = v, a.runAt[r-1]
					}
				}
				cur[fi*w+r], from[fi*w+r] = best, at
			}
		}
	}

	last := a.sums[m-1]
	bestScore, bestEnd, bestRuns := -1.0, -1, 0
	for fi := start + m - 1; fi < n; fi++ {
		for r := 1; r <= m; r++ {
			sum := last[fi*w+r]
			if sum == unreachable {
				continue
			}
			if v := a.field.combine(m, start, fi, r, sum); v > bestScore {
				bestScore, bestEnd, bestRuns = v, fi, r
			}
		}
	}

	positions := a.trace(bestEnd, bestRuns)
	return Scored(a.field.score(positions), positions)
}

// trace walks the from table back from the last query rune.
func (a *aligner) trace(end, runs int) []int {
	positions := make([]int, len(a.query))
	fi, r := end, runs
	for qi := len(a.query) - 1; qi > 0; qi-- {
		positions[qi] = fi
		prev := a.from[qi][fi*a.width+r]
		if prev != fi-1 {
			r--
		}
		fi = prev
	}
	positions[0] = fi
	return positions
}

func fill(s []float64, v float64) {
	for i := range s {
		s[i] = v
	}
}

// score combines contiguity, alignment and coverage for one alignment.
func (f *PreparedField) score(positions []int) float64 {
	m := len(positions)
	runs := 1
	bonus := f.bonus[positions[0]]
	for i := 1; i < m; i++ {
		if positions[i] != positions[i-1]+1 {
			runs++
			bonus += f.bonus[positions[i]]
		}
	}
	return f.combine(m, positions[0], positions[m-1], runs, bonus)
}

// combine scores an alignment of m runes spanning first..last in runs runs
// whose run starts carry a total boundary bonus of bonus.
func (f *PreparedField) combine(m, first, last, runs int, bonus float64) float64 {
	alignment := bonus / float64(runs)

	contiguity := 1.0
	if m > 1 {
		adjacent := float64(m-runs) / float64(m-1)
		tightness := float64(m) / float64(last-first+1)
		contiguity = (adjacent + tightness) / 2
	}

	coverage := float64(m) / float64(len(f.folded))

	return weightContiguity*contiguity + weightAlignment*alignment + weightCoverage*coverage
}

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

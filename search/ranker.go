package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/poiesic/dairyreg/core"
	"github.com/poiesic/dairyreg/index"
	"github.com/poiesic/dairyreg/match"
)

// Search ranks the index against query and returns at most limit
// establishments, best first. An invalid threshold or limit falls back to its
// default. An empty or all-whitespace query returns no results.
func Search(idx *index.Index, query string, threshold float64, limit int) []*core.Establishment {
	return records(SearchResults(idx, query, threshold, limit))
}

// SearchResults is Search, but keeps the score and the field that explains
// each result.
func SearchResults(idx *index.Index, query string, threshold float64, limit int) []*core.SearchResult {
	cfg := NewConfig(WithThreshold(threshold), WithLimit(limit))
	q, ok := prepareQuery(query)
	if !ok || idx == nil {
		return []*core.SearchResult{}
	}
	slots := make([]scored, idx.Len())
	scoreRange(q, idx.Records(), slots)
	return collect(idx, slots, cfg, &noopMonitor{})
}

// scored is the best field result of one record.
type scored struct {
	field  core.Field
	result match.Result
}

func prepareQuery(query string) (match.Query, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return match.Query{}, false
	}
	return match.PrepareQuery(query), true
}

// scoreRecord reduces a record's field scores to the best one.
// Fields are visited in declaration order; only a strictly better score
// replaces the current best, so the first field wins ties.
func scoreRecord(q match.Query, rec *index.PreparedRecord) scored {
	best := scored{result: match.NoMatch}
	for _, f := range core.SearchableFields {
		field := rec.Field(f)
		if field == nil {
			continue
		}
		if r := q.Match(field); r.Better(best.result) {
			best = scored{field: f, result: r}
		}
	}
	return best
}

// scoreRange scores records into the matching slots.
func scoreRange(q match.Query, records []index.PreparedRecord, slots []scored) {
	for i := range records {
		slots[i] = scoreRecord(q, &records[i])
	}
}

// collect filters scored slots by threshold, orders them and applies the limit.
func collect(idx *index.Index, slots []scored, cfg *Config, monitor SearchMonitor) []*core.SearchResult {
	results := make([]*core.SearchResult, 0)
	for i, s := range slots {
		score, ok := s.result.Value()
		if !ok {
			continue
		}
		rec := idx.Record(i).Record
		if score < cfg.Threshold {
			monitor.BelowThreshold(rec, s.field, score)
			continue
		}
		result := &core.SearchResult{
			Record:  rec,
			Score:   score,
			Field:   s.field,
			Matches: s.result.Positions(),
		}
		monitor.Candidate(result)
		results = append(results, result)
	}

	// Stable, so equal scores keep catalog order once an exact regNo hit
	// has been put ahead of other exact matches.
	slices.SortStableFunc(results, func(a, b *core.SearchResult) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(exactRegNo(b), exactRegNo(a))
	})

	if len(results) > cfg.Limit {
		results = results[:cfg.Limit]
	}
	return results
}

// exactRegNo ranks a result whose registration number equals the query.
func exactRegNo(r *core.SearchResult) int {
	if r.Field == core.FieldRegNo && r.Score == match.MaxScore {
		return 1
	}
	return 0
}

func records(results []*core.SearchResult) []*core.Establishment {
	out := make([]*core.Establishment, len(results))
	for i, r := range results {
		out[i] = r.Record
	}
	return out
}

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		positions []int
		want      string
	}{
		{"no positions", "Acme Dairy", nil, "Acme Dairy"},
		{"single run", "Acme Dairy", []int{0, 1, 2, 3}, "[Acme] Dairy"},
		{"two runs", "Acme Dairy", []int{0, 1, 5}, "[Ac]me [D]airy"},
		{"run at end", "Acme Dairy", []int{8, 9}, "Acme Dai[ry]"},
		{"multibyte runes", "Acmé Laiterie", []int{3, 5}, "Acm[é] [L]aiterie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.text, tt.positions, "[", "]"))
		})
	}
}

func TestHighlight_MatchResult(t *testing.T) {
	field := PrepareField("Acme Dairy")
	r := Score("acme", field)
	assert.Equal(t, "<Acme> Dairy", Highlight(field.Text(), r.Positions(), "<", ">"))
}

package main

import (
	"fmt"
	"io"

	"github.com/poiesic/dairyreg/core"
	"github.com/poiesic/dairyreg/match"
)

const noMatchMessage = "No establishment matched"

func renderResults(w io.Writer, results []*core.SearchResult, explain bool) {
	if len(results) == 0 {
		fmt.Fprintln(w, noMatchMessage)
		return
	}
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderCard(w, result.Record)
		if explain {
			renderExplanation(w, result)
		}
	}
}

// renderCard prints an establishment the way the registry lists it.
func renderCard(w io.Writer, e *core.Establishment) {
	fmt.Fprintln(w, e.Name)
	if e.HasADBA() {
		fmt.Fprintf(w, "  Also known as: %s\n", e.ADBA)
	}
	fmt.Fprintf(w, "  Registration #: %s\n", e.RegNo)
	if e.StreetAddr != "" {
		fmt.Fprintf(w, "  %s\n", e.StreetAddr)
	}
	fmt.Fprintf(w, "  %s, %s %s\n", e.City, e.Province, e.PostalCode)
	if e.Telephone != "" {
		fmt.Fprintf(w, "  %s\n", e.Telephone)
	}
}

func renderExplanation(w io.Writer, result *core.SearchResult) {
	value, _ := result.Record.FieldValue(result.Field)
	fmt.Fprintf(w, "  [%.3f] %s: %s\n", result.Score, result.Field, match.Highlight(value, result.Matches, "[", "]"))
}

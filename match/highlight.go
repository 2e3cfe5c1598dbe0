package match

import "strings"

// Highlight wraps each run of matched runes in text with openMark and closeMark.
// positions are rune offsets as returned by Result.Positions, in ascending order.
func Highlight(text string, positions []int, openMark, closeMark string) string {
	if len(positions) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(positions)*(len(openMark)+len(closeMark)))

	next, inRun := 0, false
	i := 0
	for _, r := range text {
		hit := next < len(positions) && positions[next] == i
		if hit && !inRun {
			b.WriteString(openMark)
			inRun = true
		} else if !hit && inRun {
			b.WriteString(closeMark)
			inRun = false
		}
		b.WriteRune(r)
		if hit {
			next++
		}
		i++
	}
	if inRun {
		b.WriteString(closeMark)
	}

	return b.String()
}

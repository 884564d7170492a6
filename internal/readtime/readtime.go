// Package readtime estimates how long a markdown body takes to read.
package readtime

import (
	"fmt"
	"strings"
)

// WordsPerMinute is the assumed reading speed for prose.
const WordsPerMinute = 200

// Stat holds a reading-time estimate.
type Stat struct {
	Words   int
	Minutes int
	Text    string
}

// Estimate counts whitespace-separated words and rounds the duration up to
// whole minutes. Non-empty text always reports at least one minute.
func Estimate(text string) Stat {
	words := len(strings.Fields(text))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if words > 0 && minutes < 1 {
		minutes = 1
	}

	return Stat{
		Words:   words,
		Minutes: minutes,
		Text:    fmt.Sprintf("%d min read", minutes),
	}
}

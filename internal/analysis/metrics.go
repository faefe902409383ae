// Package analysis computes the post-interview performance report:
// quantitative pace/clarity metrics over the transcript plus one LLM
// pass for tone and qualitative feedback.
package analysis

import (
	"math"
	"regexp"
	"strings"

	"github.com/prepmate/interviewd/internal/database"
)

// minutesPerAnswer estimates spoken duration from answer count.
const minutesPerAnswer = 0.75

// fillerPattern matches the filler vocabulary as whole words,
// case-insensitively.
var fillerPattern = regexp.MustCompile(`(?i)\b(um|uh|er|ah|like|okay|right|so|you know)\b`)

// Metrics are the quantitative half of a report.
type Metrics struct {
	Pace         int
	ClarityScore int
}

// ConcatUserText joins the user-authored message texts with single
// spaces, in transcript order.
func ConcatUserText(messages []database.Message) string {
	var parts []string
	for _, m := range messages {
		if m.IsUser {
			parts = append(parts, m.Text)
		}
	}
	return strings.Join(parts, " ")
}

// WordCount counts whitespace-delimited non-empty tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CountFillers counts filler-word occurrences in text.
func CountFillers(text string) int {
	return len(fillerPattern.FindAllString(text, -1))
}

// Pace estimates words per minute. The duration floor only applies
// when there are no answers at all, so a single 7-word answer rates
// ~9 wpm rather than 7.
func Pace(wordCount, userMessageCount int) int {
	duration := minutesPerAnswer * float64(userMessageCount)
	if duration == 0 {
		duration = 1
	}
	return int(math.Round(float64(wordCount) / duration))
}

// Clarity scores filler density on a 0-100 scale. No words means
// nothing to penalize.
func Clarity(fillerCount, wordCount int) int {
	if wordCount == 0 {
		return 100
	}
	score := 100 - (float64(fillerCount)/float64(wordCount))*500
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}

// ComputeMetrics derives pace and clarity from a transcript.
func ComputeMetrics(messages []database.Message) Metrics {
	userCount := 0
	for _, m := range messages {
		if m.IsUser {
			userCount++
		}
	}
	if userCount == 0 {
		return Metrics{Pace: 0, ClarityScore: 100}
	}

	text := ConcatUserText(messages)
	words := WordCount(text)
	return Metrics{
		Pace:         Pace(words, userCount),
		ClarityScore: Clarity(CountFillers(text), words),
	}
}

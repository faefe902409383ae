package analysis

import (
	"fmt"
	"strings"

	"github.com/prepmate/interviewd/internal/database"
)

// feedbackDelimiter separates the tone label from the free-text
// feedback in the model's response.
const feedbackDelimiter = "###"

// Fallbacks used when the model response cannot be parsed.
const (
	DefaultSentiment = "Neutral"
	DefaultFeedback  = "Could not generate feedback."
)

// NoResponsesFeedback is reported when the transcript holds no user
// answers to analyze.
const NoResponsesFeedback = "No user responses to analyze."

const feedbackPromptTemplate = `As an expert interview coach, analyze the following interview transcript. Provide a summary of the candidate's performance, focusing on their strengths and areas for improvement. Also, infer the candidate's primary tone (e.g., Confident, Hesitant, Professional, Casual, Nervous). Format the response as: [TONE]###[FEEDBACK]. For example: "Confident###The candidate demonstrated strong technical knowledge...".

TRANSCRIPT:
%s`

// FeedbackPrompt renders the coaching prompt for a transcript.
func FeedbackPrompt(messages []database.Message) string {
	return fmt.Sprintf(feedbackPromptTemplate, RenderTranscript(messages))
}

// RenderTranscript formats messages with their speaker roles, in order.
func RenderTranscript(messages []database.Message) string {
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		role := "Interviewer"
		if m.IsUser {
			role = "Candidate"
		}
		fmt.Fprintf(&b, "%s: %s", role, m.Text)
	}
	return b.String()
}

// ParseFeedback splits a model response on the first delimiter into
// (sentiment, feedback). A response without the delimiter is treated as
// unrecognized and both fields fall back to safe defaults; this never
// fails.
func ParseFeedback(raw string) (sentiment, feedback string) {
	idx := strings.Index(raw, feedbackDelimiter)
	if idx < 0 {
		return DefaultSentiment, DefaultFeedback
	}

	sentiment = strings.TrimSpace(raw[:idx])
	feedback = strings.TrimSpace(raw[idx+len(feedbackDelimiter):])
	if sentiment == "" {
		sentiment = DefaultSentiment
	}
	if feedback == "" {
		feedback = DefaultFeedback
	}
	return sentiment, feedback
}

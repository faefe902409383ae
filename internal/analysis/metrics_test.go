package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepmate/interviewd/internal/database"
)

func userMsg(text string) database.Message {
	return database.Message{Text: text, IsUser: true}
}

func assistantMsg(text string) database.Message {
	return database.Message{Text: text, IsUser: false}
}

func TestCountFillers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"single words", "um so I think uh went well", 3},
		{"case insensitive", "UM Okay RIGHT", 3},
		{"multiword filler", "you know it was fine, you know", 2},
		{"whole word only", "resolution consorted likely", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountFillers(tt.text))
		})
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t"))
	assert.Equal(t, 3, WordCount(" a  b\tc "))
}

func TestPace(t *testing.T) {
	// 7 words over one 0.75-minute answer is ~9 wpm.
	assert.Equal(t, 9, Pace(7, 1))
	assert.Equal(t, 100, Pace(150, 2))
	assert.Equal(t, 0, Pace(0, 0))
}

func TestClarity(t *testing.T) {
	// 3 fillers in 7 words overwhelms the score.
	assert.Equal(t, 0, Clarity(3, 7))
	assert.Equal(t, 100, Clarity(0, 50))
	assert.Equal(t, 90, Clarity(1, 50))
	assert.Equal(t, 100, Clarity(0, 0))
}

func TestComputeMetrics_FillerHeavyAnswer(t *testing.T) {
	messages := []database.Message{
		assistantMsg("Tell me how the project went."),
		userMsg("um so I think uh went well"),
	}

	m := ComputeMetrics(messages)
	assert.Equal(t, 9, m.Pace)
	assert.Equal(t, 0, m.ClarityScore)
}

func TestComputeMetrics_NoUserMessages(t *testing.T) {
	m := ComputeMetrics([]database.Message{assistantMsg("First question?")})
	assert.Equal(t, 0, m.Pace)
	assert.Equal(t, 100, m.ClarityScore)
}

func TestConcatUserText(t *testing.T) {
	messages := []database.Message{
		userMsg("first answer"),
		assistantMsg("next question"),
		userMsg("second answer"),
	}
	assert.Equal(t, "first answer second answer", ConcatUserText(messages))
}

func TestParseFeedback(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantSentiment string
		wantFeedback  string
	}{
		{
			"well formed",
			"Confident###The candidate demonstrated strong knowledge.",
			"Confident",
			"The candidate demonstrated strong knowledge.",
		},
		{
			"extra whitespace",
			"  Hesitant  ###  Needs more concrete examples.  ",
			"Hesitant",
			"Needs more concrete examples.",
		},
		{
			"delimiter absent",
			"The candidate did fine overall.",
			DefaultSentiment,
			DefaultFeedback,
		},
		{
			"empty sides",
			"###",
			DefaultSentiment,
			DefaultFeedback,
		},
		{
			"splits on first delimiter only",
			"Professional###Good ### usage of examples.",
			"Professional",
			"Good ### usage of examples.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentiment, feedback := ParseFeedback(tt.raw)
			assert.Equal(t, tt.wantSentiment, sentiment)
			assert.Equal(t, tt.wantFeedback, feedback)
		})
	}
}

func TestRenderTranscript(t *testing.T) {
	messages := []database.Message{
		assistantMsg("Why Go?"),
		userMsg("Because of the concurrency model."),
	}
	got := RenderTranscript(messages)
	assert.Equal(t, "Interviewer: Why Go?\nCandidate: Because of the concurrency model.", got)
}

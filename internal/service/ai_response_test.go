package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanModelOutput_StripsFencesAndControlChars(t *testing.T) {
	raw := "```json\n[{\"question\": \"Q1?\", \"answer\": \"A1\"}]\n```"
	cleaned := cleanModelOutput(raw)
	assert.Equal(t, `[{"question": "Q1?", "answer": "A1"}]`, cleaned)

	withControl := "{\"title\": \"T\"}\x00\x1f"
	assert.Equal(t, `{"title": "T"}`, cleanModelOutput(withControl))
}

func TestParseQuestionAnswerList_StrictJSON(t *testing.T) {
	raw := `[{"question": "What is Go?", "answer": "A language."}]`
	pairs := parseQuestionAnswerList(raw)
	require.Len(t, pairs, 1)
	assert.Equal(t, "What is Go?", pairs[0].Question)
	assert.Equal(t, "A language.", pairs[0].Answer)
}

func TestParseQuestionAnswerList_FencedJSON(t *testing.T) {
	raw := "```json\n[{\"question\": \"Q?\", \"answer\": \"A\"}]\n```"
	pairs := parseQuestionAnswerList(raw)
	require.Len(t, pairs, 1)
	assert.Equal(t, "Q?", pairs[0].Question)
}

func TestParseQuestionAnswerList_BracketedSubstring(t *testing.T) {
	raw := "Here are your interview questions:\n" +
		`[{"question": "Explain channels.", "answer": "They carry values."}]` +
		"\nGood luck!"
	pairs := parseQuestionAnswerList(raw)
	require.Len(t, pairs, 1)
	assert.Equal(t, "Explain channels.", pairs[0].Question)
	assert.Equal(t, "They carry values.", pairs[0].Answer)
}

func TestParseQuestionAnswerList_LineFallback(t *testing.T) {
	raw := "Here are some interview questions\n" +
		"short\n" +
		"What is dependency injection and why use it?\n" +
		"Describe how garbage collection works in Go.\n"
	pairs := parseQuestionAnswerList(raw)
	require.Len(t, pairs, 2)
	assert.Equal(t, "What is dependency injection and why use it?", pairs[0].Question)
	assert.Empty(t, pairs[0].Answer)
	assert.Equal(t, "Describe how garbage collection works in Go.", pairs[1].Question)
	assert.Empty(t, pairs[1].Answer)
}

func TestParseQuestionAnswerList_HardcodedFallback(t *testing.T) {
	// "not json" is also too short for the line filter, so the ladder
	// bottoms out at the fixed question set.
	pairs := parseQuestionAnswerList("not json")
	require.Len(t, pairs, 5)
	for _, pair := range pairs {
		assert.NotEmpty(t, pair.Question)
		assert.Empty(t, pair.Answer)
	}
	assert.Equal(t, "What is React?", pairs[0].Question)
}

func TestParseQuestionAnswerList_EmptyInput(t *testing.T) {
	pairs := parseQuestionAnswerList("")
	require.Len(t, pairs, 5)
}

func TestParseAnswerReview_StrictJSON(t *testing.T) {
	feedback, rating := parseAnswerReview(`{"feedback": "Solid answer.", "rating": 9}`)
	assert.Equal(t, "Solid answer.", feedback)
	assert.Equal(t, 9, rating)
}

func TestParseAnswerReview_FencedJSON(t *testing.T) {
	feedback, rating := parseAnswerReview("```json\n{\"feedback\": \"Good.\", \"rating\": 7}\n```")
	assert.Equal(t, "Good.", feedback)
	assert.Equal(t, 7, rating)
}

func TestParseAnswerReview_RegexFallbackInProse(t *testing.T) {
	raw := `Sure! Here is my evaluation: "feedback": "ok", "rating": 7 — hope that helps.`
	feedback, rating := parseAnswerReview(raw)
	assert.Equal(t, "ok", feedback)
	assert.Equal(t, 7, rating)
}

func TestParseAnswerReview_RawTextFallback(t *testing.T) {
	raw := "  The answer was fine overall.  "
	feedback, rating := parseAnswerReview(raw)
	assert.Equal(t, "The answer was fine overall.", feedback)
	assert.Equal(t, 0, rating)
}

func TestParseAnswerReview_MissingFeedbackFallsThrough(t *testing.T) {
	// Valid JSON but without a feedback field must not pass the strict rung.
	raw := `{"rating": 8}`
	feedback, rating := parseAnswerReview(raw)
	assert.Equal(t, raw, feedback)
	assert.Equal(t, 0, rating)
}

func TestParseAnswerReview_ClampsRating(t *testing.T) {
	_, rating := parseAnswerReview(`{"feedback": "x", "rating": 42}`)
	assert.Equal(t, 10, rating)
}

func TestNormalizeQuestionText(t *testing.T) {
	assert.Equal(t, "what is go?", normalizeQuestionText("  What is Go? "))
	assert.Equal(t, normalizeQuestionText("WHAT IS GO?"), normalizeQuestionText("what is go?  "))
}

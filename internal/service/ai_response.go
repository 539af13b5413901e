package service

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/SDhinakar/Interview-Prep-Backend/internal/dto"
)

// Parsing helpers for raw model output. The generation endpoints never
// hard-fail on malformed text: each parser below is one rung of the
// fallback ladder, applied in order until something usable comes out.

var (
	fenceOpenRe    = regexp.MustCompile("^\\s*```(?:json)?\\s*")
	fenceCloseRe   = regexp.MustCompile("\\s*```\\s*$")
	controlCharsRe = regexp.MustCompile(`[\x00-\x1F\x7F-\x9F]`)
	bracketedRe    = regexp.MustCompile(`(?s)\[.*\]`)
	reviewRe       = regexp.MustCompile(`(?i)"feedback"\s*:\s*"([^"]+?)"\s*,\s*"rating"\s*:\s*(\d+)`)
)

// cleanModelOutput strips Markdown code fences and control characters
// that Gemini tends to wrap JSON payloads in.
func cleanModelOutput(raw string) string {
	cleaned := fenceOpenRe.ReplaceAllString(raw, "")
	cleaned = fenceCloseRe.ReplaceAllString(cleaned, "")
	cleaned = controlCharsRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// fallbackQuestionSet is the last rung of the ladder: a fixed set of five
// generic questions with empty answers.
func fallbackQuestionSet() []dto.QuestionAnswerDTO {
	return []dto.QuestionAnswerDTO{
		{Question: "What is React?"},
		{Question: "Explain the virtual DOM."},
		{Question: "What are hooks in React?"},
		{Question: "How do you manage state in React?"},
		{Question: "What is the purpose of keys in lists?"},
	}
}

// parseQuestionAnswerList turns raw model output into question/answer
// pairs. Ladder:
//  1. strict JSON parse of the cleaned text
//  2. JSON parse of the first [...] substring
//  3. line filter: keep lines longer than 10 chars that do not contain
//     the phrase "interview questions", answers left empty
//  4. fixed five-question fallback set
//
// It never returns an error or an empty slice.
func parseQuestionAnswerList(raw string) []dto.QuestionAnswerDTO {
	cleaned := cleanModelOutput(raw)

	var pairs []dto.QuestionAnswerDTO
	if err := json.Unmarshal([]byte(cleaned), &pairs); err == nil && len(pairs) > 0 {
		return pairs
	}

	if match := bracketedRe.FindString(cleaned); match != "" {
		if err := json.Unmarshal([]byte(match), &pairs); err == nil && len(pairs) > 0 {
			return pairs
		}
	}

	if fromLines := questionsFromLines(cleaned); len(fromLines) > 0 {
		return fromLines
	}

	return fallbackQuestionSet()
}

func questionsFromLines(text string) []dto.QuestionAnswerDTO {
	var pairs []dto.QuestionAnswerDTO
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 10 && !strings.Contains(trimmed, "interview questions") {
			pairs = append(pairs, dto.QuestionAnswerDTO{Question: trimmed})
		}
	}
	return pairs
}

// parseAnswerReview extracts feedback text and a numeric rating from the
// reviewer model's output. Strict JSON parse first, then a regex pull of
// the feedback/rating pair from surrounding prose, and finally the raw
// trimmed text with rating 0. The rating is clamped to 0..10.
func parseAnswerReview(raw string) (feedback string, rating int) {
	cleaned := cleanModelOutput(raw)

	var parsed struct {
		Feedback string `json:"feedback"`
		Rating   *int   `json:"rating"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil &&
		parsed.Feedback != "" && parsed.Rating != nil {
		return parsed.Feedback, clampRating(*parsed.Rating)
	}

	if match := reviewRe.FindStringSubmatch(cleaned); match != nil {
		value, err := strconv.Atoi(match[2])
		if err == nil {
			return match[1], clampRating(value)
		}
	}

	return strings.TrimSpace(raw), 0
}

func clampRating(rating int) int {
	if rating < 0 {
		return 0
	}
	if rating > 10 {
		return 10
	}
	return rating
}

// normalizeQuestionText is the identity under which two question texts
// count as duplicates within a session.
func normalizeQuestionText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

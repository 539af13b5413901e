package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SDhinakar/Interview-Prep-Backend/internal/dto"
	"github.com/rs/zerolog/log"
)

// GenerationService backs the authenticated AI endpoints. Unlike the
// mock-interview flow these surface upstream failures to the caller, so a
// malformed model reply becomes an error instead of fallback content.
type GenerationService interface {
	GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsDTO) ([]dto.QuestionAnswerDTO, error)
	GenerateExplanation(ctx context.Context, question string) (*dto.ExplanationDTO, error)
}

type generationService struct {
	llm LLMClient
}

func NewGenerationService(llm LLMClient) GenerationService {
	return &generationService{llm: llm}
}

// MissingFieldsError names every required field absent from a request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields"
}

// ValidateGenerateQuestions collects the names of all missing required
// fields rather than stopping at the first one.
func ValidateGenerateQuestions(req dto.GenerateQuestionsDTO) error {
	var missing []string
	if req.Role == "" {
		missing = append(missing, "role")
	}
	if req.Experience == "" {
		missing = append(missing, "experience")
	}
	if req.TopicToFocus == "" {
		missing = append(missing, "topicToFocus")
	}
	if req.NumberOfQuestions == 0 {
		missing = append(missing, "numberOfQuestions")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

func (s *generationService) GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsDTO) ([]dto.QuestionAnswerDTO, error) {
	if err := ValidateGenerateQuestions(req); err != nil {
		return nil, err
	}

	prompt := questionAnswerPrompt(req.Role, req.Experience, req.TopicToFocus, req.NumberOfQuestions)
	raw, err := s.llm.GenerateContent(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("role", req.Role).Msg("GenerateQuestions: model call failed")
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	cleaned := cleanModelOutput(raw)
	var pairs []dto.QuestionAnswerDTO
	if err := json.Unmarshal([]byte(cleaned), &pairs); err != nil {
		log.Error().Err(err).Str("raw", raw).Msg("GenerateQuestions: invalid response format from model")
		return nil, fmt.Errorf("invalid response format from AI: %w", err)
	}
	return pairs, nil
}

func (s *generationService) GenerateExplanation(ctx context.Context, question string) (*dto.ExplanationDTO, error) {
	prompt := conceptExplainPrompt(question)
	raw, err := s.llm.GenerateContent(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("GenerateExplanation: model call failed")
		return nil, fmt.Errorf("failed to generate explanation: %w", err)
	}

	cleaned := cleanModelOutput(raw)
	var explanation dto.ExplanationDTO
	if err := json.Unmarshal([]byte(cleaned), &explanation); err != nil {
		log.Error().Err(err).Str("raw", raw).Msg("GenerateExplanation: invalid response format from model")
		return nil, fmt.Errorf("invalid response format from AI: %w", err)
	}
	return &explanation, nil
}

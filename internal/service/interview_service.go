package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SDhinakar/Interview-Prep-Backend/internal/dto"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/model"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// defaultInterviewUser stands in when an answer submission carries no
// user identifier.
const defaultInterviewUser = "testUser123"

var errMissingAnswerFields = errors.New("missing fields")

// InterviewService runs the mock-interview flow: question set generation
// that never fails the request, and answer reviews that persist whatever
// feedback could be derived.
type InterviewService interface {
	GenerateMockQuestions(ctx context.Context, req dto.MockQuestionsDTO) *dto.MockQuestionsResponse
	SubmitAnswer(ctx context.Context, req dto.SubmitAnswerDTO) (*dto.UserAnswerResponseDTO, error)
	GetAnswers(mockIDRef, userID string) ([]dto.UserAnswerResponseDTO, error)
}

type interviewService struct {
	llm        LLMClient
	answerRepo repository.UserAnswerRepository
}

func NewInterviewService(llm LLMClient, answerRepo repository.UserAnswerRepository) InterviewService {
	return &interviewService{llm: llm, answerRepo: answerRepo}
}

// GenerateMockQuestions always produces a usable question set. A failed
// model call is treated the same as unparseable output: the text (empty
// in that case) is pushed down the fallback ladder.
func (s *interviewService) GenerateMockQuestions(ctx context.Context, req dto.MockQuestionsDTO) *dto.MockQuestionsResponse {
	prompt := mockQuestionsPrompt(req.Role, req.Topics, req.Experience)

	raw, err := s.llm.SendChatMessage(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("role", req.Role).Msg("GenerateMockQuestions: model call failed, falling back")
		raw = ""
	}

	pairs := parseQuestionAnswerList(raw)
	resp := &dto.MockQuestionsResponse{
		Questions:    make([]string, 0, len(pairs)),
		IdealAnswers: make([]string, 0, len(pairs)),
	}
	for _, pair := range pairs {
		resp.Questions = append(resp.Questions, pair.Question)
		resp.IdealAnswers = append(resp.IdealAnswers, pair.Answer)
	}
	return resp
}

// SubmitAnswer reviews the user's answer against the reference answer and
// persists the result. The record is written no matter how far the
// parsing fell back; only missing input fields or a datastore failure can
// fail the call.
func (s *interviewService) SubmitAnswer(ctx context.Context, req dto.SubmitAnswerDTO) (*dto.UserAnswerResponseDTO, error) {
	if req.MockIDRef == "" || req.Question == "" || req.UserAns == "" {
		return nil, errMissingAnswerFields
	}

	userID := req.UserID
	if userID == "" {
		userID = defaultInterviewUser
	}

	var feedback string
	var rating int
	raw, err := s.llm.SendChatMessage(ctx, answerReviewPrompt(req.UserAns, req.CorrectAns))
	if err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: model call failed, storing placeholder feedback")
		feedback, rating = "AI feedback is currently unavailable.", 0
	} else {
		feedback, rating = parseAnswerReview(raw)
	}

	answer := &model.UserAnswer{
		UserID:     userID,
		MockIDRef:  req.MockIDRef,
		Question:   req.Question,
		UserAns:    req.UserAns,
		CorrectAns: req.CorrectAns,
		Feedback:   feedback,
		Rating:     rating,
	}
	if err := s.answerRepo.Create(answer); err != nil {
		log.Error().Err(err).Str("mockIdRef", req.MockIDRef).Msg("SubmitAnswer: failed to store answer")
		return nil, fmt.Errorf("store answer: %w", err)
	}

	var resp dto.UserAnswerResponseDTO
	if err := copier.Copy(&resp, answer); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *interviewService) GetAnswers(mockIDRef, userID string) ([]dto.UserAnswerResponseDTO, error) {
	if userID == "" {
		userID = defaultInterviewUser
	}

	answers, err := s.answerRepo.FindBySessionAndUser(mockIDRef, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch answers: %w", err)
	}

	dtos := make([]dto.UserAnswerResponseDTO, 0, len(answers))
	for i := range answers {
		var resp dto.UserAnswerResponseDTO
		if err := copier.Copy(&resp, &answers[i]); err != nil {
			return nil, fmt.Errorf("error preparing response data: %w", err)
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

// IsMissingAnswerFields reports whether err is the missing-input error
// from SubmitAnswer.
func IsMissingAnswerFields(err error) bool {
	return errors.Is(err, errMissingAnswerFields)
}

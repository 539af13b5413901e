package service

import (
	"errors"
	"fmt"

	"github.com/SDhinakar/Interview-Prep-Backend/internal/apperr"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/dto"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/model"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	AddQuestionsToSession(userID uint, req dto.AddQuestionsDTO) (*dto.AddQuestionsResponseDTO, error)
	TogglePin(userID, questionID uint) (*dto.QuestionResponseDTO, error)
	UpdateNote(userID, questionID uint, note string) (*dto.QuestionResponseDTO, error)
}

type questionService struct {
	sessionRepo  repository.SessionRepository
	questionRepo repository.QuestionRepository
}

func NewQuestionService(sessionRepo repository.SessionRepository, questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{sessionRepo: sessionRepo, questionRepo: questionRepo}
}

// AddQuestionsToSession appends only genuinely new questions to a session
// the requester owns. Duplicate detection compares trimmed, lowercased
// texts against what is already stored; the database's unique expression
// index backs the same rule, so concurrent appends cannot slip a
// duplicate past the in-memory check.
func (s *questionService) AddQuestionsToSession(userID uint, req dto.AddQuestionsDTO) (*dto.AddQuestionsResponseDTO, error) {
	session, err := s.sessionRepo.FindByID(req.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrSessionNotFound
		}
		return nil, fmt.Errorf("fetch session: %w", err)
	}
	if session.UserID != userID {
		return nil, apperr.ErrNotOwner
	}

	existing, err := s.questionRepo.FindBySessionID(req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("fetch existing questions: %w", err)
	}
	existingNormalized := make(map[string]struct{}, len(existing))
	for _, q := range existing {
		existingNormalized[normalizeQuestionText(q.Question)] = struct{}{}
	}

	var toCreate []model.Question
	seen := make(map[string]struct{})
	for i, seed := range req.Questions {
		if seed.Question == "" {
			log.Warn().Int("index", i).Uint("sessionID", req.SessionID).Msg("AddQuestions: skipping entry with empty question text")
			continue
		}
		normalized := normalizeQuestionText(seed.Question)
		if _, dup := existingNormalized[normalized]; dup {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		toCreate = append(toCreate, model.Question{
			SessionID: req.SessionID,
			Question:  seed.Question,
			Answer:    seed.Answer,
		})
	}

	if len(toCreate) == 0 {
		return &dto.AddQuestionsResponseDTO{
			Success: false,
			Message: "All provided questions are duplicates. No new questions were added.",
		}, nil
	}

	created, err := s.questionRepo.CreateBatch(toCreate)
	if err != nil {
		log.Error().Err(err).Uint("sessionID", req.SessionID).Msg("AddQuestions: failed to insert question batch")
		return nil, fmt.Errorf("create questions: %w", err)
	}

	questionDTOs := make([]dto.QuestionResponseDTO, 0, len(created))
	for i := range created {
		var qDTO dto.QuestionResponseDTO
		if err := copier.Copy(&qDTO, &created[i]); err != nil {
			return nil, fmt.Errorf("error preparing response data: %w", err)
		}
		questionDTOs = append(questionDTOs, qDTO)
	}

	return &dto.AddQuestionsResponseDTO{
		Success:   true,
		Message:   "Questions added to session",
		Questions: questionDTOs,
	}, nil
}

func (s *questionService) TogglePin(userID, questionID uint) (*dto.QuestionResponseDTO, error) {
	question, err := s.authorizedQuestion(userID, questionID)
	if err != nil {
		return nil, err
	}

	question.IsPinned = !question.IsPinned
	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("TogglePin: failed to update question")
		return nil, fmt.Errorf("update question: %w", err)
	}
	return questionToDTO(question)
}

func (s *questionService) UpdateNote(userID, questionID uint, note string) (*dto.QuestionResponseDTO, error) {
	question, err := s.authorizedQuestion(userID, questionID)
	if err != nil {
		return nil, err
	}

	question.Note = note
	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("UpdateNote: failed to update question")
		return nil, fmt.Errorf("update question: %w", err)
	}
	return questionToDTO(question)
}

// authorizedQuestion loads a question and verifies the requester owns its
// parent session. Not-found and not-owner stay distinct.
func (s *questionService) authorizedQuestion(userID, questionID uint) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("fetch question: %w", err)
	}

	session, err := s.sessionRepo.FindByID(question.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrSessionNotFound
		}
		return nil, fmt.Errorf("fetch session: %w", err)
	}
	if session.UserID != userID {
		return nil, apperr.ErrNotOwner
	}
	return question, nil
}

func questionToDTO(question *model.Question) (*dto.QuestionResponseDTO, error) {
	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

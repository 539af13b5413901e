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

type SessionService interface {
	CreateSession(userID uint, req dto.SessionCreateDTO) (*dto.SessionResponseDTO, error)
	GetMySessions(userID uint) ([]dto.SessionResponseDTO, error)
	GetSessionByID(sessionID uint) (*dto.SessionResponseDTO, error)
	DeleteSession(userID, sessionID uint) error
}

type sessionService struct {
	sessionRepo  repository.SessionRepository
	questionRepo repository.QuestionRepository
}

func NewSessionService(sessionRepo repository.SessionRepository, questionRepo repository.QuestionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo, questionRepo: questionRepo}
}

// CreateSession creates the session record and then its question batch.
// Entries missing either text or answer are skipped and logged rather
// than failing the whole request; the same skip-and-report policy the
// append path uses.
func (s *sessionService) CreateSession(userID uint, req dto.SessionCreateDTO) (*dto.SessionResponseDTO, error) {
	session := &model.Session{
		UserID:       userID,
		Role:         req.Role,
		Experience:   req.Experience,
		TopicToFocus: req.TopicToFocus,
		Description:  req.Description,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("CreateSession: failed to create session")
		return nil, fmt.Errorf("create session: %w", err)
	}

	var questions []model.Question
	for i, seed := range req.Questions {
		if seed.Question == "" || seed.Answer == "" {
			log.Warn().Int("index", i).Uint("sessionID", session.ID).Msg("CreateSession: skipping question with missing fields")
			continue
		}
		questions = append(questions, model.Question{
			SessionID: session.ID,
			Question:  seed.Question,
			Answer:    seed.Answer,
		})
	}
	if len(questions) > 0 {
		if _, err := s.questionRepo.CreateBatch(questions); err != nil {
			log.Error().Err(err).Uint("sessionID", session.ID).Msg("CreateSession: failed to create question batch")
			return nil, fmt.Errorf("create questions: %w", err)
		}
	}

	created, err := s.sessionRepo.FindByIDWithQuestions(session.ID)
	if err != nil {
		log.Error().Err(err).Uint("sessionID", session.ID).Msg("CreateSession: failed to reload created session")
		return nil, fmt.Errorf("reload session: %w", err)
	}
	return sessionToDTO(created)
}

func (s *sessionService) GetMySessions(userID uint) ([]dto.SessionResponseDTO, error) {
	sessions, err := s.sessionRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetch sessions: %w", err)
	}

	dtos := make([]dto.SessionResponseDTO, 0, len(sessions))
	for i := range sessions {
		resp, err := sessionToDTO(&sessions[i])
		if err != nil {
			log.Error().Err(err).Uint("sessionID", sessions[i].ID).Msg("GetMySessions: failed to map session")
			continue
		}
		dtos = append(dtos, *resp)
	}
	return dtos, nil
}

func (s *sessionService) GetSessionByID(sessionID uint) (*dto.SessionResponseDTO, error) {
	session, err := s.sessionRepo.FindByIDWithQuestions(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrSessionNotFound
		}
		return nil, fmt.Errorf("fetch session: %w", err)
	}
	return sessionToDTO(session)
}

func (s *sessionService) DeleteSession(userID, sessionID uint) error {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrSessionNotFound
		}
		return fmt.Errorf("fetch session: %w", err)
	}
	if session.UserID != userID {
		return apperr.ErrNotOwner
	}

	if err := s.sessionRepo.Delete(sessionID); err != nil {
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("DeleteSession: failed to delete session")
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func sessionToDTO(session *model.Session) (*dto.SessionResponseDTO, error) {
	var resp dto.SessionResponseDTO
	if err := copier.Copy(&resp, session); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	if resp.Questions == nil {
		resp.Questions = []dto.QuestionResponseDTO{}
	}
	return &resp, nil
}

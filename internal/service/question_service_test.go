package service

import (
	"testing"

	"github.com/SDhinakar/Interview-Prep-Backend/internal/apperr"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/dto"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	ownerID    uint = 1
	strangerID uint = 2
	sessionID  uint = 10
)

func ownedSession() *model.Session {
	return &model.Session{ID: sessionID, UserID: ownerID, Role: "Backend", Experience: "2", TopicToFocus: "Go"}
}

func TestAddQuestions_SkipsNormalizedDuplicates(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	questionRepo := new(MockQuestionRepository)
	sessionRepo.On("FindByID", sessionID).Return(ownedSession(), nil)
	questionRepo.On("FindBySessionID", sessionID).Return([]model.Question{
		{ID: 1, SessionID: sessionID, Question: "What is Go?"},
	}, nil)
	// Only the genuinely new question reaches the datastore.
	questionRepo.On("CreateBatch", mock.MatchedBy(func(qs []model.Question) bool {
		return len(qs) == 1 && qs[0].Question == "Explain goroutines."
	})).Return([]model.Question{{ID: 2, SessionID: sessionID, Question: "Explain goroutines."}}, nil)

	svc := NewQuestionService(sessionRepo, questionRepo)
	resp, err := svc.AddQuestionsToSession(ownerID, dto.AddQuestionsDTO{
		SessionID: sessionID,
		Questions: []dto.QuestionSeedDTO{
			{Question: "  what is go? ", Answer: "dup with different case and spacing"},
			{Question: "Explain goroutines.", Answer: "lightweight threads"},
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "Explain goroutines.", resp.Questions[0].Question)
	questionRepo.AssertExpectations(t)
}

func TestAddQuestions_AllDuplicatesReturnsNoticeWithoutInsert(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	questionRepo := new(MockQuestionRepository)
	sessionRepo.On("FindByID", sessionID).Return(ownedSession(), nil)
	questionRepo.On("FindBySessionID", sessionID).Return([]model.Question{
		{ID: 1, SessionID: sessionID, Question: "What is Go?"},
	}, nil)

	svc := NewQuestionService(sessionRepo, questionRepo)
	resp, err := svc.AddQuestionsToSession(ownerID, dto.AddQuestionsDTO{
		SessionID: sessionID,
		Questions: []dto.QuestionSeedDTO{{Question: "WHAT IS GO?"}},
	})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "duplicates")
	questionRepo.AssertNotCalled(t, "CreateBatch", mock.Anything)
}

func TestAddQuestions_DuplicatesWithinBatchCollapse(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	questionRepo := new(MockQuestionRepository)
	sessionRepo.On("FindByID", sessionID).Return(ownedSession(), nil)
	questionRepo.On("FindBySessionID", sessionID).Return([]model.Question{}, nil)
	questionRepo.On("CreateBatch", mock.MatchedBy(func(qs []model.Question) bool {
		return len(qs) == 1
	})).Return([]model.Question{{ID: 3, SessionID: sessionID, Question: "What is Go?"}}, nil)

	svc := NewQuestionService(sessionRepo, questionRepo)
	resp, err := svc.AddQuestionsToSession(ownerID, dto.AddQuestionsDTO{
		SessionID: sessionID,
		Questions: []dto.QuestionSeedDTO{
			{Question: "What is Go?"},
			{Question: " what is go? "},
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	questionRepo.AssertExpectations(t)
}

func TestAddQuestions_NotOwner(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	questionRepo := new(MockQuestionRepository)
	sessionRepo.On("FindByID", sessionID).Return(ownedSession(), nil)

	svc := NewQuestionService(sessionRepo, questionRepo)
	_, err := svc.AddQuestionsToSession(strangerID, dto.AddQuestionsDTO{
		SessionID: sessionID,
		Questions: []dto.QuestionSeedDTO{{Question: "New question?"}},
	})

	assert.ErrorIs(t, err, apperr.ErrNotOwner)
	questionRepo.AssertNotCalled(t, "FindBySessionID", mock.Anything)
}

func TestAddQuestions_SessionNotFound(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("FindByID", sessionID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewQuestionService(sessionRepo, new(MockQuestionRepository))
	_, err := svc.AddQuestionsToSession(ownerID, dto.AddQuestionsDTO{
		SessionID: sessionID,
		Questions: []dto.QuestionSeedDTO{{Question: "New question?"}},
	})

	assert.ErrorIs(t, err, apperr.ErrSessionNotFound)
}

func TestTogglePin_TwiceRestoresOriginalState(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	questionRepo := new(MockQuestionRepository)
	question := &model.Question{ID: 5, SessionID: sessionID, Question: "Q?", IsPinned: false}
	sessionRepo.On("FindByID", sessionID).Return(ownedSession(), nil)
	questionRepo.On("FindByID", uint(5)).Return(question, nil)
	questionRepo.On("Update", question).Return(nil)

	svc := NewQuestionService(sessionRepo, questionRepo)

	first, err := svc.TogglePin(ownerID, 5)
	require.NoError(t, err)
	assert.True(t, first.IsPinned)

	second, err := svc.TogglePin(ownerID, 5)
	require.NoError(t, err)
	assert.False(t, second.IsPinned)
}

func TestTogglePin_NotOwnerLeavesQuestionUnchanged(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	questionRepo := new(MockQuestionRepository)
	question := &model.Question{ID: 5, SessionID: sessionID, Question: "Q?", IsPinned: false}
	sessionRepo.On("FindByID", sessionID).Return(ownedSession(), nil)
	questionRepo.On("FindByID", uint(5)).Return(question, nil)

	svc := NewQuestionService(sessionRepo, questionRepo)
	_, err := svc.TogglePin(strangerID, 5)

	assert.ErrorIs(t, err, apperr.ErrNotOwner)
	assert.False(t, question.IsPinned)
	questionRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateNote_OwnerOverwritesNote(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	questionRepo := new(MockQuestionRepository)
	question := &model.Question{ID: 5, SessionID: sessionID, Question: "Q?", Note: "old"}
	sessionRepo.On("FindByID", sessionID).Return(ownedSession(), nil)
	questionRepo.On("FindByID", uint(5)).Return(question, nil)
	questionRepo.On("Update", question).Return(nil)

	svc := NewQuestionService(sessionRepo, questionRepo)
	resp, err := svc.UpdateNote(ownerID, 5, "remember the pitfalls")

	require.NoError(t, err)
	assert.Equal(t, "remember the pitfalls", resp.Note)
}

func TestUpdateNote_QuestionNotFound(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("FindByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewQuestionService(sessionRepo, questionRepo)
	_, err := svc.UpdateNote(ownerID, 99, "note")

	assert.ErrorIs(t, err, apperr.ErrQuestionNotFound)
}

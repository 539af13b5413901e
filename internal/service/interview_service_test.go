package service

import (
	"context"
	"errors"
	"testing"

	"github.com/SDhinakar/Interview-Prep-Backend/internal/dto"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateMockQuestions_ParsesModelOutput(t *testing.T) {
	llm := &fakeLLM{output: `[{"question": "Q1?", "answer": "A1"}, {"question": "Q2?", "answer": "A2"}]`}
	svc := NewInterviewService(llm, new(MockUserAnswerRepository))

	resp := svc.GenerateMockQuestions(context.Background(), dto.MockQuestionsDTO{
		Role: "Backend Engineer", Topics: "Go, SQL", Experience: "3 years",
	})

	require.Len(t, resp.Questions, 2)
	require.Len(t, resp.IdealAnswers, 2)
	assert.Equal(t, "Q1?", resp.Questions[0])
	assert.Equal(t, "A2", resp.IdealAnswers[1])
	assert.Contains(t, llm.lastPrompt, "Backend Engineer")
}

func TestGenerateMockQuestions_ModelErrorFallsBackToFixedSet(t *testing.T) {
	llm := &fakeLLM{err: errors.New("quota exceeded")}
	svc := NewInterviewService(llm, new(MockUserAnswerRepository))

	resp := svc.GenerateMockQuestions(context.Background(), dto.MockQuestionsDTO{Role: "Frontend"})

	require.Len(t, resp.Questions, 5)
	require.Len(t, resp.IdealAnswers, 5)
	for _, answer := range resp.IdealAnswers {
		assert.Empty(t, answer)
	}
}

func TestGenerateMockQuestions_GarbageOutputStillEqualLength(t *testing.T) {
	llm := &fakeLLM{output: "not json"}
	svc := NewInterviewService(llm, new(MockUserAnswerRepository))

	resp := svc.GenerateMockQuestions(context.Background(), dto.MockQuestionsDTO{})

	assert.Equal(t, len(resp.Questions), len(resp.IdealAnswers))
	assert.Len(t, resp.Questions, 5)
}

func TestSubmitAnswer_MissingFields(t *testing.T) {
	svc := NewInterviewService(&fakeLLM{}, new(MockUserAnswerRepository))

	_, err := svc.SubmitAnswer(context.Background(), dto.SubmitAnswerDTO{Question: "Q", UserAns: "A"})
	require.Error(t, err)
	assert.True(t, IsMissingAnswerFields(err))
}

func TestSubmitAnswer_PersistsParsedReview(t *testing.T) {
	llm := &fakeLLM{output: `{"feedback": "Accurate but shallow.", "rating": 8}`}
	answerRepo := new(MockUserAnswerRepository)
	answerRepo.On("Create", mock.MatchedBy(func(a *model.UserAnswer) bool {
		return a.Feedback == "Accurate but shallow." && a.Rating == 8 && a.UserID == "user-1"
	})).Return(nil)

	svc := NewInterviewService(llm, answerRepo)
	resp, err := svc.SubmitAnswer(context.Background(), dto.SubmitAnswerDTO{
		UserID: "user-1", MockIDRef: "mock-1", Question: "Q?", UserAns: "my answer", CorrectAns: "ideal",
	})

	require.NoError(t, err)
	assert.Equal(t, 8, resp.Rating)
	assert.Equal(t, "Accurate but shallow.", resp.Feedback)
	answerRepo.AssertExpectations(t)
}

func TestSubmitAnswer_RegexFallbackStillPersists(t *testing.T) {
	llm := &fakeLLM{output: `Model says: "feedback": "ok", "rating": 7 and some trailing prose`}
	answerRepo := new(MockUserAnswerRepository)
	answerRepo.On("Create", mock.MatchedBy(func(a *model.UserAnswer) bool {
		return a.Feedback == "ok" && a.Rating == 7
	})).Return(nil)

	svc := NewInterviewService(llm, answerRepo)
	resp, err := svc.SubmitAnswer(context.Background(), dto.SubmitAnswerDTO{
		MockIDRef: "mock-1", Question: "Q?", UserAns: "my answer",
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Feedback)
	assert.Equal(t, 7, resp.Rating)
	// Missing userId falls back to the default identifier.
	assert.Equal(t, defaultInterviewUser, resp.UserID)
	answerRepo.AssertExpectations(t)
}

func TestSubmitAnswer_ModelFailureStoresPlaceholder(t *testing.T) {
	llm := &fakeLLM{err: errors.New("upstream down")}
	answerRepo := new(MockUserAnswerRepository)
	answerRepo.On("Create", mock.MatchedBy(func(a *model.UserAnswer) bool {
		return a.Rating == 0 && a.Feedback != ""
	})).Return(nil)

	svc := NewInterviewService(llm, answerRepo)
	_, err := svc.SubmitAnswer(context.Background(), dto.SubmitAnswerDTO{
		MockIDRef: "mock-1", Question: "Q?", UserAns: "my answer",
	})

	require.NoError(t, err)
	answerRepo.AssertExpectations(t)
}

func TestSubmitAnswer_DatastoreErrorSurfaces(t *testing.T) {
	llm := &fakeLLM{output: `{"feedback": "fine", "rating": 5}`}
	answerRepo := new(MockUserAnswerRepository)
	answerRepo.On("Create", mock.Anything).Return(errors.New("connection reset"))

	svc := NewInterviewService(llm, answerRepo)
	_, err := svc.SubmitAnswer(context.Background(), dto.SubmitAnswerDTO{
		MockIDRef: "mock-1", Question: "Q?", UserAns: "my answer",
	})

	require.Error(t, err)
	assert.False(t, IsMissingAnswerFields(err))
}

func TestGetAnswers_DefaultsUser(t *testing.T) {
	answerRepo := new(MockUserAnswerRepository)
	answerRepo.On("FindBySessionAndUser", "mock-1", defaultInterviewUser).
		Return([]model.UserAnswer{{MockIDRef: "mock-1", Question: "Q?", Rating: 4}}, nil)

	svc := NewInterviewService(&fakeLLM{}, answerRepo)
	answers, err := svc.GetAnswers("mock-1", "")

	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, 4, answers[0].Rating)
	answerRepo.AssertExpectations(t)
}

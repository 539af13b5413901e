package service

import (
	"context"

	"github.com/SDhinakar/Interview-Prep-Backend/internal/model"
	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the repository interfaces and the LLM client.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(session *model.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByID(id uint) (*model.Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepository) FindByIDWithQuestions(id uint) (*model.Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepository) FindAllByUser(userID uint) ([]model.Session, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) CreateBatch(questions []model.Question) ([]model.Question, error) {
	args := m.Called(questions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindByID(id uint) (*model.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindBySessionID(sessionID uint) ([]model.Question, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

func (m *MockQuestionRepository) Update(question *model.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

type MockUserAnswerRepository struct {
	mock.Mock
}

func (m *MockUserAnswerRepository) Create(answer *model.UserAnswer) error {
	args := m.Called(answer)
	return args.Error(0)
}

func (m *MockUserAnswerRepository) FindBySessionAndUser(mockIDRef, userID string) ([]model.UserAnswer, error) {
	args := m.Called(mockIDRef, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserAnswer), args.Error(1)
}

// fakeLLM returns canned output or a canned error, recording the last
// prompt it was handed.
type fakeLLM struct {
	output     string
	err        error
	lastPrompt string
}

func (f *fakeLLM) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.output, f.err
}

func (f *fakeLLM) SendChatMessage(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.output, f.err
}

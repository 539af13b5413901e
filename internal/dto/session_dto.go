package dto

import "time"

// QuestionSeedDTO is one question/answer pair supplied when a session is
// created or when questions are appended to it.
type QuestionSeedDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SessionCreateDTO struct {
	Role         string            `json:"role" binding:"required"`
	Experience   string            `json:"experience" binding:"required"`
	TopicToFocus string            `json:"topicToFocus" binding:"required"`
	Description  string            `json:"description"`
	Questions    []QuestionSeedDTO `json:"questions"`
}

type QuestionResponseDTO struct {
	ID        uint      `json:"id"`
	SessionID uint      `json:"session"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Note      string    `json:"note,omitempty"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SessionResponseDTO struct {
	ID           uint                  `json:"id"`
	UserID       uint                  `json:"userId"`
	Role         string                `json:"role"`
	Experience   string                `json:"experience"`
	TopicToFocus string                `json:"topicToFocus"`
	Description  string                `json:"description,omitempty"`
	Questions    []QuestionResponseDTO `json:"questions"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

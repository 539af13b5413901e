package dto

type AddQuestionsDTO struct {
	SessionID uint              `json:"sessionId" binding:"required"`
	Questions []QuestionSeedDTO `json:"questions" binding:"required"`
}

type UpdateNoteDTO struct {
	Note string `json:"note"`
}

// AddQuestionsResponseDTO reports the outcome of an append batch. Success
// is false when every entry duplicated an existing question.
type AddQuestionsResponseDTO struct {
	Success   bool                  `json:"success"`
	Message   string                `json:"message"`
	Questions []QuestionResponseDTO `json:"questions,omitempty"`
}

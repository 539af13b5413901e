package dto

import "time"

type GenerateQuestionsDTO struct {
	Role              string `json:"role"`
	Experience        string `json:"experience"`
	TopicToFocus      string `json:"topicToFocus"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
}

type GenerateExplanationDTO struct {
	Question string `json:"question" binding:"required"`
}

// QuestionAnswerDTO is one structured pair extracted from model output.
type QuestionAnswerDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ExplanationDTO struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}

type GeneratedDataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// MockQuestionsDTO is the request for the mock-interview question set.
type MockQuestionsDTO struct {
	Role       string `json:"role"`
	Topics     string `json:"topics"`
	Experience string `json:"experience"`
}

// MockQuestionsResponse always carries questions and idealAnswers of
// equal length, regardless of what the model returned.
type MockQuestionsResponse struct {
	Questions    []string `json:"questions"`
	IdealAnswers []string `json:"idealAnswers"`
}

type SubmitAnswerDTO struct {
	UserID     string `json:"userId"`
	MockIDRef  string `json:"mockIdRef"`
	Question   string `json:"question"`
	UserAns    string `json:"user_ans"`
	CorrectAns string `json:"correct_ans"`
}

type UserAnswerResponseDTO struct {
	ID         uint      `json:"id"`
	UserID     string    `json:"userId"`
	MockIDRef  string    `json:"mockIdRef"`
	Question   string    `json:"question"`
	UserAns    string    `json:"user_ans"`
	CorrectAns string    `json:"correct_ans"`
	Feedback   string    `json:"feedback"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"createdAt"`
}

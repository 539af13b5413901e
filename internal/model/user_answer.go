package model

import "time"

// UserAnswer stores one mock-interview answer submission together with
// whatever feedback and rating could be derived from the AI reviewer.
// Records are written once and never updated.
type UserAnswer struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        string    `json:"userId" gorm:"index"`
	MockIDRef     string    `json:"mockIdRef" gorm:"index;not null"`
	Question      string    `json:"question" gorm:"type:text;not null"`
	UserAns       string    `json:"user_ans" gorm:"type:text;not null"`
	CorrectAns    string    `json:"correct_ans" gorm:"type:text"`
	Feedback      string    `json:"feedback" gorm:"type:text"`
	Rating        int       `json:"rating"`
	CreatedAt     time.Time `json:"createdAt"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Session is one interview-preparation topic owned by a single user.
// Its question list is maintained through the Question.SessionID back
// reference with a cascading foreign key, so a deleted session can never
// leave orphaned questions behind.
type Session struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `json:"userId" gorm:"not null;index"`
	Role         string         `json:"role" gorm:"not null"`
	Experience   string         `json:"experience" gorm:"not null"`
	TopicToFocus string         `json:"topicToFocus" gorm:"not null"`
	Description  string         `json:"description" gorm:"type:text;default:''"`
	Questions    []Question     `json:"questions,omitempty" gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Question uniqueness is per session on the trimmed, lowercased question
// text. The unique expression index backing that rule is created in the
// migration step, since GORM tags cannot express it.
type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SessionID uint           `json:"session" gorm:"not null;index"`
	Question  string         `json:"question" gorm:"type:text;not null"`
	Answer    string         `json:"answer" gorm:"type:text"`
	Note      string         `json:"note" gorm:"type:text"`
	IsPinned  bool           `json:"isPinned" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

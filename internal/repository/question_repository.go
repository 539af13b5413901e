package repository

import (
	"github.com/SDhinakar/Interview-Prep-Backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository interface {
	CreateBatch(questions []model.Question) ([]model.Question, error)
	FindByID(id uint) (*model.Question, error)
	FindBySessionID(sessionID uint) ([]model.Question, error)
	Update(question *model.Question) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// CreateBatch inserts questions with conflict suppression on the
// per-session normalized-text unique index. Two concurrent appends of the
// same text therefore race safely: the loser's row is dropped by the
// database instead of duplicating the winner's. Returns the rows that
// were actually inserted.
func (r *questionRepository) CreateBatch(questions []model.Question) ([]model.Question, error) {
	if len(questions) == 0 {
		return nil, nil
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&questions)
	if result.Error != nil {
		return nil, result.Error
	}

	inserted := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		// Rows skipped by ON CONFLICT come back without a primary key.
		if q.ID != 0 {
			inserted = append(inserted, q)
		}
	}
	return inserted, nil
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindBySessionID(sessionID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("session_id = ?", sessionID).Order("created_at ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

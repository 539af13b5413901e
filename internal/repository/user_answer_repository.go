package repository

import (
	"github.com/SDhinakar/Interview-Prep-Backend/internal/model"
	"gorm.io/gorm"
)

type UserAnswerRepository interface {
	Create(answer *model.UserAnswer) error
	FindBySessionAndUser(mockIDRef, userID string) ([]model.UserAnswer, error)
}

type userAnswerRepository struct {
	db *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: db}
}

func (r *userAnswerRepository) Create(answer *model.UserAnswer) error {
	return r.db.Create(answer).Error
}

func (r *userAnswerRepository) FindBySessionAndUser(mockIDRef, userID string) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	err := r.db.Where("mock_id_ref = ? AND user_id = ?", mockIDRef, userID).
		Order("created_at ASC").Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

package repository

import (
	"github.com/SDhinakar/Interview-Prep-Backend/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.Session) error
	FindByID(id uint) (*model.Session, error)
	FindByIDWithQuestions(id uint) (*model.Session, error)
	FindAllByUser(userID uint) ([]model.Session, error)
	Delete(id uint) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByID(id uint) (*model.Session, error) {
	var session model.Session
	if err := r.db.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindByIDWithQuestions(id uint) (*model.Session, error) {
	var session model.Session
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		// Pinned questions first, then oldest to newest.
		return db.Order("questions.is_pinned DESC, questions.created_at ASC")
	}).First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindAllByUser(userID uint) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.is_pinned DESC, questions.created_at ASC")
	}).Where("user_id = ?", userID).Order("created_at DESC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// Delete removes the session and every question that references it in one
// transaction, so no orphaned questions can survive a partial failure.
func (r *sessionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Session{}, id).Error
	})
}

package repository

import (
	"course_qa_backend/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *model.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	err := r.DB.First(&review, id).Error
	return &review, err
}

func (r *ReviewRepository) FindForQuestion(questionID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.DB.Where("question_id = ?", questionID).Order("id ASC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindForAnswer(answerID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.DB.Where("answer_id = ?", answerID).Order("id ASC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByReviewer(username string) ([]model.Review, error) {
	var reviews []model.Review
	err := r.DB.Where("reviewer = ?", username).Order("id ASC").Find(&reviews).Error
	return reviews, err
}

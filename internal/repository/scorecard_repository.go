package repository

import (
	"course_qa_backend/internal/model"

	"gorm.io/gorm"
)

type ScorecardRepository struct {
	DB *gorm.DB
}

func NewScorecardRepository(db *gorm.DB) *ScorecardRepository {
	return &ScorecardRepository{DB: db}
}

func (r *ScorecardRepository) FindByReviewer(reviewerID string) (*model.ReviewerScorecard, error) {
	var card model.ReviewerScorecard
	err := r.DB.Where("reviewer_id = ?", reviewerID).First(&card).Error
	return &card, err
}

func (r *ScorecardRepository) FindAll() ([]model.ReviewerScorecard, error) {
	var cards []model.ReviewerScorecard
	err := r.DB.Order("trust_score DESC").Find(&cards).Error
	return cards, err
}

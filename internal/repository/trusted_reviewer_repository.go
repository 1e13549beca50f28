package repository

import (
	"course_qa_backend/internal/model"

	"gorm.io/gorm"
)

type TrustedReviewerRepository struct {
	DB *gorm.DB
}

func NewTrustedReviewerRepository(db *gorm.DB) *TrustedReviewerRepository {
	return &TrustedReviewerRepository{DB: db}
}

func (r *TrustedReviewerRepository) FindEdge(owner, trusted string) (*model.TrustedReviewer, error) {
	var edge model.TrustedReviewer
	err := r.DB.Where("username = ? AND trusted_username = ?", owner, trusted).First(&edge).Error
	return &edge, err
}

// FindByOwner 按权重降序、用户名升序的确定性全序
func (r *TrustedReviewerRepository) FindByOwner(owner string) ([]model.TrustedReviewer, error) {
	var edges []model.TrustedReviewer
	err := r.DB.Where("username = ?", owner).
		Order("weight DESC, trusted_username ASC").Find(&edges).Error
	return edges, err
}

func (r *TrustedReviewerRepository) Delete(owner, trusted string) (int64, error) {
	result := r.DB.Where("username = ? AND trusted_username = ?", owner, trusted).
		Delete(&model.TrustedReviewer{})
	return result.RowsAffected, result.Error
}

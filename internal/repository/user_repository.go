package repository

import (
	"course_qa_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("username ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// Delete 硬删除用户并级联清理依赖行
func (r *UserRepository) Delete(username string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ? OR trusted_username = ?", username, username).
			Delete(&model.TrustedReviewer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reviewer = ?", username).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", username).Delete(&model.RoleRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reviewer_id = ?", username).Delete(&model.ReviewerScorecard{}).Error; err != nil {
			return err
		}
		return tx.Where("username = ?", username).Delete(&model.User{}).Error
	})
}

package repository

import (
	"course_qa_backend/internal/model"

	"gorm.io/gorm"
)

type RoleRequestRepository struct {
	DB *gorm.DB
}

func NewRoleRequestRepository(db *gorm.DB) *RoleRequestRepository {
	return &RoleRequestRepository{DB: db}
}

func (r *RoleRequestRepository) FindByID(id string) (*model.RoleRequest, error) {
	var req model.RoleRequest
	err := r.DB.Where("id = ?", id).First(&req).Error
	return &req, err
}

// PendingRequestRow 待审批请求连同学生展示名
type PendingRequestRow struct {
	model.RoleRequest
	StudentName string `json:"studentName"`
}

// FindPending 按申请时间升序，连上学生展示名
func (r *RoleRequestRepository) FindPending() ([]PendingRequestRow, error) {
	var rows []PendingRequestRow
	err := r.DB.Model(&model.RoleRequest{}).
		Select("role_requests.*, users.name AS student_name").
		Joins("JOIN users ON users.username = role_requests.student_id").
		Where("role_requests.status = ?", model.RoleRequestPending).
		Order("role_requests.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

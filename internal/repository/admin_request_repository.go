package repository

import (
	"course_qa_backend/internal/model"

	"gorm.io/gorm"
)

type AdminRequestRepository struct {
	DB *gorm.DB
}

func NewAdminRequestRepository(db *gorm.DB) *AdminRequestRepository {
	return &AdminRequestRepository{DB: db}
}

func (r *AdminRequestRepository) FindByID(id uint) (*model.AdminRequest, error) {
	var req model.AdminRequest
	err := r.DB.First(&req, id).Error
	return &req, err
}

func (r *AdminRequestRepository) FindAll() ([]model.AdminRequest, error) {
	var reqs []model.AdminRequest
	err := r.DB.Order("created_at DESC, id DESC").Find(&reqs).Error
	return reqs, err
}

// FindLineage 沿 original_request_id 向前追溯整条 lineage 链，从最新一条开始
func (r *AdminRequestRepository) FindLineage(id uint) ([]model.AdminRequest, error) {
	var chain []model.AdminRequest
	current := id
	for {
		var req model.AdminRequest
		if err := r.DB.First(&req, current).Error; err != nil {
			return nil, err
		}
		chain = append(chain, req)
		if req.OriginalRequestID == nil {
			return chain, nil
		}
		current = *req.OriginalRequestID
	}
}

package service

import (
	"time"

	"gorm.io/gorm"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/repository"
	"course_qa_backend/internal/util"
)

// AdminRequestService 讲师管理请求的生命周期。
// 关闭是原地更新；重新打开永远插入新行并指向原请求，原行保持不动，
// lineage 因此是一条只向前的指针链。
type AdminRequestService struct {
	RequestRepo *repository.AdminRequestRepository
}

func NewAdminRequestService(requestRepo *repository.AdminRequestRepository) *AdminRequestService {
	return &AdminRequestService{RequestRepo: requestRepo}
}

type AdminRequestCreate struct {
	Description string `json:"description" binding:"required"`
}

type AdminRequestReopen struct {
	Description string `json:"description" binding:"required"`
}

func (s *AdminRequestService) Create(instructorID, description string) (uint, error) {
	req := &model.AdminRequest{
		InstructorID: instructorID,
		Description:  description,
		Status:       model.AdminRequestOpen,
	}
	if err := s.RequestRepo.DB.Create(req).Error; err != nil {
		return 0, util.StoreError("admin request create", err)
	}
	return req.ID, nil
}

// Close 置为 CLOSED 并记录关闭人和时间；不存在返回 NotFound，
// 重复关闭返回 Conflict
func (s *AdminRequestService) Close(id uint, closedBy string) error {
	return s.RequestRepo.DB.Transaction(func(tx *gorm.DB) error {
		var req model.AdminRequest
		if err := tx.First(&req, id).Error; err != nil {
			return orNotFound(err, util.ErrRequestNotFound, "admin request lookup")
		}
		if req.Status == model.AdminRequestClosed {
			return util.ErrRequestAlreadyClosed
		}
		now := time.Now()
		if err := tx.Model(&req).Updates(map[string]interface{}{
			"status":    model.AdminRequestClosed,
			"closed_by": closedBy,
			"closed_at": now,
		}).Error; err != nil {
			return util.StoreError("admin request close", err)
		}
		return nil
	})
}

// Reopen 插入一条复制原请求 instructor 的新行，状态 REOPENED，
// original_request_id 指向原请求。原请求必须存在且处于 CLOSED。
func (s *AdminRequestService) Reopen(originalID uint, newDescription string) (uint, error) {
	req := &model.AdminRequest{
		Description:       newDescription,
		Status:            model.AdminRequestReopened,
		OriginalRequestID: &originalID,
	}
	err := s.RequestRepo.DB.Transaction(func(tx *gorm.DB) error {
		var original model.AdminRequest
		if err := tx.First(&original, originalID).Error; err != nil {
			return orNotFound(err, util.ErrRequestNotFound, "admin request lookup")
		}
		if original.Status != model.AdminRequestClosed {
			return util.ErrRequestNotClosed
		}
		req.InstructorID = original.InstructorID
		if err := tx.Create(req).Error; err != nil {
			return util.StoreError("admin request reopen", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return req.ID, nil
}

func (s *AdminRequestService) Get(id uint) (*model.AdminRequest, error) {
	req, err := s.RequestRepo.FindByID(id)
	if err != nil {
		return nil, orNotFound(err, util.ErrRequestNotFound, "admin request lookup")
	}
	return req, nil
}

// ListAll 按创建时间降序
func (s *AdminRequestService) ListAll() ([]model.AdminRequest, error) {
	reqs, err := s.RequestRepo.FindAll()
	if err != nil {
		return nil, util.StoreError("admin requests", err)
	}
	return reqs, nil
}

// Lineage 从指定请求沿 original_request_id 回溯整条链
func (s *AdminRequestService) Lineage(id uint) ([]model.AdminRequest, error) {
	chain, err := s.RequestRepo.FindLineage(id)
	if err != nil {
		return nil, orNotFound(err, util.ErrRequestNotFound, "admin request lineage")
	}
	return chain, nil
}

package service

import (
	"time"

	"gorm.io/gorm"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/repository"
	"course_qa_backend/internal/util"
)

// RoleRequestService 学生申请 reviewer 角色的审批流水线。
// PENDING -> APPROVED/REJECTED，离开 PENDING 后不可再变更。
type RoleRequestService struct {
	RequestRepo *repository.RoleRequestRepository
	UserRepo    *repository.UserRepository
}

func NewRoleRequestService(requestRepo *repository.RoleRequestRepository, userRepo *repository.UserRepository) *RoleRequestService {
	return &RoleRequestService{
		RequestRepo: requestRepo,
		UserRepo:    userRepo,
	}
}

type DecideRequest struct {
	Approve bool `json:"approve"`
}

// Submit 提交申请。已有 PENDING 申请时返回 false + Conflict，
// 检查和插入在同一事务内完成，并发提交不会产生重复行。
func (s *RoleRequestService) Submit(studentID string) (bool, error) {
	submitted := false
	err := s.RequestRepo.DB.Transaction(func(tx *gorm.DB) error {
		var student model.User
		if err := tx.Where("username = ?", studentID).First(&student).Error; err != nil {
			return orNotFound(err, util.ErrUserNotFound, "role request student lookup")
		}

		var count int64
		if err := tx.Model(&model.RoleRequest{}).
			Where("student_id = ? AND status = ?", studentID, model.RoleRequestPending).
			Count(&count).Error; err != nil {
			return util.StoreError("pending request lookup", err)
		}
		if count > 0 {
			return util.ErrDuplicateRoleRequest
		}

		req := &model.RoleRequest{
			StudentID: studentID,
			Status:    model.RoleRequestPending,
		}
		if err := tx.Create(req).Error; err != nil {
			return util.StoreError("role request create", err)
		}
		submitted = true
		return nil
	})
	return submitted, err
}

// Decide 审批。重复审批返回 Conflict，已有决定保持不变；
// 通过时给学生并集式追加 reviewer 角色，重复通过不会产生重复标签。
func (s *RoleRequestService) Decide(requestID, reviewerID string, approve bool) error {
	return s.RequestRepo.DB.Transaction(func(tx *gorm.DB) error {
		var req model.RoleRequest
		if err := tx.Where("id = ?", requestID).First(&req).Error; err != nil {
			return orNotFound(err, util.ErrRequestNotFound, "role request lookup")
		}
		if req.Status != model.RoleRequestPending {
			return util.ErrRequestAlreadyDecided
		}

		status := model.RoleRequestRejected
		if approve {
			status = model.RoleRequestApproved
		}
		now := time.Now()
		if err := tx.Model(&req).Updates(map[string]interface{}{
			"status":      status,
			"reviewed_by": reviewerID,
			"reviewed_at": now,
		}).Error; err != nil {
			return util.StoreError("role request update", err)
		}

		if !approve {
			return nil
		}

		var student model.User
		if err := tx.Where("username = ?", req.StudentID).First(&student).Error; err != nil {
			return orNotFound(err, util.ErrUserNotFound, "role request student lookup")
		}
		student.AddRole(model.RoleReviewer)
		if err := tx.Model(&student).Update("roles", student.Roles).Error; err != nil {
			return util.StoreError("student roles update", err)
		}
		return nil
	})
}

// Status 查询单个申请
func (s *RoleRequestService) Status(requestID string) (*model.RoleRequest, error) {
	req, err := s.RequestRepo.FindByID(requestID)
	if err != nil {
		return nil, orNotFound(err, util.ErrRequestNotFound, "role request lookup")
	}
	return req, nil
}

// ListPending 待审批申请连同学生展示名，按申请时间升序
func (s *RoleRequestService) ListPending() ([]repository.PendingRequestRow, error) {
	rows, err := s.RequestRepo.FindPending()
	if err != nil {
		return nil, util.StoreError("pending role requests", err)
	}
	return rows, nil
}

package service

import (
	"time"

	"gorm.io/gorm"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/repository"
	"course_qa_backend/internal/util"
)

// StaffService 员工工具：内部讨论板、升级处理请求、内容审核日志
// 和内容监控面板。
type StaffService struct {
	StaffRepo *repository.StaffRepository
	UserRepo  *repository.UserRepository
}

func NewStaffService(staffRepo *repository.StaffRepository, userRepo *repository.UserRepository) *StaffService {
	return &StaffService{
		StaffRepo: staffRepo,
		UserRepo:  userRepo,
	}
}

type DiscussionRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type EscalationRequest struct {
	StudentID   string `json:"studentId"`
	IssueType   string `json:"issueType" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority"`
}

type EscalationStatusRequest struct {
	Status model.EscalationStatus `json:"status" binding:"required"`
}

type ModerationRequest struct {
	ContentType string `json:"contentType" binding:"required"`
	ContentID   uint   `json:"contentId" binding:"required"`
	Action      string `json:"action" binding:"required"`
	Reason      string `json:"reason"`
}

func (s *StaffService) PostDiscussion(staffID string, req DiscussionRequest) (uint, error) {
	d := &model.StaffDiscussion{
		StaffID: staffID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.StaffRepo.CreateDiscussion(d); err != nil {
		return 0, util.StoreError("staff discussion create", err)
	}
	return d.ID, nil
}

func (s *StaffService) ListDiscussions() ([]model.StaffDiscussion, error) {
	list, err := s.StaffRepo.FindDiscussions()
	if err != nil {
		return nil, util.StoreError("staff discussions", err)
	}
	return list, nil
}

func (s *StaffService) CreateEscalation(staffID string, req EscalationRequest) (uint, error) {
	e := &model.StaffEscalation{
		StaffID:     staffID,
		StudentID:   req.StudentID,
		IssueType:   req.IssueType,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      model.EscalationOpen,
	}
	if e.Priority == "" {
		e.Priority = "MEDIUM"
	}
	if err := s.StaffRepo.CreateEscalation(e); err != nil {
		return 0, util.StoreError("escalation create", err)
	}
	return e.ID, nil
}

func (s *StaffService) ListOpenEscalations() ([]model.StaffEscalation, error) {
	list, err := s.StaffRepo.FindOpenEscalations()
	if err != nil {
		return nil, util.StoreError("open escalations", err)
	}
	return list, nil
}

// UpdateEscalationStatus 状态推进，置为 RESOLVED 时记录处理人和时间
func (s *StaffService) UpdateEscalationStatus(id uint, status model.EscalationStatus, resolvedBy string) error {
	return s.StaffRepo.DB.Transaction(func(tx *gorm.DB) error {
		var e model.StaffEscalation
		if err := tx.First(&e, id).Error; err != nil {
			return orNotFound(err, util.ErrRequestNotFound, "escalation lookup")
		}
		updates := map[string]interface{}{"status": status}
		if status == model.EscalationResolved {
			now := time.Now()
			updates["resolved_by"] = resolvedBy
			updates["resolved_at"] = now
		}
		if err := tx.Model(&e).Updates(updates).Error; err != nil {
			return util.StoreError("escalation update", err)
		}
		return nil
	})
}

func (s *StaffService) RecordModeration(moderatorID string, req ModerationRequest) error {
	m := &model.ModerationRecord{
		ModeratorID: moderatorID,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		Action:      req.Action,
		Reason:      req.Reason,
	}
	if err := s.StaffRepo.CreateModerationRecord(m); err != nil {
		return util.StoreError("moderation record create", err)
	}
	return nil
}

func (s *StaffService) ModerationHistory(contentType string, contentID uint) ([]model.ModerationRecord, error) {
	list, err := s.StaffRepo.FindModerationHistory(contentType, contentID)
	if err != nil {
		return nil, util.StoreError("moderation history", err)
	}
	return list, nil
}

// AllContent 主问题与答案混排的内容面板
func (s *StaffService) AllContent() ([]repository.ContentRow, error) {
	rows, err := s.StaffRepo.FindAllContent()
	if err != nil {
		return nil, util.StoreError("staff content", err)
	}
	return rows, nil
}

// StudentContentHistory 某学生发布的全部问题与答案
func (s *StaffService) StudentContentHistory(studentID string) ([]repository.ContentRow, error) {
	if _, err := s.UserRepo.FindByUsername(studentID); err != nil {
		return nil, orNotFound(err, util.ErrUserNotFound, "student lookup")
	}
	rows, err := s.StaffRepo.FindStudentContent(studentID)
	if err != nil {
		return nil, util.StoreError("student content", err)
	}
	return rows, nil
}

// StudentActivityMetrics 每个学生的提问/回答计数
func (s *StaffService) StudentActivityMetrics() ([]repository.ActivityRow, error) {
	rows, err := s.StaffRepo.FindStudentActivity()
	if err != nil {
		return nil, util.StoreError("student activity", err)
	}
	return rows, nil
}

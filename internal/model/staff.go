package model

import "time"

// StaffDiscussion 员工内部讨论板
type StaffDiscussion struct {
	BaseModel
	StaffID   string `gorm:"size:100;index;not null" json:"staffId"`
	Title     string `gorm:"size:500;not null" json:"title"`
	Content   string `gorm:"size:2000" json:"content"`
	IsPrivate bool   `gorm:"default:true" json:"isPrivate"`
}

func (StaffDiscussion) TableName() string {
	return "staff_discussions"
}

type EscalationStatus string

const (
	EscalationOpen       EscalationStatus = "OPEN"
	EscalationInProgress EscalationStatus = "IN_PROGRESS"
	EscalationResolved   EscalationStatus = "RESOLVED"
)

// StaffEscalation 员工针对某个学生问题发起的升级处理请求
type StaffEscalation struct {
	BaseModel
	StaffID     string           `gorm:"size:100;index;not null" json:"staffId"`
	StudentID   string           `gorm:"size:100;index" json:"studentId"`
	IssueType   string           `gorm:"size:100" json:"issueType"`
	Description string           `gorm:"size:2000" json:"description"`
	Priority    string           `gorm:"size:50;default:'MEDIUM'" json:"priority"`
	Status      EscalationStatus `gorm:"size:50;default:'OPEN'" json:"status"`
	ResolvedAt  *time.Time       `json:"resolvedAt"`
	ResolvedBy  string           `gorm:"size:100" json:"resolvedBy"`
}

func (StaffEscalation) TableName() string {
	return "staff_escalations"
}

// ModerationRecord 内容审核日志
type ModerationRecord struct {
	BaseModel
	ModeratorID string `gorm:"size:100;index;not null" json:"moderatorId"`
	ContentType string `gorm:"size:50;not null" json:"contentType"` // QUESTION, ANSWER, REVIEW
	ContentID   uint   `gorm:"index;not null" json:"contentId"`
	Action      string `gorm:"size:100;not null" json:"action"`
	Reason      string `gorm:"size:500" json:"reason"`
}

func (ModerationRecord) TableName() string {
	return "moderation_records"
}

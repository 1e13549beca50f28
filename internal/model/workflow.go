package model

import "time"

type RoleRequestStatus string

const (
	RoleRequestPending  RoleRequestStatus = "PENDING"
	RoleRequestApproved RoleRequestStatus = "APPROVED"
	RoleRequestRejected RoleRequestStatus = "REJECTED"
)

// RoleRequest 学生申请晋升 reviewer 的流程记录，状态一旦离开 PENDING 即终态
type RoleRequest struct {
	UUIDBase
	StudentID  string            `gorm:"size:100;index;not null" json:"studentId"`
	Status     RoleRequestStatus `gorm:"size:50;default:'PENDING'" json:"status"`
	ReviewedBy string            `gorm:"size:100" json:"reviewedBy"`
	ReviewedAt *time.Time        `json:"reviewedAt"`
}

func (RoleRequest) TableName() string {
	return "role_requests"
}

// ReviewerScorecard 评审人绩效记录，trust_score 每次写入时重算
type ReviewerScorecard struct {
	ReviewerID        string    `gorm:"primaryKey;size:100" json:"reviewerId"`
	ReviewCount       int       `gorm:"default:0" json:"reviewCount"`
	AverageRating     float64   `gorm:"default:0" json:"averageRating"`
	HelpfulnessScore  float64   `gorm:"default:0" json:"helpfulnessScore"`
	ResponseTimeHours float64   `gorm:"default:0" json:"responseTimeHours"`
	TrustScore        float64   `gorm:"default:0" json:"trustScore"`
	LastUpdated       time.Time `gorm:"autoUpdateTime" json:"lastUpdated"`
}

func (ReviewerScorecard) TableName() string {
	return "reviewer_scorecards"
}

type AdminRequestStatus string

const (
	AdminRequestOpen     AdminRequestStatus = "OPEN"
	AdminRequestClosed   AdminRequestStatus = "CLOSED"
	AdminRequestReopened AdminRequestStatus = "REOPENED"
)

// AdminRequest 讲师提交的管理请求。重新打开不修改原行，而是插入一条
// 指向原请求的新行，形成只向前的 lineage 链。
type AdminRequest struct {
	BaseModel
	InstructorID      string             `gorm:"size:100;index;not null" json:"instructorId"`
	Description       string             `gorm:"size:1000" json:"description"`
	Status            AdminRequestStatus `gorm:"size:50;default:'OPEN'" json:"status"`
	ClosedAt          *time.Time         `json:"closedAt"`
	ClosedBy          string             `gorm:"size:100" json:"closedBy"`
	OriginalRequestID *uint              `gorm:"index" json:"originalRequestId"`
}

func (AdminRequest) TableName() string {
	return "admin_requests"
}

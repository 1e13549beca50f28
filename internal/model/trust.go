package model

const DefaultTrustWeight = 3

// TrustedReviewer 学生指定的受信评审人，带权重的有向边
type TrustedReviewer struct {
	BaseModel
	Username        string `gorm:"size:100;uniqueIndex:idx_owner_trusted;not null" json:"username"`
	TrustedUsername string `gorm:"size:100;uniqueIndex:idx_owner_trusted;not null" json:"trustedUsername"`
	Weight          int    `gorm:"default:3" json:"weight"`
}

func (TrustedReviewer) TableName() string {
	return "trusted_reviewers"
}

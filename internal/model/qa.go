package model

type Question struct {
	BaseModel
	// 非空表示这是一条针对父问题的澄清
	ParentID *uint    `gorm:"index" json:"parentId"`
	Username string   `gorm:"size:100;index;not null" json:"username"`
	Title    string   `gorm:"size:255;not null" json:"title"`
	Text     string   `gorm:"type:text;not null" json:"text"`
	Resolved bool     `gorm:"default:false" json:"resolved"`
	Views    int      `gorm:"default:0" json:"views"`
	Answers  []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
	Reviews  []Review `gorm:"foreignKey:QuestionID" json:"reviews,omitempty"`
	// 标准遍历只挂第一条（最小 id）澄清，形成单链
	Clarification *Question `gorm:"-" json:"clarification,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

func (q *Question) IsClarification() bool {
	return q.ParentID != nil
}

type Answer struct {
	BaseModel
	QuestionID uint     `gorm:"index;not null" json:"questionId"`
	Username   string   `gorm:"size:100;index;not null" json:"username"`
	Text       string   `gorm:"type:text;not null" json:"text"`
	Resolves   bool     `gorm:"default:false" json:"resolves"`
	Reviews    []Review `gorm:"foreignKey:AnswerID" json:"reviews,omitempty"`
}

func (Answer) TableName() string {
	return "answers"
}

// Review 针对问题或答案之一的评审，两个目标互斥
type Review struct {
	BaseModel
	Text       string `gorm:"type:text;not null" json:"text"`
	Reviewer   string `gorm:"size:100;index;not null" json:"reviewer"`
	QuestionID *uint  `gorm:"index" json:"questionId"`
	AnswerID   *uint  `gorm:"index" json:"answerId"`
}

func (Review) TableName() string {
	return "reviews"
}

// HasExactlyOneTarget 互斥目标校验
func (r *Review) HasExactlyOneTarget() bool {
	return (r.QuestionID != nil) != (r.AnswerID != nil)
}

package repository

import (
	"course_qa_backend/internal/model"

	"gorm.io/gorm"
)

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) CreateDiscussion(d *model.StaffDiscussion) error {
	return r.DB.Create(d).Error
}

func (r *StaffRepository) FindDiscussions() ([]model.StaffDiscussion, error) {
	var list []model.StaffDiscussion
	err := r.DB.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *StaffRepository) CreateEscalation(e *model.StaffEscalation) error {
	return r.DB.Create(e).Error
}

func (r *StaffRepository) FindEscalation(id uint) (*model.StaffEscalation, error) {
	var e model.StaffEscalation
	err := r.DB.First(&e, id).Error
	return &e, err
}

func (r *StaffRepository) FindOpenEscalations() ([]model.StaffEscalation, error) {
	var list []model.StaffEscalation
	err := r.DB.Where("status <> ?", model.EscalationResolved).
		Order("priority DESC, created_at ASC").Find(&list).Error
	return list, err
}

func (r *StaffRepository) CreateModerationRecord(m *model.ModerationRecord) error {
	return r.DB.Create(m).Error
}

func (r *StaffRepository) FindModerationHistory(contentType string, contentID uint) ([]model.ModerationRecord, error) {
	var list []model.ModerationRecord
	err := r.DB.Where("content_type = ? AND content_id = ?", contentType, contentID).
		Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

// ContentRow 员工内容面板的统一行：主问题与答案混排
type ContentRow struct {
	ContentType string `json:"contentType"` // QUESTION or ANSWER
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	Username    string `json:"username"`
	UserName    string `json:"userDisplayName"`
	Resolved    bool   `json:"resolved"`
}

func (r *StaffRepository) FindAllContent() ([]ContentRow, error) {
	var rows []ContentRow

	var questions []ContentRow
	err := r.DB.Model(&model.Question{}).
		Select("'QUESTION' AS content_type, questions.id, questions.title, questions.text, questions.username, users.name AS user_name, questions.resolved").
		Joins("JOIN users ON users.username = questions.username").
		Where("questions.parent_id IS NULL").
		Order("questions.id ASC").
		Scan(&questions).Error
	if err != nil {
		return nil, err
	}
	rows = append(rows, questions...)

	var answers []ContentRow
	err = r.DB.Model(&model.Answer{}).
		Select("'ANSWER' AS content_type, answers.id, questions.title, answers.text, answers.username, users.name AS user_name, questions.resolved").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Joins("JOIN users ON users.username = answers.username").
		Order("answers.id ASC").
		Scan(&answers).Error
	if err != nil {
		return nil, err
	}
	return append(rows, answers...), nil
}

func (r *StaffRepository) FindStudentContent(studentID string) ([]ContentRow, error) {
	var rows []ContentRow

	var questions []ContentRow
	err := r.DB.Model(&model.Question{}).
		Select("'QUESTION' AS content_type, id, title, text, username, resolved").
		Where("username = ? AND parent_id IS NULL", studentID).
		Order("id ASC").
		Scan(&questions).Error
	if err != nil {
		return nil, err
	}
	rows = append(rows, questions...)

	var answers []ContentRow
	err = r.DB.Model(&model.Answer{}).
		Select("'ANSWER' AS content_type, answers.id, questions.title, answers.text, answers.username, questions.resolved").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.username = ?", studentID).
		Order("answers.id ASC").
		Scan(&answers).Error
	if err != nil {
		return nil, err
	}
	return append(rows, answers...), nil
}

// ActivityRow 学生活跃度统计
type ActivityRow struct {
	Username      string `json:"username"`
	Name          string `json:"name"`
	QuestionCount int64  `json:"questionCount"`
	AnswerCount   int64  `json:"answerCount"`
}

func (r *StaffRepository) FindStudentActivity() ([]ActivityRow, error) {
	var rows []ActivityRow
	err := r.DB.Model(&model.User{}).
		Select(`users.username, users.name,
			(SELECT COUNT(*) FROM questions WHERE questions.username = users.username AND questions.parent_id IS NULL) AS question_count,
			(SELECT COUNT(*) FROM answers WHERE answers.username = users.username) AS answer_count`).
		Order("users.username ASC").
		Scan(&rows).Error
	return rows, err
}

package repository

import (
	"course_qa_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

// FindRoots 返回所有主问题（无父问题），按创建顺序
func (r *QuestionRepository) FindRoots() ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("parent_id IS NULL").Order("id ASC").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) FindByAuthor(username string) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("username = ? AND parent_id IS NULL", username).
		Order("id DESC").Find(&qs).Error
	return qs, err
}

// FirstChild 取最小 id 的直接澄清，没有则返回 gorm.ErrRecordNotFound
func (r *QuestionRepository) FirstChild(parentID uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.Where("parent_id = ?", parentID).Order("id ASC").First(&q).Error
	return &q, err
}

// Children 父问题的全部直接澄清，按 id 升序
func (r *QuestionRepository) Children(parentID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("parent_id = ?", parentID).Order("id ASC").Find(&qs).Error
	return qs, err
}

// FindAnswers 某问题的全部答案，各自带评审，按插入顺序
func (r *QuestionRepository) FindAnswers(questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.DB.Where("question_id = ?", questionID).Order("id ASC").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.id ASC")
		}).
		Find(&answers).Error
	return answers, err
}

func (r *QuestionRepository) IncrementViews(id uint) error {
	return r.DB.Model(&model.Question{}).Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/repository"
	"course_qa_backend/internal/util"
)

// QuestionService 负责问题/澄清的发布、检索与解决状态。
// 澄清通过 parent_id 挂在父问题下；标准遍历每层只取最小 id 的
// 那条澄清，形成单链而不是整棵树。
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	AnswerRepo   *repository.AnswerRepository
	ReviewRepo   *repository.ReviewRepository
	Redis        *redis.Client
}

func NewQuestionService(
	questionRepo *repository.QuestionRepository,
	answerRepo *repository.AnswerRepository,
	reviewRepo *repository.ReviewRepository,
	rdb *redis.Client,
) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
		ReviewRepo:   reviewRepo,
		Redis:        rdb,
	}
}

type QuestionRequest struct {
	Title string `json:"title" binding:"required"`
	Text  string `json:"text" binding:"required"`
}

type AnswerRequest struct {
	Text string `json:"text" binding:"required"`
}

// Ask 发布主问题，返回生成的 id
func (s *QuestionService) Ask(author, title, text string) (uint, error) {
	q := &model.Question{
		Username: author,
		Title:    title,
		Text:     text,
	}
	if err := s.QuestionRepo.Create(q); err != nil {
		return 0, util.StoreError("question create", err)
	}
	return q.ID, nil
}

// Clarify 在父问题下发布澄清，父问题不存在返回 NotFound
func (s *QuestionService) Clarify(parentID uint, author, title, text string) (uint, error) {
	q := &model.Question{
		ParentID: &parentID,
		Username: author,
		Title:    title,
		Text:     text,
	}
	err := s.QuestionRepo.DB.Transaction(func(tx *gorm.DB) error {
		var parent model.Question
		if err := tx.First(&parent, parentID).Error; err != nil {
			return orNotFound(err, util.ErrQuestionNotFound, "clarify parent lookup")
		}
		if err := tx.Create(q).Error; err != nil {
			return util.StoreError("clarification create", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return q.ID, nil
}

// Answer 回答指定问题，问题不存在返回 NotFound
func (s *QuestionService) Answer(questionID uint, author, text string) (uint, error) {
	a := &model.Answer{
		QuestionID: questionID,
		Username:   author,
		Text:       text,
	}
	err := s.QuestionRepo.DB.Transaction(func(tx *gorm.DB) error {
		var q model.Question
		if err := tx.First(&q, questionID).Error; err != nil {
			return orNotFound(err, util.ErrQuestionNotFound, "answer question lookup")
		}
		if err := tx.Create(a).Error; err != nil {
			return util.StoreError("answer create", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return a.ID, nil
}

// Get 加载问题详情：答案（各自带评审）、问题评审，以及沿最小 id
// 递归挂载的澄清单链
func (s *QuestionService) Get(id uint) (*model.Question, error) {
	return s.loadThread(id)
}

func (s *QuestionService) loadThread(id uint) (*model.Question, error) {
	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, orNotFound(err, util.ErrQuestionNotFound, "question lookup")
	}

	if q.Answers, err = s.QuestionRepo.FindAnswers(q.ID); err != nil {
		return nil, util.StoreError("question answers", err)
	}
	if q.Reviews, err = s.ReviewRepo.FindForQuestion(q.ID); err != nil {
		return nil, util.StoreError("question reviews", err)
	}

	child, err := s.QuestionRepo.FirstChild(q.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return q, nil
		}
		return nil, util.StoreError("first clarification", err)
	}
	if q.Clarification, err = s.loadThread(child.ID); err != nil {
		return nil, err
	}
	return q, nil
}

// ListRoots 所有主问题，各自带答案和澄清链
func (s *QuestionService) ListRoots() ([]model.Question, error) {
	roots, err := s.QuestionRepo.FindRoots()
	if err != nil {
		return nil, util.StoreError("question roots", err)
	}
	for i := range roots {
		if roots[i].Answers, err = s.QuestionRepo.FindAnswers(roots[i].ID); err != nil {
			return nil, util.StoreError("question answers", err)
		}
		child, err := s.QuestionRepo.FirstChild(roots[i].ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, util.StoreError("first clarification", err)
		}
		if roots[i].Clarification, err = s.loadThread(child.ID); err != nil {
			return nil, err
		}
	}
	return roots, nil
}

// ListClarifications 父问题的全部直接澄清，按 id 升序。
// 与 Get 的单链遍历不同，这里暴露完整的邻接关系。
func (s *QuestionService) ListClarifications(parentID uint) ([]model.Question, error) {
	if _, err := s.QuestionRepo.FindByID(parentID); err != nil {
		return nil, orNotFound(err, util.ErrQuestionNotFound, "clarification parent lookup")
	}
	children, err := s.QuestionRepo.Children(parentID)
	if err != nil {
		return nil, util.StoreError("clarification children", err)
	}
	return children, nil
}

func (s *QuestionService) ListByAuthor(author string) ([]model.Question, error) {
	qs, err := s.QuestionRepo.FindByAuthor(author)
	if err != nil {
		return nil, util.StoreError("questions by author", err)
	}
	return qs, nil
}

// Update 原地修改标题和内容，id 不存在返回 false
func (s *QuestionService) Update(id uint, newTitle, newText string) (bool, error) {
	found := false
	err := s.QuestionRepo.DB.Transaction(func(tx *gorm.DB) error {
		var q model.Question
		if err := tx.First(&q, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return util.StoreError("question lookup", err)
		}
		found = true
		return tx.Model(&q).Updates(map[string]interface{}{
			"title": newTitle,
			"text":  newText,
		}).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// SetResolved 问题已解决标志，可反复切换，与答案的 resolves 互不联动
func (s *QuestionService) SetResolved(id uint, resolved bool) error {
	return s.QuestionRepo.DB.Transaction(func(tx *gorm.DB) error {
		var q model.Question
		if err := tx.First(&q, id).Error; err != nil {
			return orNotFound(err, util.ErrQuestionNotFound, "question lookup")
		}
		return tx.Model(&q).Update("resolved", resolved).Error
	})
}

// SetAnswerResolves 答案的 resolves 是每条答案独立的布尔开关，
// 同一问题允许多条答案同时置位，互不清除
func (s *QuestionService) SetAnswerResolves(answerID uint, resolves bool) error {
	return s.AnswerRepo.DB.Transaction(func(tx *gorm.DB) error {
		var a model.Answer
		if err := tx.First(&a, answerID).Error; err != nil {
			return orNotFound(err, util.ErrAnswerNotFound, "answer lookup")
		}
		return tx.Model(&a).Update("resolves", resolves).Error
	})
}

// TrackView 阅读量去重计数，同一查看者 10 分钟内只记一次
func (s *QuestionService) TrackView(id uint, viewerKey string) {
	if s.Redis == nil || viewerKey == "" {
		return
	}
	key := fmt.Sprintf("question_v:%d:%s", id, viewerKey)
	ctx := context.Background()
	isNewVisit, _ := s.Redis.SetNX(ctx, key, "1", 10*time.Minute).Result()
	if isNewVisit {
		go s.QuestionRepo.IncrementViews(id)
	}
}

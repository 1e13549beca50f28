package service

import (
	"gorm.io/gorm"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/repository"
	"course_qa_backend/internal/util"
)

// ReviewService 管理针对问题或答案的评审。目标互斥是硬性不变量：
// 每条评审恰好指向问题和答案中的一个，另一个字段显式为空。
type ReviewService struct {
	ReviewRepo *repository.ReviewRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{ReviewRepo: reviewRepo}
}

type ReviewRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create 校验目标互斥与目标存在性后插入
func (s *ReviewService) Create(review *model.Review) error {
	if !review.HasExactlyOneTarget() {
		return util.ErrReviewTargetInvalid
	}
	return s.ReviewRepo.DB.Transaction(func(tx *gorm.DB) error {
		if review.QuestionID != nil {
			var q model.Question
			if err := tx.First(&q, *review.QuestionID).Error; err != nil {
				return orNotFound(err, util.ErrQuestionNotFound, "review question lookup")
			}
		} else {
			var a model.Answer
			if err := tx.First(&a, *review.AnswerID).Error; err != nil {
				return orNotFound(err, util.ErrAnswerNotFound, "review answer lookup")
			}
		}
		if err := tx.Create(review).Error; err != nil {
			return util.StoreError("review create", err)
		}
		return nil
	})
}

func (s *ReviewService) ReviewQuestion(questionID uint, reviewer, text string) (uint, error) {
	review := &model.Review{
		Text:       text,
		Reviewer:   reviewer,
		QuestionID: &questionID,
	}
	if err := s.Create(review); err != nil {
		return 0, err
	}
	return review.ID, nil
}

func (s *ReviewService) ReviewAnswer(answerID uint, reviewer, text string) (uint, error) {
	review := &model.Review{
		Text:     text,
		Reviewer: reviewer,
		AnswerID: &answerID,
	}
	if err := s.Create(review); err != nil {
		return 0, err
	}
	return review.ID, nil
}

func (s *ReviewService) ListForQuestion(questionID uint) ([]model.Review, error) {
	reviews, err := s.ReviewRepo.FindForQuestion(questionID)
	if err != nil {
		return nil, util.StoreError("reviews for question", err)
	}
	return reviews, nil
}

func (s *ReviewService) ListForAnswer(answerID uint) ([]model.Review, error) {
	reviews, err := s.ReviewRepo.FindForAnswer(answerID)
	if err != nil {
		return nil, util.StoreError("reviews for answer", err)
	}
	return reviews, nil
}

func (s *ReviewService) ListByReviewer(username string) ([]model.Review, error) {
	reviews, err := s.ReviewRepo.FindByReviewer(username)
	if err != nil {
		return nil, util.StoreError("reviews by reviewer", err)
	}
	return reviews, nil
}

func (s *ReviewService) Update(reviewID uint, newText string) error {
	return s.ReviewRepo.DB.Transaction(func(tx *gorm.DB) error {
		var review model.Review
		if err := tx.First(&review, reviewID).Error; err != nil {
			return orNotFound(err, util.ErrReviewNotFound, "review lookup")
		}
		return tx.Model(&review).Update("text", newText).Error
	})
}

func (s *ReviewService) Delete(reviewID uint) error {
	return s.ReviewRepo.DB.Transaction(func(tx *gorm.DB) error {
		var review model.Review
		if err := tx.First(&review, reviewID).Error; err != nil {
			return orNotFound(err, util.ErrReviewNotFound, "review lookup")
		}
		return tx.Delete(&review).Error
	})
}

package service

import (
	"errors"

	"gorm.io/gorm"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/repository"
	"course_qa_backend/internal/util"
)

// ScorecardService 聚合评审人绩效并推导信任分。
// 每个评审人一张记分卡，每次写入重算 trust_score。
type ScorecardService struct {
	ScorecardRepo *repository.ScorecardRepository
}

func NewScorecardService(scorecardRepo *repository.ScorecardRepository) *ScorecardService {
	return &ScorecardService{ScorecardRepo: scorecardRepo}
}

type ScorecardRequest struct {
	ReviewCount       int     `json:"reviewCount"`
	AverageRating     float64 `json:"averageRating"`
	HelpfulnessScore  float64 `json:"helpfulnessScore"`
	ResponseTimeHours float64 `json:"responseTimeHours"`
}

// TrustScore 信任分公式。响应时间 24 小时内因子封顶 1.0，
// 之后按 48/h 衰减；24 小时边界处不连续，照原样保留，不做平滑。
func TrustScore(averageRating, helpfulnessScore, responseTimeHours float64) float64 {
	responseFactor := 1.0
	if responseTimeHours >= 24 {
		responseFactor = 48.0 / responseTimeHours
	}
	return 0.4*averageRating + 0.3*helpfulnessScore + 0.3*responseFactor
}

// Upsert 以 reviewerID 为键 create-or-replace
func (s *ScorecardService) Upsert(reviewerID string, req ScorecardRequest) (*model.ReviewerScorecard, error) {
	card := &model.ReviewerScorecard{
		ReviewerID:        reviewerID,
		ReviewCount:       req.ReviewCount,
		AverageRating:     req.AverageRating,
		HelpfulnessScore:  req.HelpfulnessScore,
		ResponseTimeHours: req.ResponseTimeHours,
		TrustScore:        TrustScore(req.AverageRating, req.HelpfulnessScore, req.ResponseTimeHours),
	}

	err := s.ScorecardRepo.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.ReviewerScorecard
		err := tx.Where("reviewer_id = ?", reviewerID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(card).Error; err != nil {
				return util.StoreError("scorecard create", err)
			}
			return nil
		}
		if err != nil {
			return util.StoreError("scorecard lookup", err)
		}
		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"review_count":        card.ReviewCount,
			"average_rating":      card.AverageRating,
			"helpfulness_score":   card.HelpfulnessScore,
			"response_time_hours": card.ResponseTimeHours,
			"trust_score":         card.TrustScore,
		}).Error; err != nil {
			return util.StoreError("scorecard update", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *ScorecardService) Get(reviewerID string) (*model.ReviewerScorecard, error) {
	card, err := s.ScorecardRepo.FindByReviewer(reviewerID)
	if err != nil {
		return nil, orNotFound(err, util.ErrScorecardNotFound, "scorecard lookup")
	}
	return card, nil
}

// ListAll 按 trust_score 降序
func (s *ScorecardService) ListAll() ([]model.ReviewerScorecard, error) {
	cards, err := s.ScorecardRepo.FindAll()
	if err != nil {
		return nil, util.StoreError("scorecards", err)
	}
	return cards, nil
}

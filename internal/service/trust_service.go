package service

import (
	"errors"

	"gorm.io/gorm"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/repository"
	"course_qa_backend/internal/util"
)

// TrustService 维护学生各自持有的带权受信评审人图。
// (owner, trusted) 二元组唯一，upsert 是改权重而不是加新边。
type TrustService struct {
	TrustRepo *repository.TrustedReviewerRepository
	UserRepo  *repository.UserRepository
}

func NewTrustService(trustRepo *repository.TrustedReviewerRepository, userRepo *repository.UserRepository) *TrustService {
	return &TrustService{
		TrustRepo: trustRepo,
		UserRepo:  userRepo,
	}
}

type TrustEdgeRequest struct {
	TrustedUsername string `json:"trustedUsername" binding:"required"`
	Weight          int    `json:"weight"`
}

// Upsert 建边或覆盖权重。weight 传 0 表示未指定，取默认值 3；
// 超出 [1,10] 返回 Validation 错误。双方用户必须存在。
func (s *TrustService) Upsert(owner, trusted string, weight int) error {
	if weight == 0 {
		weight = model.DefaultTrustWeight
	}
	if weight < 1 || weight > 10 {
		return util.ErrTrustWeightOutOfRange
	}

	return s.TrustRepo.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("username IN ?", []string{owner, trusted}).
			Count(&count).Error; err != nil {
			return util.StoreError("trust user lookup", err)
		}
		if owner == trusted {
			if count < 1 {
				return util.ErrUserNotFound
			}
		} else if count < 2 {
			return util.ErrUserNotFound
		}

		// 先更新已有边，没有命中再插入（与并发写者在同一事务内串行化）
		result := tx.Model(&model.TrustedReviewer{}).
			Where("username = ? AND trusted_username = ?", owner, trusted).
			Update("weight", weight)
		if result.Error != nil {
			return util.StoreError("trust edge update", result.Error)
		}
		if result.RowsAffected > 0 {
			return nil
		}

		var existing model.TrustedReviewer
		err := tx.Where("username = ? AND trusted_username = ?", owner, trusted).
			First(&existing).Error
		if err == nil {
			// 权重本来就等于目标值，更新命中 0 行
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return util.StoreError("trust edge lookup", err)
		}

		edge := &model.TrustedReviewer{
			Username:        owner,
			TrustedUsername: trusted,
			Weight:          weight,
		}
		if err := tx.Create(edge).Error; err != nil {
			return util.StoreError("trust edge create", err)
		}
		return nil
	})
}

func (s *TrustService) Remove(owner, trusted string) error {
	rows, err := s.TrustRepo.Delete(owner, trusted)
	if err != nil {
		return util.StoreError("trust edge delete", err)
	}
	if rows == 0 {
		return util.ErrTrustEdgeNotFound
	}
	return nil
}

// List 返回 owner 的全部受信边，权重降序、用户名升序
func (s *TrustService) List(owner string) ([]model.TrustedReviewer, error) {
	edges, err := s.TrustRepo.FindByOwner(owner)
	if err != nil {
		return nil, util.StoreError("trust edges", err)
	}
	return edges, nil
}

// ListEffective 在 List 的基础上过滤掉当前不持有 reviewer 角色的用户。
// 边本身保留，角色恢复后重新可见。
func (s *TrustService) ListEffective(owner string) ([]model.User, error) {
	edges, err := s.TrustRepo.FindByOwner(owner)
	if err != nil {
		return nil, util.StoreError("trust edges", err)
	}

	var users []model.User
	for _, edge := range edges {
		user, err := s.UserRepo.FindByUsername(edge.TrustedUsername)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, util.StoreError("trusted user lookup", err)
		}
		// 角色标签整词匹配，不做子串扫描
		if user.HasRole(model.RoleReviewer) {
			user.Password = ""
			users = append(users, *user)
		}
	}
	return users, nil
}

func (s *TrustService) WeightOf(owner, trusted string) (int, error) {
	edge, err := s.TrustRepo.FindEdge(owner, trusted)
	if err != nil {
		return 0, orNotFound(err, util.ErrTrustEdgeNotFound, "trust edge lookup")
	}
	return edge.Weight, nil
}

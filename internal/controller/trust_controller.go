package controller

import (
	"course_qa_backend/internal/service"
	"course_qa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TrustController struct {
	TrustService *service.TrustService
}

func NewTrustController(trustService *service.TrustService) *TrustController {
	return &TrustController{TrustService: trustService}
}

// Upsert godoc
// @Summary 添加或更新信任评审人
// @Description 同一对 (owner, trusted) 只保留一条边，权重整体覆盖；weight 省略时取默认值 3
// @Tags 信任
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.TrustEdgeRequest true "信任边"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "权重超出 [1,10]"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/trusted-reviewers [put]
func (c *TrustController) Upsert(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.TrustEdgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TrustService.Upsert(user.Username, req.TrustedUsername, req.Weight); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Remove godoc
// @Summary 移除信任评审人
// @Tags 信任
// @Produce json
// @Security BearerAuth
// @Param username path string true "被信任用户名"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "信任边不存在"
// @Router /api/trusted-reviewers/{username} [delete]
func (c *TrustController) Remove(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.TrustService.Remove(user.Username, ctx.Param("username")); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// List godoc
// @Summary 信任评审人列表
// @Description 权重降序，同权重按用户名升序
// @Tags 信任
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/trusted-reviewers [get]
func (c *TrustController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	edges, err := c.TrustService.List(user.Username)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"trustedReviewers": edges})
}

// ListEffective godoc
// @Summary 当前有效的信任评审人
// @Description 过滤掉当前不再持有 reviewer 角色的用户，底层边不删除
// @Tags 信任
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/trusted-reviewers/effective [get]
func (c *TrustController) ListEffective(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	reviewers, err := c.TrustService.ListEffective(user.Username)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"reviewers": reviewers})
}

// Weight godoc
// @Summary 查询单条信任边权重
// @Tags 信任
// @Produce json
// @Security BearerAuth
// @Param username path string true "被信任用户名"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "信任边不存在"
// @Router /api/trusted-reviewers/{username} [get]
func (c *TrustController) Weight(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	weight, err := c.TrustService.WeightOf(user.Username, ctx.Param("username"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"weight": weight})
}

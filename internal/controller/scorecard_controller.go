package controller

import (
	"course_qa_backend/internal/service"
	"course_qa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScorecardController struct {
	ScorecardService *service.ScorecardService
}

func NewScorecardController(scorecardService *service.ScorecardService) *ScorecardController {
	return &ScorecardController{ScorecardService: scorecardService}
}

// Upsert godoc
// @Summary 写入评审人记分卡
// @Description 以 reviewer id 为键整体替换，trust_score 每次写入重算
// @Tags 记分卡
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "评审人用户名"
// @Param body body service.ScorecardRequest true "绩效输入"
// @Success 200 {object} util.Response
// @Router /api/scorecards/{username} [put]
func (c *ScorecardController) Upsert(ctx *gin.Context) {
	var req service.ScorecardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	card, err := c.ScorecardService.Upsert(ctx.Param("username"), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, card)
}

// Get godoc
// @Summary 查询记分卡
// @Tags 记分卡
// @Produce json
// @Security BearerAuth
// @Param username path string true "评审人用户名"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "记分卡不存在"
// @Router /api/scorecards/{username} [get]
func (c *ScorecardController) Get(ctx *gin.Context) {
	card, err := c.ScorecardService.Get(ctx.Param("username"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, card)
}

// ListAll godoc
// @Summary 记分卡排行
// @Description 全部记分卡按 trust_score 降序
// @Tags 记分卡
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/scorecards [get]
func (c *ScorecardController) ListAll(ctx *gin.Context) {
	cards, err := c.ScorecardService.ListAll()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"scorecards": cards})
}

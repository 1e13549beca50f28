package controller

import (
	"course_qa_backend/internal/service"
	"course_qa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService *service.ReviewService
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{ReviewService: reviewService}
}

// ReviewQuestion godoc
// @Summary 评审问题
// @Tags 评审
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "问题 ID"
// @Param body body service.ReviewRequest true "评审内容"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response "问题不存在"
// @Router /api/questions/{id}/reviews [post]
func (c *ReviewController) ReviewQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questionID := util.MustParseUint(ctx.Param("id"))
	id, err := c.ReviewService.ReviewQuestion(questionID, user.Username, req.Text)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"id": id})
}

// ReviewAnswer godoc
// @Summary 评审答案
// @Tags 评审
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "答案 ID"
// @Param body body service.ReviewRequest true "评审内容"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response "答案不存在"
// @Router /api/answers/{id}/reviews [post]
func (c *ReviewController) ReviewAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answerID := util.MustParseUint(ctx.Param("id"))
	id, err := c.ReviewService.ReviewAnswer(answerID, user.Username, req.Text)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"id": id})
}

// ListForQuestion godoc
// @Summary 问题的评审列表
// @Tags 评审
// @Produce json
// @Security BearerAuth
// @Param id path int true "问题 ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id}/reviews [get]
func (c *ReviewController) ListForQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	reviews, err := c.ReviewService.ListForQuestion(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"reviews": reviews})
}

// ListForAnswer godoc
// @Summary 答案的评审列表
// @Tags 评审
// @Produce json
// @Security BearerAuth
// @Param id path int true "答案 ID"
// @Success 200 {object} util.Response
// @Router /api/answers/{id}/reviews [get]
func (c *ReviewController) ListForAnswer(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	reviews, err := c.ReviewService.ListForAnswer(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"reviews": reviews})
}

// ListMine godoc
// @Summary 我发布的评审
// @Tags 评审
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/reviews/mine [get]
func (c *ReviewController) ListMine(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	reviews, err := c.ReviewService.ListByReviewer(user.Username)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"reviews": reviews})
}

// Update godoc
// @Summary 编辑评审
// @Tags 评审
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "评审 ID"
// @Param body body service.ReviewRequest true "新内容"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reviews/{id} [put]
func (c *ReviewController) Update(ctx *gin.Context) {
	var req service.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	if err := c.ReviewService.Update(id, req.Text); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Delete godoc
// @Summary 删除评审
// @Tags 评审
// @Produce json
// @Security BearerAuth
// @Param id path int true "评审 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reviews/{id} [delete]
func (c *ReviewController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if err := c.ReviewService.Delete(id); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

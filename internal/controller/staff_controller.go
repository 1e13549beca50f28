package controller

import (
	"course_qa_backend/internal/service"
	"course_qa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	StaffService *service.StaffService
}

func NewStaffController(staffService *service.StaffService) *StaffController {
	return &StaffController{StaffService: staffService}
}

// PostDiscussion godoc
// @Summary 发布员工内部讨论
// @Tags 员工
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.DiscussionRequest true "讨论内容"
// @Success 201 {object} util.Response
// @Router /api/staff/discussions [post]
func (c *StaffController) PostDiscussion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.DiscussionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.StaffService.PostDiscussion(user.Username, req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"id": id})
}

// ListDiscussions godoc
// @Summary 员工讨论列表
// @Tags 员工
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/staff/discussions [get]
func (c *StaffController) ListDiscussions(ctx *gin.Context) {
	list, err := c.StaffService.ListDiscussions()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"discussions": list})
}

// CreateEscalation godoc
// @Summary 创建升级处理请求
// @Tags 员工
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.EscalationRequest true "升级内容"
// @Success 201 {object} util.Response
// @Router /api/staff/escalations [post]
func (c *StaffController) CreateEscalation(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.EscalationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.StaffService.CreateEscalation(user.Username, req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"id": id})
}

// ListOpenEscalations godoc
// @Summary 未解决的升级请求
// @Tags 员工
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/staff/escalations [get]
func (c *StaffController) ListOpenEscalations(ctx *gin.Context) {
	list, err := c.StaffService.ListOpenEscalations()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"escalations": list})
}

// UpdateEscalationStatus godoc
// @Summary 更新升级请求状态
// @Tags 员工
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "升级请求 ID"
// @Param body body service.EscalationStatusRequest true "目标状态"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/staff/escalations/{id}/status [put]
func (c *StaffController) UpdateEscalationStatus(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.EscalationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	if err := c.StaffService.UpdateEscalationStatus(id, req.Status, user.Username); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// RecordModeration godoc
// @Summary 记录内容审核操作
// @Tags 员工
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ModerationRequest true "审核操作"
// @Success 201 {object} util.Response
// @Router /api/staff/moderation [post]
func (c *StaffController) RecordModeration(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ModerationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.StaffService.RecordModeration(user.Username, req); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, nil)
}

// ModerationHistory godoc
// @Summary 某条内容的审核历史
// @Tags 员工
// @Produce json
// @Security BearerAuth
// @Param type path string true "内容类型" Enums(QUESTION, ANSWER, REVIEW)
// @Param id path int true "内容 ID"
// @Success 200 {object} util.Response
// @Router /api/staff/moderation/{type}/{id} [get]
func (c *StaffController) ModerationHistory(ctx *gin.Context) {
	history, err := c.StaffService.ModerationHistory(ctx.Param("type"), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"history": history})
}

// AllContent godoc
// @Summary 内容监控面板
// @Description 全部问题与答案混排，连同作者展示名
// @Tags 员工
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/staff/content [get]
func (c *StaffController) AllContent(ctx *gin.Context) {
	rows, err := c.StaffService.AllContent()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"content": rows, "total": len(rows)})
}

// StudentContent godoc
// @Summary 单个学生的内容历史
// @Tags 员工
// @Produce json
// @Security BearerAuth
// @Param username path string true "学生用户名"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/staff/content/{username} [get]
func (c *StaffController) StudentContent(ctx *gin.Context) {
	rows, err := c.StaffService.StudentContentHistory(ctx.Param("username"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"content": rows})
}

// StudentActivity godoc
// @Summary 学生活跃度统计
// @Tags 员工
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/staff/activity [get]
func (c *StaffController) StudentActivity(ctx *gin.Context) {
	rows, err := c.StaffService.StudentActivityMetrics()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"activity": rows})
}

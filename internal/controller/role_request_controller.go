package controller

import (
	"course_qa_backend/internal/service"
	"course_qa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoleRequestController struct {
	RoleRequestService *service.RoleRequestService
}

func NewRoleRequestController(roleRequestService *service.RoleRequestService) *RoleRequestController {
	return &RoleRequestController{RoleRequestService: roleRequestService}
}

// Submit godoc
// @Summary 申请 reviewer 角色
// @Description 同一学生同时最多一条 PENDING 申请
// @Tags 角色申请
// @Produce json
// @Security BearerAuth
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response "已有待审批申请"
// @Router /api/role-requests [post]
func (c *RoleRequestController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	submitted, err := c.RoleRequestService.Submit(user.Username)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"submitted": submitted})
}

// Decide godoc
// @Summary 审批角色申请
// @Description 通过时授予 reviewer 角色；离开 PENDING 后不可再审批
// @Tags 角色申请
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "申请 ID"
// @Param body body service.DecideRequest true "审批结果"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "申请不存在"
// @Failure 409 {object} util.Response "申请已被审批"
// @Router /api/role-requests/{id}/decision [put]
func (c *RoleRequestController) Decide(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.DecideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.RoleRequestService.Decide(ctx.Param("id"), user.Username, req.Approve); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"approved": req.Approve})
}

// Status godoc
// @Summary 查询申请状态
// @Tags 角色申请
// @Produce json
// @Security BearerAuth
// @Param id path string true "申请 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/role-requests/{id} [get]
func (c *RoleRequestController) Status(ctx *gin.Context) {
	req, err := c.RoleRequestService.Status(ctx.Param("id"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, req)
}

// ListPending godoc
// @Summary 待审批申请列表
// @Description 连同学生展示名，按申请时间升序
// @Tags 角色申请
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/role-requests/pending [get]
func (c *RoleRequestController) ListPending(ctx *gin.Context) {
	rows, err := c.RoleRequestService.ListPending()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"requests": rows})
}

package controller

import (
	"course_qa_backend/internal/service"
	"course_qa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminRequestController struct {
	AdminRequestService *service.AdminRequestService
}

func NewAdminRequestController(adminRequestService *service.AdminRequestService) *AdminRequestController {
	return &AdminRequestController{AdminRequestService: adminRequestService}
}

// Create godoc
// @Summary 创建管理请求
// @Tags 管理请求
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.AdminRequestCreate true "请求描述"
// @Success 201 {object} util.Response
// @Router /api/admin-requests [post]
func (c *AdminRequestController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AdminRequestCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.AdminRequestService.Create(user.Username, req.Description)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"id": id})
}

// Close godoc
// @Summary 关闭管理请求
// @Tags 管理请求
// @Produce json
// @Security BearerAuth
// @Param id path int true "请求 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "请求不存在"
// @Failure 409 {object} util.Response "请求已关闭"
// @Router /api/admin-requests/{id}/close [put]
func (c *AdminRequestController) Close(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	if err := c.AdminRequestService.Close(id, user.Username); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Reopen godoc
// @Summary 重新打开管理请求
// @Description 以新行重新打开，原请求保持 CLOSED 不被改动
// @Tags 管理请求
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "原请求 ID"
// @Param body body service.AdminRequestReopen true "新的描述"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response "原请求不存在"
// @Failure 409 {object} util.Response "原请求未关闭"
// @Router /api/admin-requests/{id}/reopen [post]
func (c *AdminRequestController) Reopen(ctx *gin.Context) {
	var req service.AdminRequestReopen
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	newID, err := c.AdminRequestService.Reopen(id, req.Description)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"id": newID})
}

// Get godoc
// @Summary 管理请求详情
// @Tags 管理请求
// @Produce json
// @Security BearerAuth
// @Param id path int true "请求 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin-requests/{id} [get]
func (c *AdminRequestController) Get(ctx *gin.Context) {
	req, err := c.AdminRequestService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, req)
}

// ListAll godoc
// @Summary 管理请求列表
// @Tags 管理请求
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin-requests [get]
func (c *AdminRequestController) ListAll(ctx *gin.Context) {
	reqs, err := c.AdminRequestService.ListAll()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"requests": reqs})
}

// Lineage godoc
// @Summary 请求的重开链
// @Description 从指定请求沿 original_request_id 回溯
// @Tags 管理请求
// @Produce json
// @Security BearerAuth
// @Param id path int true "请求 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin-requests/{id}/lineage [get]
func (c *AdminRequestController) Lineage(ctx *gin.Context) {
	chain, err := c.AdminRequestService.Lineage(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"lineage": chain})
}

package controller

import (
	"course_qa_backend/internal/service"
	"course_qa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
	AuthService *service.AuthService
}

func NewUserController(userService *service.UserService, authService *service.AuthService) *UserController {
	return &UserController{
		UserService: userService,
		AuthService: authService,
	}
}

// Me godoc
// @Summary 当前用户信息
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/users/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	user.Password = ""
	util.Success(ctx, user)
}

// Get godoc
// @Summary 用户详情
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param username path string true "用户名"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{username} [get]
func (c *UserController) Get(ctx *gin.Context) {
	user, err := c.UserService.Get(ctx.Param("username"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// List godoc
// @Summary 用户列表
// @Description 全部用户按用户名升序，管理端使用
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.UserService.List()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"users": users, "total": len(users)})
}

// UpdateRoles godoc
// @Summary 替换用户角色集合
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "用户名"
// @Param body body service.UpdateRolesRequest true "新角色集合"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "非法角色标签"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/users/{username}/roles [put]
func (c *UserController) UpdateRoles(ctx *gin.Context) {
	var req service.UpdateRolesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.UpdateRoles(ctx.Param("username"), req.Roles); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Delete godoc
// @Summary 删除用户
// @Description 级联清除该用户的信任边、评审、角色申请和记分卡
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param username path string true "用户名"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/users/{username} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.UserService.Delete(ctx.Param("username")); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

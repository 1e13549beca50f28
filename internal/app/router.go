package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"course_qa_backend/internal/config"
	"course_qa_backend/internal/middleware"
	"course_qa_backend/internal/model"
	"course_qa_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerForumRoutes(authGroup, c)
		a.registerWorkflowRoutes(authGroup, c)
		a.registerStaffRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

// 问答、评审、信任、记分卡：论坛核心
func (a *App) registerForumRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/users/me", c.user.Me)

	// 问题与答案
	rg.POST("/questions", c.question.Ask)
	rg.GET("/questions", c.question.ListRoots)
	rg.GET("/questions/mine", c.question.ListMine)
	rg.GET("/questions/:id", c.question.Get)
	rg.PUT("/questions/:id", c.question.Update)
	rg.POST("/questions/:id/clarifications", c.question.Clarify)
	rg.GET("/questions/:id/clarifications", c.question.ListClarifications)
	rg.POST("/questions/:id/answers", c.question.Answer)
	rg.PUT("/questions/:id/resolved", c.question.SetResolved)
	rg.PUT("/answers/:id/resolves", c.question.SetAnswerResolves)

	// 评审：发布评审需要 reviewer 角色
	reviewerOnly := middleware.RoleMiddleware(model.RoleReviewer, model.RoleStaff, model.RoleInstructor)
	rg.POST("/questions/:id/reviews", reviewerOnly, c.review.ReviewQuestion)
	rg.POST("/answers/:id/reviews", reviewerOnly, c.review.ReviewAnswer)
	rg.GET("/questions/:id/reviews", c.review.ListForQuestion)
	rg.GET("/answers/:id/reviews", c.review.ListForAnswer)
	rg.GET("/reviews/mine", c.review.ListMine)
	rg.PUT("/reviews/:id", reviewerOnly, c.review.Update)
	rg.DELETE("/reviews/:id", reviewerOnly, c.review.Delete)

	// 信任评审人
	rg.PUT("/trusted-reviewers", c.trust.Upsert)
	rg.GET("/trusted-reviewers", c.trust.List)
	rg.GET("/trusted-reviewers/effective", c.trust.ListEffective)
	rg.GET("/trusted-reviewers/:username", c.trust.Weight)
	rg.DELETE("/trusted-reviewers/:username", c.trust.Remove)

	// 记分卡
	rg.GET("/scorecards", c.scorecard.ListAll)
	rg.GET("/scorecards/:username", c.scorecard.Get)
	rg.PUT("/scorecards/:username",
		middleware.RoleMiddleware(model.RoleInstructor), c.scorecard.Upsert)
}

// 角色申请与管理请求工作流
func (a *App) registerWorkflowRoutes(rg *gin.RouterGroup, c *controllers) {
	instructorOnly := middleware.RoleMiddleware(model.RoleInstructor)

	rg.POST("/role-requests", middleware.RoleMiddleware(model.RoleStudent), c.roleRequest.Submit)
	rg.GET("/role-requests/pending", instructorOnly, c.roleRequest.ListPending)
	rg.GET("/role-requests/:id", c.roleRequest.Status)
	rg.PUT("/role-requests/:id/decision", instructorOnly, c.roleRequest.Decide)

	rg.POST("/admin-requests", instructorOnly, c.adminRequest.Create)
	rg.GET("/admin-requests", c.adminRequest.ListAll)
	rg.GET("/admin-requests/:id", c.adminRequest.Get)
	rg.GET("/admin-requests/:id/lineage", c.adminRequest.Lineage)
	rg.PUT("/admin-requests/:id/close", middleware.RoleMiddleware(model.RoleAdmin), c.adminRequest.Close)
	rg.POST("/admin-requests/:id/reopen", instructorOnly, c.adminRequest.Reopen)
}

// 员工工具
func (a *App) registerStaffRoutes(rg *gin.RouterGroup, c *controllers) {
	staff := rg.Group("/staff")
	staff.Use(middleware.RoleMiddleware(model.RoleStaff, model.RoleInstructor))
	{
		staff.POST("/discussions", c.staff.PostDiscussion)
		staff.GET("/discussions", c.staff.ListDiscussions)
		staff.POST("/escalations", c.staff.CreateEscalation)
		staff.GET("/escalations", c.staff.ListOpenEscalations)
		staff.PUT("/escalations/:id/status", c.staff.UpdateEscalationStatus)
		staff.POST("/moderation", c.staff.RecordModeration)
		staff.GET("/moderation/:type/:id", c.staff.ModerationHistory)
		staff.GET("/content", c.staff.AllContent)
		staff.GET("/content/:username", c.staff.StudentContent)
		staff.GET("/activity", c.staff.StudentActivity)
	}
}

// 管理员接口
func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/users", c.user.List)
		admin.GET("/users/:username", c.user.Get)
		admin.PUT("/users/:username/roles", c.user.UpdateRoles)
		admin.DELETE("/users/:username", c.user.Delete)
	}
}

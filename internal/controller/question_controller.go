package controller

import (
	"course_qa_backend/internal/service"
	"course_qa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// Ask godoc
// @Summary 发布问题
// @Description 发布一个主问题
// @Tags 问答
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuestionRequest true "问题内容"
// @Success 201 {object} util.Response
// @Router /api/questions [post]
func (c *QuestionController) Ask(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id, err := c.QuestionService.Ask(user.Username, req.Title, req.Text)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": id})
}

// Clarify godoc
// @Summary 追加澄清问题
// @Description 针对已有问题发布澄清追问
// @Tags 问答
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "父问题 ID"
// @Param body body service.QuestionRequest true "澄清内容"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response "父问题不存在"
// @Router /api/questions/{id}/clarifications [post]
func (c *QuestionController) Clarify(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	parentID := util.MustParseUint(ctx.Param("id"))
	id, err := c.QuestionService.Clarify(parentID, user.Username, req.Title, req.Text)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": id})
}

// Answer godoc
// @Summary 回答问题
// @Tags 问答
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "问题 ID"
// @Param body body service.AnswerRequest true "答案内容"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response "问题不存在"
// @Router /api/questions/{id}/answers [post]
func (c *QuestionController) Answer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questionID := util.MustParseUint(ctx.Param("id"))
	id, err := c.QuestionService.Answer(questionID, user.Username, req.Text)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": id})
}

// Get godoc
// @Summary 问题详情
// @Description 返回问题连同答案、评审和澄清链
// @Tags 问答
// @Produce json
// @Security BearerAuth
// @Param id path int true "问题 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	question, err := c.QuestionService.Get(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	if user := util.GetUserFromContext(ctx); user != nil {
		c.QuestionService.TrackView(id, user.Username)
	}

	util.Success(ctx, question)
}

// ListRoots godoc
// @Summary 问题列表
// @Description 全部主问题，按发布顺序
// @Tags 问答
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/questions [get]
func (c *QuestionController) ListRoots(ctx *gin.Context) {
	questions, err := c.QuestionService.ListRoots()
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"questions": questions, "total": len(questions)})
}

// ListClarifications godoc
// @Summary 澄清列表
// @Description 某个问题的全部直接澄清
// @Tags 问答
// @Produce json
// @Security BearerAuth
// @Param id path int true "问题 ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id}/clarifications [get]
func (c *QuestionController) ListClarifications(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	clarifications, err := c.QuestionService.ListClarifications(id)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"clarifications": clarifications})
}

// ListMine godoc
// @Summary 我的问题
// @Tags 问答
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/questions/mine [get]
func (c *QuestionController) ListMine(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.QuestionService.ListByAuthor(user.Username)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"questions": questions})
}

// Update godoc
// @Summary 编辑问题
// @Description 更新标题和正文，问题不存在时返回 updated=false
// @Tags 问答
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "问题 ID"
// @Param body body service.QuestionRequest true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	updated, err := c.QuestionService.Update(id, req.Title, req.Text)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"updated": updated})
}

type resolvedRequest struct {
	Resolved bool `json:"resolved"`
}

// SetResolved godoc
// @Summary 标记问题解决状态
// @Description 解决标记可逆，不影响任何答案的 resolves 标记
// @Tags 问答
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "问题 ID"
// @Param body body resolvedRequest true "目标状态"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id}/resolved [put]
func (c *QuestionController) SetResolved(ctx *gin.Context) {
	var req resolvedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	if err := c.QuestionService.SetResolved(id, req.Resolved); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"resolved": req.Resolved})
}

type resolvesRequest struct {
	Resolves bool `json:"resolves"`
}

// SetAnswerResolves godoc
// @Summary 标记答案是否解决了问题
// @Description 多个答案可以同时持有 resolves 标记
// @Tags 问答
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "答案 ID"
// @Param body body resolvesRequest true "目标状态"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/answers/{id}/resolves [put]
func (c *QuestionController) SetAnswerResolves(ctx *gin.Context) {
	var req resolvesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	if err := c.QuestionService.SetAnswerResolves(id, req.Resolves); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"resolves": req.Resolves})
}

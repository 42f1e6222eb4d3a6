package controller

import (
	"codetrack_backend/internal/model"
	"codetrack_backend/internal/repository"
	"codetrack_backend/internal/service"
	"codetrack_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProblemController struct {
	ProblemService *service.ProblemService
}

func NewProblemController(problemService *service.ProblemService) *ProblemController {
	return &ProblemController{ProblemService: problemService}
}

// @Summary Record a practice attempt
// @Description Creates a problem; when isRevision is set the first spaced-repetition review is scheduled with it
// @Tags problems
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateProblemRequest true "problem payload"
// @Success 201 {object} util.Response
// @Router /api/problems [post]
func (c *ProblemController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	problem, err := c.ProblemService.Create(user.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, problem)
}

// @Summary List practice attempts
// @Tags problems
// @Produce json
// @Security ApiKeyAuth
// @Param platform query string false "platform filter"
// @Param difficulty query string false "difficulty filter" enums(easy,medium,hard)
// @Param topic query string false "topic filter"
// @Param outcome query string false "outcome filter"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/problems [get]
func (c *ProblemController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	filter := repository.ProblemFilter{
		Platform:   model.Platform(ctx.Query("platform")),
		Difficulty: model.Difficulty(ctx.Query("difficulty")),
		Topic:      ctx.Query("topic"),
		Outcome:    model.Outcome(ctx.Query("outcome")),
		Page:       page,
		Limit:      limit,
	}

	problems, total, err := c.ProblemService.List(user.UserID, filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  problems,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Get one practice attempt
// @Tags problems
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "problem ID"
// @Success 200 {object} util.Response
// @Router /api/problems/{id} [get]
func (c *ProblemController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid problem ID")
		return
	}

	problem, err := c.ProblemService.Get(user.UserID, uint(id))
	if err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, problem)
}

// @Summary Update a practice attempt
// @Tags problems
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "problem ID"
// @Param body body service.UpdateProblemRequest true "fields to update"
// @Success 200 {object} util.Response
// @Router /api/problems/{id} [put]
func (c *ProblemController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid problem ID")
		return
	}

	var req service.UpdateProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	problem, err := c.ProblemService.Update(user.UserID, uint(id), req)
	if err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, problem)
}

// @Summary Delete a practice attempt
// @Tags problems
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "problem ID"
// @Success 200 {object} util.Response
// @Router /api/problems/{id} [delete]
func (c *ProblemController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid problem ID")
		return
	}

	if err := c.ProblemService.Delete(user.UserID, uint(id)); err != nil {
		if errors.Is(err, util.ErrProblemNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "problem deleted"})
}

// @Summary Get summary stats over the full problem history
// @Tags problems
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/problems/stats [get]
func (c *ProblemController) Stats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.ProblemService.Stats(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

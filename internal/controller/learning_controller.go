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

type LearningController struct {
	LearningService *service.LearningService
}

func NewLearningController(learningService *service.LearningService) *LearningController {
	return &LearningController{LearningService: learningService}
}

// @Summary Track a learning resource
// @Tags learning
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateLearningItemRequest true "learning item payload"
// @Success 201 {object} util.Response
// @Router /api/learning-items [post]
func (c *LearningController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateLearningItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.LearningService.Create(user.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, item)
}

// @Summary List learning items
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "type filter"
// @Param status query string false "status filter"
// @Param category query string false "category filter"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/learning-items [get]
func (c *LearningController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	filter := repository.LearningItemFilter{
		Type:     model.LearningItemType(ctx.Query("type")),
		Status:   model.LearningStatus(ctx.Query("status")),
		Category: ctx.Query("category"),
		Page:     page,
		Limit:    limit,
	}

	items, total, err := c.LearningService.List(user.UserID, filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Get one learning item
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "learning item ID"
// @Success 200 {object} util.Response
// @Router /api/learning-items/{id} [get]
func (c *LearningController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid learning item ID")
		return
	}

	item, err := c.LearningService.Get(user.UserID, uint(id))
	if err != nil {
		if errors.Is(err, util.ErrLearningItemNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, item)
}

// @Summary Update a learning item
// @Description Progress reaching 100 flips the status to completed
// @Tags learning
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "learning item ID"
// @Param body body service.UpdateLearningItemRequest true "fields to update"
// @Success 200 {object} util.Response
// @Router /api/learning-items/{id} [put]
func (c *LearningController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid learning item ID")
		return
	}

	var req service.UpdateLearningItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.LearningService.Update(user.UserID, uint(id), req)
	if err != nil {
		if errors.Is(err, util.ErrLearningItemNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, item)
}

// @Summary Delete a learning item
// @Tags learning
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "learning item ID"
// @Success 200 {object} util.Response
// @Router /api/learning-items/{id} [delete]
func (c *LearningController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid learning item ID")
		return
	}

	if err := c.LearningService.Delete(user.UserID, uint(id)); err != nil {
		if errors.Is(err, util.ErrLearningItemNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "learning item deleted"})
}

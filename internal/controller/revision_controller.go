package controller

import (
	"codetrack_backend/internal/repository"
	"codetrack_backend/internal/service"
	"codetrack_backend/internal/util"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type RevisionController struct {
	RevisionService *service.RevisionService
}

func NewRevisionController(revisionService *service.RevisionService) *RevisionController {
	return &RevisionController{RevisionService: revisionService}
}

// @Summary List scheduled reviews
// @Description Ordered by ascending due date, each item carries its resolved problem or learning item
// @Tags revisions
// @Produce json
// @Security ApiKeyAuth
// @Param dueDate query string false "exact due date (YYYY-MM-DD)"
// @Param completed query bool false "completion filter"
// @Success 200 {object} util.Response
// @Router /api/revisions [get]
func (c *RevisionController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var filter repository.RevisionFilter

	if raw := ctx.Query("dueDate"); raw != "" {
		due, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			util.BadRequest(ctx, "Invalid dueDate, expected YYYY-MM-DD")
			return
		}
		filter.DueDate = &due
	}

	if raw := ctx.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			util.BadRequest(ctx, "Invalid completed flag")
			return
		}
		filter.IsCompleted = &completed
	}

	items, err := c.RevisionService.List(user.UserID, filter)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// @Summary List reviews due today or earlier
// @Tags revisions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/revisions/due [get]
func (c *RevisionController) ListDue(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	items, err := c.RevisionService.ListDue(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// @Summary Complete a review
// @Description Marks the review done and schedules the next cycle in the same transaction
// @Tags revisions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "revision item ID"
// @Success 200 {object} util.Response
// @Router /api/revisions/{id}/complete [post]
func (c *RevisionController) Complete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid revision item ID")
		return
	}

	successor, err := c.RevisionService.Complete(user.UserID, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrRevisionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrRevisionAlreadyDone):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, successor)
}

// @Summary Delete a review
// @Tags revisions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "revision item ID"
// @Success 200 {object} util.Response
// @Router /api/revisions/{id} [delete]
func (c *RevisionController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid revision item ID")
		return
	}

	if err := c.RevisionService.Delete(user.UserID, uint(id)); err != nil {
		if errors.Is(err, util.ErrRevisionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "revision item deleted"})
}

package controller

import (
	"codetrack_backend/internal/service"
	"codetrack_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

func (c *RoadmapController) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrRoadmapNotFound),
		errors.Is(err, util.ErrTopicNotFound),
		errors.Is(err, util.ErrSubtopicNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary Create a roadmap
// @Tags roadmaps
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateRoadmapRequest true "roadmap payload"
// @Success 201 {object} util.Response
// @Router /api/roadmaps [post]
func (c *RoadmapController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	roadmap, err := c.RoadmapService.CreateRoadmap(user.UserID, req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Created(ctx, roadmap)
}

// @Summary List the user's roadmaps
// @Tags roadmaps
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/roadmaps [get]
func (c *RoadmapController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	roadmaps, err := c.RoadmapService.ListRoadmaps(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, roadmaps)
}

// @Summary List public roadmaps
// @Tags roadmaps
// @Produce json
// @Param limit query int false "max results" default(20)
// @Success 200 {object} util.Response
// @Router /api/roadmaps/public [get]
func (c *RoadmapController) ListPublic(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	roadmaps, err := c.RoadmapService.ListPublicRoadmaps(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, roadmaps)
}

// @Summary Get a roadmap with its full topic tree
// @Tags roadmaps
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "roadmap ID"
// @Success 200 {object} util.Response
// @Router /api/roadmaps/{id} [get]
func (c *RoadmapController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid roadmap ID")
		return
	}

	roadmap, err := c.RoadmapService.GetRoadmap(user.UserID, uint(id))
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Success(ctx, roadmap)
}

// @Summary Update a roadmap
// @Tags roadmaps
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "roadmap ID"
// @Param body body service.UpdateRoadmapRequest true "fields to update"
// @Success 200 {object} util.Response
// @Router /api/roadmaps/{id} [put]
func (c *RoadmapController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid roadmap ID")
		return
	}

	var req service.UpdateRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	roadmap, err := c.RoadmapService.UpdateRoadmap(user.UserID, uint(id), req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Success(ctx, roadmap)
}

// @Summary Delete a roadmap and its topics
// @Tags roadmaps
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "roadmap ID"
// @Success 200 {object} util.Response
// @Router /api/roadmaps/{id} [delete]
func (c *RoadmapController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid roadmap ID")
		return
	}

	if err := c.RoadmapService.DeleteRoadmap(user.UserID, uint(id)); err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "roadmap deleted"})
}

// @Summary Add a topic to a roadmap
// @Tags roadmaps
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "roadmap ID"
// @Param body body service.CreateTopicRequest true "topic payload"
// @Success 201 {object} util.Response
// @Router /api/roadmaps/{id}/topics [post]
func (c *RoadmapController) AddTopic(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid roadmap ID")
		return
	}

	var req service.CreateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	topic, err := c.RoadmapService.AddTopic(user.UserID, uint(id), req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Created(ctx, topic)
}

// @Summary Update a topic
// @Tags roadmaps
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param topicId path int true "topic ID"
// @Param body body service.UpdateTopicRequest true "fields to update"
// @Success 200 {object} util.Response
// @Router /api/topics/{topicId} [put]
func (c *RoadmapController) UpdateTopic(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	topicID, err := strconv.ParseUint(ctx.Param("topicId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid topic ID")
		return
	}

	var req service.UpdateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	topic, err := c.RoadmapService.UpdateTopic(user.UserID, uint(topicID), req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Success(ctx, topic)
}

// @Summary Delete a topic and its subtopics
// @Tags roadmaps
// @Produce json
// @Security ApiKeyAuth
// @Param topicId path int true "topic ID"
// @Success 200 {object} util.Response
// @Router /api/topics/{topicId} [delete]
func (c *RoadmapController) DeleteTopic(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	topicID, err := strconv.ParseUint(ctx.Param("topicId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid topic ID")
		return
	}

	if err := c.RoadmapService.DeleteTopic(user.UserID, uint(topicID)); err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "topic deleted"})
}

// @Summary Add a subtopic
// @Description Parent topic counters are recomputed in the same transaction
// @Tags roadmaps
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param topicId path int true "topic ID"
// @Param body body service.CreateSubtopicRequest true "subtopic payload"
// @Success 201 {object} util.Response
// @Router /api/topics/{topicId}/subtopics [post]
func (c *RoadmapController) AddSubtopic(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	topicID, err := strconv.ParseUint(ctx.Param("topicId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid topic ID")
		return
	}

	var req service.CreateSubtopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subtopic, err := c.RoadmapService.AddSubtopic(user.UserID, uint(topicID), req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Created(ctx, subtopic)
}

// @Summary Update a subtopic
// @Description Completion changes recompute the parent topic counters in the same transaction
// @Tags roadmaps
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param subtopicId path int true "subtopic ID"
// @Param body body service.UpdateSubtopicRequest true "fields to update"
// @Success 200 {object} util.Response
// @Router /api/subtopics/{subtopicId} [put]
func (c *RoadmapController) UpdateSubtopic(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	subtopicID, err := strconv.ParseUint(ctx.Param("subtopicId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid subtopic ID")
		return
	}

	var req service.UpdateSubtopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subtopic, err := c.RoadmapService.UpdateSubtopic(user.UserID, uint(subtopicID), req)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Success(ctx, subtopic)
}

// @Summary Delete a subtopic
// @Tags roadmaps
// @Produce json
// @Security ApiKeyAuth
// @Param subtopicId path int true "subtopic ID"
// @Success 200 {object} util.Response
// @Router /api/subtopics/{subtopicId} [delete]
func (c *RoadmapController) DeleteSubtopic(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	subtopicID, err := strconv.ParseUint(ctx.Param("subtopicId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid subtopic ID")
		return
	}

	if err := c.RoadmapService.DeleteSubtopic(user.UserID, uint(subtopicID)); err != nil {
		c.handleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "subtopic deleted"})
}

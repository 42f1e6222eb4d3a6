package service

import (
	"codetrack_backend/internal/model"
	"codetrack_backend/internal/repository"
	"codetrack_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type RoadmapService struct {
	RoadmapRepo *repository.RoadmapRepository
	UserRepo    *repository.UserRepository
	DB          *gorm.DB
}

func NewRoadmapService(roadmapRepo *repository.RoadmapRepository, userRepo *repository.UserRepository, db *gorm.DB) *RoadmapService {
	return &RoadmapService{
		RoadmapRepo: roadmapRepo,
		UserRepo:    userRepo,
		DB:          db,
	}
}

type CreateRoadmapRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	IsPublic    bool   `json:"isPublic"`
}

type UpdateRoadmapRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsPublic    *bool   `json:"isPublic"`
	IsCompleted *bool   `json:"isCompleted"`
}

type CreateTopicRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type UpdateTopicRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

type CreateSubtopicRequest struct {
	Title         string           `json:"title" binding:"required"`
	Description   string           `json:"description"`
	Order         int              `json:"order"`
	Difficulty    model.Difficulty `json:"difficulty"`
	EstimatedTime int              `json:"estimatedTime" binding:"min=0"`
	Link          string           `json:"link"`
}

type UpdateSubtopicRequest struct {
	Title         *string           `json:"title"`
	Description   *string           `json:"description"`
	Order         *int              `json:"order"`
	Difficulty    *model.Difficulty `json:"difficulty"`
	EstimatedTime *int              `json:"estimatedTime" binding:"omitempty,min=0"`
	Link          *string           `json:"link"`
	IsCompleted   *bool             `json:"isCompleted"`
}

// SubtopicProgress counts a topic's subtopics and how many are completed.
func SubtopicProgress(subtopics []model.Subtopic) (total, completed int) {
	total = len(subtopics)
	for _, st := range subtopics {
		if st.IsCompleted {
			completed++
		}
	}
	return total, completed
}

// recountTopic recomputes the denormalized topic counters from the
// authoritative subtopic set. Always a full recount on the mutating
// transaction, never an incremental update, so the counters cannot drift.
func recountTopic(tx *gorm.DB, topicID uint) error {
	var subtopics []model.Subtopic
	if err := tx.Where("topic_id = ?", topicID).Find(&subtopics).Error; err != nil {
		return err
	}

	total, completed := SubtopicProgress(subtopics)

	var topic model.Topic
	if err := tx.First(&topic, topicID).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{
		"total_subtopics":     total,
		"completed_subtopics": completed,
	}

	done := total > 0 && completed == total
	if done != topic.IsCompleted {
		updates["is_completed"] = done
		if done {
			updates["completed_date"] = time.Now()
		} else {
			updates["completed_date"] = nil
		}
	}

	return tx.Model(&model.Topic{}).Where("id = ?", topicID).Updates(updates).Error
}

func (s *RoadmapService) CreateRoadmap(userID uint, req CreateRoadmapRequest) (*model.Roadmap, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	roadmap := &model.Roadmap{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		IsPublic:    req.IsPublic,
		UserID:      userID,
	}
	if err := s.RoadmapRepo.Create(roadmap); err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (s *RoadmapService) GetRoadmap(userID, id uint) (*model.Roadmap, error) {
	roadmap, err := s.RoadmapRepo.FindByIDWithTree(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRoadmapNotFound
	}
	return roadmap, err
}

func (s *RoadmapService) ListRoadmaps(userID uint) ([]model.Roadmap, error) {
	return s.RoadmapRepo.FindAllByUser(userID)
}

func (s *RoadmapService) ListPublicRoadmaps(limit int) ([]model.Roadmap, error) {
	return s.RoadmapRepo.FindPublic(limit)
}

func (s *RoadmapService) UpdateRoadmap(userID, id uint, req UpdateRoadmapRequest) (*model.Roadmap, error) {
	roadmap, err := s.RoadmapRepo.FindByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRoadmapNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		roadmap.Title = *req.Title
	}
	if req.Description != nil {
		roadmap.Description = *req.Description
	}
	if req.Color != nil {
		roadmap.Color = *req.Color
	}
	if req.IsPublic != nil {
		roadmap.IsPublic = *req.IsPublic
	}
	if req.IsCompleted != nil && *req.IsCompleted != roadmap.IsCompleted {
		roadmap.IsCompleted = *req.IsCompleted
		if *req.IsCompleted {
			now := time.Now()
			roadmap.CompletedDate = &now
		} else {
			roadmap.CompletedDate = nil
		}
	}

	if err := s.RoadmapRepo.Update(roadmap); err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (s *RoadmapService) DeleteRoadmap(userID, id uint) error {
	err := s.RoadmapRepo.Delete(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrRoadmapNotFound
	}
	return err
}

// findOwnedTopic checks the topic exists and belongs to one of the user's
// roadmaps.
func (s *RoadmapService) findOwnedTopic(userID, topicID uint) (*model.Topic, error) {
	topic, err := s.RoadmapRepo.FindTopic(topicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTopicNotFound
		}
		return nil, err
	}
	if _, err := s.RoadmapRepo.FindByID(userID, topic.RoadmapID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTopicNotFound
		}
		return nil, err
	}
	return topic, nil
}

func (s *RoadmapService) AddTopic(userID, roadmapID uint, req CreateTopicRequest) (*model.Topic, error) {
	if _, err := s.RoadmapRepo.FindByID(userID, roadmapID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRoadmapNotFound
		}
		return nil, err
	}

	topic := &model.Topic{
		RoadmapID:   roadmapID,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := s.DB.Create(topic).Error; err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *RoadmapService) UpdateTopic(userID, topicID uint, req UpdateTopicRequest) (*model.Topic, error) {
	topic, err := s.findOwnedTopic(userID, topicID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		topic.Title = *req.Title
	}
	if req.Description != nil {
		topic.Description = *req.Description
	}
	if req.Order != nil {
		topic.Order = *req.Order
	}

	if err := s.DB.Save(topic).Error; err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *RoadmapService) DeleteTopic(userID, topicID uint) error {
	if _, err := s.findOwnedTopic(userID, topicID); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("topic_id = ?", topicID).Delete(&model.Subtopic{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Topic{}, topicID).Error
	})
}

// AddSubtopic creates the subtopic and recomputes the parent counters in
// the same transaction.
func (s *RoadmapService) AddSubtopic(userID, topicID uint, req CreateSubtopicRequest) (*model.Subtopic, error) {
	if _, err := s.findOwnedTopic(userID, topicID); err != nil {
		return nil, err
	}

	subtopic := &model.Subtopic{
		TopicID:       topicID,
		Title:         req.Title,
		Description:   req.Description,
		Order:         req.Order,
		Difficulty:    req.Difficulty,
		EstimatedTime: req.EstimatedTime,
		Link:          req.Link,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(subtopic).Error; err != nil {
			return err
		}
		return recountTopic(tx, topicID)
	})
	if err != nil {
		return nil, err
	}
	return subtopic, nil
}

func (s *RoadmapService) UpdateSubtopic(userID, subtopicID uint, req UpdateSubtopicRequest) (*model.Subtopic, error) {
	subtopic, err := s.RoadmapRepo.FindSubtopic(subtopicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubtopicNotFound
		}
		return nil, err
	}
	if _, err := s.findOwnedTopic(userID, subtopic.TopicID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		subtopic.Title = *req.Title
	}
	if req.Description != nil {
		subtopic.Description = *req.Description
	}
	if req.Order != nil {
		subtopic.Order = *req.Order
	}
	if req.Difficulty != nil {
		subtopic.Difficulty = *req.Difficulty
	}
	if req.EstimatedTime != nil {
		subtopic.EstimatedTime = *req.EstimatedTime
	}
	if req.Link != nil {
		subtopic.Link = *req.Link
	}
	if req.IsCompleted != nil && *req.IsCompleted != subtopic.IsCompleted {
		subtopic.IsCompleted = *req.IsCompleted
		if *req.IsCompleted {
			now := time.Now()
			subtopic.CompletedDate = &now
		} else {
			subtopic.CompletedDate = nil
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(subtopic).Error; err != nil {
			return err
		}
		return recountTopic(tx, subtopic.TopicID)
	})
	if err != nil {
		return nil, err
	}
	return subtopic, nil
}

func (s *RoadmapService) DeleteSubtopic(userID, subtopicID uint) error {
	subtopic, err := s.RoadmapRepo.FindSubtopic(subtopicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSubtopicNotFound
		}
		return err
	}
	if _, err := s.findOwnedTopic(userID, subtopic.TopicID); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&model.Subtopic{}, subtopicID).Error; err != nil {
			return err
		}
		return recountTopic(tx, subtopic.TopicID)
	})
}

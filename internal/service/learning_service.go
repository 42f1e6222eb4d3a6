package service

import (
	"codetrack_backend/internal/model"
	"codetrack_backend/internal/repository"
	"codetrack_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type LearningService struct {
	LearningRepo *repository.LearningItemRepository
	UserRepo     *repository.UserRepository
	DB           *gorm.DB
}

func NewLearningService(learningRepo *repository.LearningItemRepository, userRepo *repository.UserRepository, db *gorm.DB) *LearningService {
	return &LearningService{
		LearningRepo: learningRepo,
		UserRepo:     userRepo,
		DB:           db,
	}
}

type CreateLearningItemRequest struct {
	Title      string                 `json:"title" binding:"required"`
	Type       model.LearningItemType `json:"type"`
	Category   string                 `json:"category"`
	Progress   int                    `json:"progress" binding:"min=0,max=100"`
	Status     model.LearningStatus   `json:"status"`
	TimeSpent  int                    `json:"timeSpent" binding:"min=0"`
	Date       *time.Time             `json:"date"`
	Link       string                 `json:"link"`
	Notes      string                 `json:"notes"`
	IsRevision bool                   `json:"isRevision"`
}

type UpdateLearningItemRequest struct {
	Title     *string                 `json:"title"`
	Type      *model.LearningItemType `json:"type"`
	Category  *string                 `json:"category"`
	Progress  *int                    `json:"progress" binding:"omitempty,min=0,max=100"`
	Status    *model.LearningStatus   `json:"status"`
	TimeSpent *int                    `json:"timeSpent" binding:"omitempty,min=0"`
	Date      *time.Time              `json:"date"`
	Link      *string                 `json:"link"`
	Notes     *string                 `json:"notes"`
}

func (s *LearningService) Create(userID uint, req CreateLearningItemRequest) (*model.LearningItem, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	status := req.Status
	if status == "" {
		status = model.LearningNotStarted
	}
	if req.Progress >= 100 {
		status = model.LearningCompleted
	}

	item := &model.LearningItem{
		Title:      req.Title,
		Type:       req.Type,
		Category:   req.Category,
		Progress:   req.Progress,
		Status:     status,
		TimeSpent:  req.TimeSpent,
		Date:       date,
		Link:       req.Link,
		Notes:      req.Notes,
		IsRevision: req.IsRevision,
		UserID:     userID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		if item.IsRevision {
			return StartChain(tx, userID, item.ID, model.RevisionTargetLearning, date)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *LearningService) Get(userID, id uint) (*model.LearningItem, error) {
	item, err := s.LearningRepo.FindByID(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLearningItemNotFound
	}
	return item, err
}

func (s *LearningService) List(userID uint, filter repository.LearningItemFilter) ([]model.LearningItem, int64, error) {
	return s.LearningRepo.List(userID, filter)
}

func (s *LearningService) Update(userID, id uint, req UpdateLearningItemRequest) (*model.LearningItem, error) {
	item, err := s.LearningRepo.FindByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLearningItemNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Progress != nil {
		item.Progress = *req.Progress
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.TimeSpent != nil {
		item.TimeSpent = *req.TimeSpent
	}
	if req.Date != nil {
		item.Date = *req.Date
	}
	if req.Link != nil {
		item.Link = *req.Link
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	// Reaching full progress completes the item.
	if item.Progress >= 100 {
		item.Status = model.LearningCompleted
	}

	if err := s.LearningRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *LearningService) Delete(userID, id uint) error {
	err := s.LearningRepo.Delete(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrLearningItemNotFound
	}
	return err
}

package repository

import (
	"codetrack_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type LearningItemRepository struct {
	DB *gorm.DB
}

func NewLearningItemRepository(db *gorm.DB) *LearningItemRepository {
	return &LearningItemRepository{DB: db}
}

type LearningItemFilter struct {
	Type     model.LearningItemType
	Status   model.LearningStatus
	Category string
	Page     int
	Limit    int
}

func (r *LearningItemRepository) Create(item *model.LearningItem) error {
	return r.DB.Create(item).Error
}

func (r *LearningItemRepository) FindByID(userID, id uint) (*model.LearningItem, error) {
	var item model.LearningItem
	err := r.DB.Where("user_id = ?", userID).First(&item, id).Error
	return &item, err
}

func (r *LearningItemRepository) List(userID uint, filter LearningItemFilter) ([]model.LearningItem, int64, error) {
	q := r.DB.Model(&model.LearningItem{}).Where("user_id = ?", userID)

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var items []model.LearningItem
	err := q.Order("date DESC").Find(&items).Error
	return items, total, err
}

func (r *LearningItemRepository) FindAllByUser(userID uint) ([]model.LearningItem, error) {
	var items []model.LearningItem
	err := r.DB.Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

func (r *LearningItemRepository) FindByUserInRange(userID uint, start, end time.Time) ([]model.LearningItem, error) {
	var items []model.LearningItem
	err := r.DB.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&items).Error
	return items, err
}

func (r *LearningItemRepository) Update(item *model.LearningItem) error {
	return r.DB.Save(item).Error
}

func (r *LearningItemRepository) Delete(userID, id uint) error {
	res := r.DB.Where("user_id = ?", userID).Delete(&model.LearningItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

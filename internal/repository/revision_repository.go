package repository

import (
	"codetrack_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type RevisionRepository struct {
	DB *gorm.DB
}

func NewRevisionRepository(db *gorm.DB) *RevisionRepository {
	return &RevisionRepository{DB: db}
}

// RevisionFilter narrows List results. Nil pointers mean "no filter".
type RevisionFilter struct {
	DueDate     *time.Time // matched on the date component only
	IsCompleted *bool
}

func (r *RevisionRepository) Create(item *model.RevisionItem) error {
	return r.DB.Create(item).Error
}

func (r *RevisionRepository) FindByID(userID, id uint) (*model.RevisionItem, error) {
	var item model.RevisionItem
	err := r.DB.Where("user_id = ?", userID).First(&item, id).Error
	return &item, err
}

func (r *RevisionRepository) List(userID uint, filter RevisionFilter) ([]model.RevisionItem, error) {
	q := r.DB.Where("user_id = ?", userID)

	if filter.DueDate != nil {
		dayStart := time.Date(filter.DueDate.Year(), filter.DueDate.Month(), filter.DueDate.Day(), 0, 0, 0, 0, filter.DueDate.Location())
		q = q.Where("next_revision_date >= ? AND next_revision_date < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}
	if filter.IsCompleted != nil {
		q = q.Where("is_completed = ?", *filter.IsCompleted)
	}

	var items []model.RevisionItem
	err := q.Order("next_revision_date ASC").Find(&items).Error
	return items, err
}

// FindDue returns pending items whose due date falls on or before the given
// day. Due dates are computed at write time; this read is the only
// evaluation of them.
func (r *RevisionRepository) FindDue(userID uint, day time.Time) ([]model.RevisionItem, error) {
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).AddDate(0, 0, 1)

	var items []model.RevisionItem
	err := r.DB.Where("user_id = ? AND is_completed = ? AND next_revision_date < ?", userID, false, dayEnd).
		Order("next_revision_date ASC").
		Find(&items).Error
	return items, err
}

func (r *RevisionRepository) FindByUserInRange(userID uint, start, end time.Time) ([]model.RevisionItem, error) {
	var items []model.RevisionItem
	err := r.DB.Where("user_id = ? AND next_revision_date >= ? AND next_revision_date <= ?", userID, start, end).
		Find(&items).Error
	return items, err
}

func (r *RevisionRepository) Delete(userID, id uint) error {
	res := r.DB.Where("user_id = ?", userID).Delete(&model.RevisionItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

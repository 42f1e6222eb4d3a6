package repository

import (
	"codetrack_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ProblemRepository struct {
	DB *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{DB: db}
}

// ProblemFilter narrows List results. Zero values mean "no filter".
type ProblemFilter struct {
	Platform   model.Platform
	Difficulty model.Difficulty
	Topic      string
	Outcome    model.Outcome
	Page       int
	Limit      int
}

func (r *ProblemRepository) Create(problem *model.Problem) error {
	return r.DB.Create(problem).Error
}

func (r *ProblemRepository) FindByID(userID, id uint) (*model.Problem, error) {
	var problem model.Problem
	err := r.DB.Where("user_id = ?", userID).First(&problem, id).Error
	return &problem, err
}

func (r *ProblemRepository) List(userID uint, filter ProblemFilter) ([]model.Problem, int64, error) {
	q := r.DB.Model(&model.Problem{}).Where("user_id = ?", userID)

	if filter.Platform != "" {
		q = q.Where("platform = ?", filter.Platform)
	}
	if filter.Difficulty != "" {
		q = q.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Topic != "" {
		q = q.Where("topic = ?", filter.Topic)
	}
	if filter.Outcome != "" {
		q = q.Where("outcome = ?", filter.Outcome)
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

	var problems []model.Problem
	err := q.Order("date DESC").Find(&problems).Error
	return problems, total, err
}

func (r *ProblemRepository) FindAllByUser(userID uint) ([]model.Problem, error) {
	var problems []model.Problem
	err := r.DB.Where("user_id = ?", userID).Find(&problems).Error
	return problems, err
}

func (r *ProblemRepository) FindByUserInRange(userID uint, start, end time.Time) ([]model.Problem, error) {
	var problems []model.Problem
	err := r.DB.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&problems).Error
	return problems, err
}

func (r *ProblemRepository) Update(problem *model.Problem) error {
	return r.DB.Save(problem).Error
}

func (r *ProblemRepository) Delete(userID, id uint) error {
	res := r.DB.Where("user_id = ?", userID).Delete(&model.Problem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"codetrack_backend/internal/model"

	"gorm.io/gorm"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

func (r *RoadmapRepository) Create(roadmap *model.Roadmap) error {
	return r.DB.Create(roadmap).Error
}

func (r *RoadmapRepository) FindByID(userID, id uint) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	err := r.DB.Where("user_id = ?", userID).First(&roadmap, id).Error
	return &roadmap, err
}

// FindByIDWithTree loads the roadmap with topics and subtopics ordered by
// their Order column.
func (r *RoadmapRepository) FindByIDWithTree(userID, id uint) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	err := r.DB.Where("user_id = ?", userID).
		Preload("Topics", func(db *gorm.DB) *gorm.DB {
			return db.Order("`order` ASC")
		}).
		Preload("Topics.Subtopics", func(db *gorm.DB) *gorm.DB {
			return db.Order("`order` ASC")
		}).
		First(&roadmap, id).Error
	return &roadmap, err
}

func (r *RoadmapRepository) FindAllByUser(userID uint) ([]model.Roadmap, error) {
	var roadmaps []model.Roadmap
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&roadmaps).Error
	return roadmaps, err
}

func (r *RoadmapRepository) FindPublic(limit int) ([]model.Roadmap, error) {
	var roadmaps []model.Roadmap
	q := r.DB.Where("is_public = ?", true).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&roadmaps).Error
	return roadmaps, err
}

func (r *RoadmapRepository) Update(roadmap *model.Roadmap) error {
	return r.DB.Save(roadmap).Error
}

func (r *RoadmapRepository) Delete(userID, id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var roadmap model.Roadmap
		if err := tx.Where("user_id = ?", userID).First(&roadmap, id).Error; err != nil {
			return err
		}

		var topicIDs []uint
		if err := tx.Model(&model.Topic{}).Where("roadmap_id = ?", id).Pluck("id", &topicIDs).Error; err != nil {
			return err
		}
		if len(topicIDs) > 0 {
			if err := tx.Unscoped().Where("topic_id IN ?", topicIDs).Delete(&model.Subtopic{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("roadmap_id = ?", id).Delete(&model.Topic{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Roadmap{}, id).Error
	})
}

func (r *RoadmapRepository) FindTopic(id uint) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.First(&topic, id).Error
	return &topic, err
}

func (r *RoadmapRepository) FindSubtopic(id uint) (*model.Subtopic, error) {
	var subtopic model.Subtopic
	err := r.DB.First(&subtopic, id).Error
	return &subtopic, err
}

func (r *RoadmapRepository) FindSubtopicsByTopic(topicID uint) ([]model.Subtopic, error) {
	var subtopics []model.Subtopic
	err := r.DB.Where("topic_id = ?", topicID).Order("`order` ASC").Find(&subtopics).Error
	return subtopics, err
}

package repository

import (
	"codetrack_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByProvider(provider, providerID string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("provider = ? AND provider_id = ?", provider, providerID).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).
		Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}

// DeleteCascade removes the user and everything the user owns in one
// transaction. Rows are removed permanently, not soft deleted.
func (r *UserRepository) DeleteCascade(userID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.Problem{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.LearningItem{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.RevisionItem{}).Error; err != nil {
			return err
		}

		var roadmapIDs []uint
		if err := tx.Model(&model.Roadmap{}).Where("user_id = ?", userID).Pluck("id", &roadmapIDs).Error; err != nil {
			return err
		}
		if len(roadmapIDs) > 0 {
			var topicIDs []uint
			if err := tx.Model(&model.Topic{}).Where("roadmap_id IN ?", roadmapIDs).Pluck("id", &topicIDs).Error; err != nil {
				return err
			}
			if len(topicIDs) > 0 {
				if err := tx.Unscoped().Where("topic_id IN ?", topicIDs).Delete(&model.Subtopic{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Unscoped().Where("roadmap_id IN ?", roadmapIDs).Delete(&model.Topic{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.Roadmap{}).Error; err != nil {
				return err
			}
		}

		return tx.Unscoped().Delete(&model.User{}, userID).Error
	})
}

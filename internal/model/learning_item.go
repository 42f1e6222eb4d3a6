package model

import "time"

type LearningItemType string

const (
	LearningItemCourse   LearningItemType = "course"
	LearningItemVideo    LearningItemType = "video"
	LearningItemArticle  LearningItemType = "article"
	LearningItemBook     LearningItemType = "book"
	LearningItemTutorial LearningItemType = "tutorial"
	LearningItemProject  LearningItemType = "project"
	LearningItemOther    LearningItemType = "other"
)

type LearningStatus string

const (
	LearningNotStarted LearningStatus = "not-started"
	LearningInProgress LearningStatus = "in-progress"
	LearningCompleted  LearningStatus = "completed"
	LearningPaused     LearningStatus = "paused"
)

// LearningItem is a tracked learning resource (course, book, ...).
// swagger:model LearningItem
type LearningItem struct {
	BaseModel
	Title      string           `gorm:"size:255;not null" json:"title"`
	Type       LearningItemType `gorm:"type:enum('course','video','article','book','tutorial','project','other');default:'other'" json:"type"`
	Category   string           `gorm:"size:100;index" json:"category"`
	Progress   int              `gorm:"default:0" json:"progress"` // 0-100
	Status     LearningStatus   `gorm:"type:enum('not-started','in-progress','completed','paused');default:'not-started'" json:"status"`
	TimeSpent  int              `gorm:"default:0" json:"timeSpent"` // minutes
	Date       time.Time        `gorm:"index" json:"date"`
	Link       string           `gorm:"size:500" json:"link,omitempty"`
	Notes      string           `gorm:"type:text" json:"notes,omitempty"`
	IsRevision bool             `gorm:"default:false" json:"isRevision"`
	UserID     uint             `gorm:"index;not null" json:"userId"`
}

func (LearningItem) TableName() string {
	return "learning_items"
}

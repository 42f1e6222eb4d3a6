package model

import "time"

// Roadmap -> Topic -> Subtopic is a three level tree owned by one user.
// swagger:model Roadmap
type Roadmap struct {
	BaseModel
	Title         string     `gorm:"size:255;not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	Color         string     `gorm:"size:20" json:"color,omitempty"`
	IsPublic      bool       `gorm:"default:false" json:"isPublic"`
	IsCompleted   bool       `gorm:"default:false" json:"isCompleted"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
	UserID        uint       `gorm:"index;not null" json:"userId"`
	Topics        []Topic    `gorm:"foreignKey:RoadmapID;constraint:OnDelete:CASCADE" json:"topics,omitempty"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// Topic carries denormalized subtopic counters. They are always recomputed
// from the authoritative subtopic set in the same transaction as the
// subtopic mutation that made them stale.
// swagger:model Topic
type Topic struct {
	BaseModel
	RoadmapID          uint       `gorm:"index;not null" json:"roadmapId"`
	Title              string     `gorm:"size:255;not null" json:"title"`
	Description        string     `gorm:"type:text" json:"description,omitempty"`
	Order              int        `gorm:"default:0" json:"order"`
	IsCompleted        bool       `gorm:"default:false" json:"isCompleted"`
	CompletedDate      *time.Time `json:"completedDate,omitempty"`
	TotalSubtopics     int        `gorm:"default:0" json:"totalSubtopics"`
	CompletedSubtopics int        `gorm:"default:0" json:"completedSubtopics"`
	Subtopics          []Subtopic `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"subtopics,omitempty"`
}

func (Topic) TableName() string {
	return "topics"
}

// swagger:model Subtopic
type Subtopic struct {
	BaseModel
	TopicID       uint       `gorm:"index;not null" json:"topicId"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	Order         int        `gorm:"default:0" json:"order"`
	Difficulty    Difficulty `gorm:"type:enum('easy','medium','hard');default:'medium'" json:"difficulty"`
	EstimatedTime int        `gorm:"default:0" json:"estimatedTime"` // minutes
	Link          string     `gorm:"size:500" json:"link,omitempty"`
	IsCompleted   bool       `gorm:"default:false" json:"isCompleted"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

func (Subtopic) TableName() string {
	return "subtopics"
}

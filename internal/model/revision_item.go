package model

import "time"

// RevisionItemType discriminates what a RevisionItem points at. The relation
// is intentionally loose: ItemID is not a structural foreign key, it is
// resolved through an explicit lookup keyed by this discriminant.
type RevisionItemType string

const (
	RevisionTargetProblem  RevisionItemType = "problem"
	RevisionTargetLearning RevisionItemType = "learning"
)

func (t RevisionItemType) Valid() bool {
	return t == RevisionTargetProblem || t == RevisionTargetLearning
}

// RevisionItem is one scheduled spaced-repetition review. Completing a
// review never mutates it into a later cycle; a successor row is created
// instead, so the chain for an (ItemID, ItemType, UserID) triple is append
// only.
// swagger:model RevisionItem
type RevisionItem struct {
	BaseModel
	ItemID           uint             `gorm:"index:idx_revision_target;not null" json:"itemId"`
	ItemType         RevisionItemType `gorm:"index:idx_revision_target;type:enum('problem','learning');not null" json:"itemType"`
	OriginalDate     time.Time        `json:"originalDate"`
	NextRevisionDate time.Time        `gorm:"index" json:"nextRevisionDate"`
	RevisionCycle    int              `gorm:"default:1" json:"revisionCycle"`
	IsCompleted      bool             `gorm:"default:false;index" json:"isCompleted"`
	CompletedDate    *time.Time       `json:"completedDate,omitempty"`
	UserID           uint             `gorm:"index;not null" json:"userId"`
}

func (RevisionItem) TableName() string {
	return "revision_items"
}

// RevisionTarget is the resolved side of the polymorphic relation: exactly
// one of Problem/LearningItem is non-nil, matching the item's ItemType.
type RevisionTarget struct {
	Problem      *Problem      `json:"problem,omitempty"`
	LearningItem *LearningItem `json:"learningItem,omitempty"`
}

// RevisionItemWithTarget is the list-view shape: the revision row plus its
// manually joined target.
type RevisionItemWithTarget struct {
	RevisionItem
	Target RevisionTarget `json:"target"`
}

package service

import (
	"codetrack_backend/internal/model"
	"codetrack_backend/internal/repository"
	"codetrack_backend/internal/util"
	"codetrack_backend/pkg/monitoring"
	"errors"
	"time"

	"gorm.io/gorm"
)

// revisionIntervals holds the spaced-repetition schedule in days, indexed by
// cycle number starting at 1. Cycles past the end of the table are clamped
// to the last entry, so spacing never grows past 30 days.
var revisionIntervals = []int{1, 3, 7, 15, 30}

// RevisionInterval returns the interval in days before the review of the
// given cycle.
func RevisionInterval(cycle int) int {
	if cycle < 1 {
		cycle = 1
	}
	if cycle > len(revisionIntervals) {
		cycle = len(revisionIntervals)
	}
	return revisionIntervals[cycle-1]
}

// NextRevisionDate computes the due date for a review of the given cycle,
// counted from the reference date.
func NextRevisionDate(from time.Time, cycle int) time.Time {
	return from.AddDate(0, 0, RevisionInterval(cycle))
}

// successorFor builds the follow-up review spawned by completing the given
// item. The chain key (ItemID, ItemType, UserID) is preserved and the cycle
// advances by exactly one.
func successorFor(item *model.RevisionItem, completedAt time.Time) *model.RevisionItem {
	nextCycle := item.RevisionCycle + 1
	return &model.RevisionItem{
		ItemID:           item.ItemID,
		ItemType:         item.ItemType,
		OriginalDate:     item.OriginalDate,
		NextRevisionDate: NextRevisionDate(completedAt, nextCycle),
		RevisionCycle:    nextCycle,
		IsCompleted:      false,
		UserID:           item.UserID,
	}
}

type RevisionService struct {
	RevisionRepo *repository.RevisionRepository
	ProblemRepo  *repository.ProblemRepository
	LearningRepo *repository.LearningItemRepository
	UserRepo     *repository.UserRepository
	DB           *gorm.DB
}

func NewRevisionService(
	revisionRepo *repository.RevisionRepository,
	problemRepo *repository.ProblemRepository,
	learningRepo *repository.LearningItemRepository,
	userRepo *repository.UserRepository,
	db *gorm.DB,
) *RevisionService {
	return &RevisionService{
		RevisionRepo: revisionRepo,
		ProblemRepo:  problemRepo,
		LearningRepo: learningRepo,
		UserRepo:     userRepo,
		DB:           db,
	}
}

// StartChain creates the first review of a chain, due one day after the
// item was created. Called when a problem or learning item is marked for
// revision; runs on the caller's transaction handle so the mark and the
// first review commit together.
func StartChain(tx *gorm.DB, userID, itemID uint, itemType model.RevisionItemType, createdAt time.Time) error {
	if !itemType.Valid() {
		return util.ErrRevisionItemType
	}
	item := &model.RevisionItem{
		ItemID:           itemID,
		ItemType:         itemType,
		OriginalDate:     createdAt,
		NextRevisionDate: NextRevisionDate(createdAt, 1),
		RevisionCycle:    1,
		IsCompleted:      false,
		UserID:           userID,
	}
	return tx.Create(item).Error
}

// Complete marks the review done today and creates the next one in the
// chain. Both writes happen in one transaction: a completion without its
// successor (or the reverse) is never visible.
func (s *RevisionService) Complete(userID, revisionID uint) (*model.RevisionItem, error) {
	var successor *model.RevisionItem

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var item model.RevisionItem
		if err := tx.Where("user_id = ?", userID).First(&item, revisionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrRevisionNotFound
			}
			return err
		}

		if item.IsCompleted {
			return util.ErrRevisionAlreadyDone
		}

		now := time.Now()
		item.IsCompleted = true
		item.CompletedDate = &now
		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		successor = successorFor(&item, now)
		return tx.Create(successor).Error
	})
	if err != nil {
		return nil, err
	}

	monitoring.RevisionCompletions.Inc()
	return successor, nil
}

// List returns the user's reviews ordered by ascending due date, each with
// its target resolved through the ItemType discriminant.
func (s *RevisionService) List(userID uint, filter repository.RevisionFilter) ([]model.RevisionItemWithTarget, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	items, err := s.RevisionRepo.List(userID, filter)
	if err != nil {
		return nil, err
	}
	return s.resolveTargets(userID, items), nil
}

// ListDue returns pending reviews due today or earlier.
func (s *RevisionService) ListDue(userID uint) ([]model.RevisionItemWithTarget, error) {
	items, err := s.RevisionRepo.FindDue(userID, time.Now())
	if err != nil {
		return nil, err
	}
	return s.resolveTargets(userID, items), nil
}

// resolveTargets performs the manual polymorphic join. A dangling ItemID
// (target deleted since the review was scheduled) yields an empty target
// rather than an error.
func (s *RevisionService) resolveTargets(userID uint, items []model.RevisionItem) []model.RevisionItemWithTarget {
	out := make([]model.RevisionItemWithTarget, 0, len(items))
	for _, item := range items {
		resolved := model.RevisionItemWithTarget{RevisionItem: item}
		switch item.ItemType {
		case model.RevisionTargetProblem:
			if p, err := s.ProblemRepo.FindByID(userID, item.ItemID); err == nil {
				resolved.Target.Problem = p
			}
		case model.RevisionTargetLearning:
			if l, err := s.LearningRepo.FindByID(userID, item.ItemID); err == nil {
				resolved.Target.LearningItem = l
			}
		}
		out = append(out, resolved)
	}
	return out
}

func (s *RevisionService) Delete(userID, revisionID uint) error {
	err := s.RevisionRepo.Delete(userID, revisionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrRevisionNotFound
	}
	return err
}

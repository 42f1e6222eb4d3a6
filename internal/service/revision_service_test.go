package service

import (
	"codetrack_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRevisionInterval(t *testing.T) {
	tests := []struct {
		cycle int
		want  int
	}{
		{cycle: 1, want: 1},
		{cycle: 2, want: 3},
		{cycle: 3, want: 7},
		{cycle: 4, want: 15},
		{cycle: 5, want: 30},
		// out-of-range cycles clamp instead of failing
		{cycle: 0, want: 1},
		{cycle: -3, want: 1},
		{cycle: 6, want: 30},
		{cycle: 9, want: 30},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RevisionInterval(tt.cycle), "cycle %d", tt.cycle)
	}
}

func TestNextRevisionDate(t *testing.T) {
	from := date(2024, time.January, 1)

	assert.Equal(t, date(2024, time.January, 2), NextRevisionDate(from, 1))
	assert.Equal(t, date(2024, time.January, 4), NextRevisionDate(from, 2))
	assert.Equal(t, date(2024, time.January, 8), NextRevisionDate(from, 3))
	assert.Equal(t, date(2024, time.January, 31), NextRevisionDate(from, 5))
	assert.Equal(t, date(2024, time.January, 31), NextRevisionDate(from, 12))
}

func TestSuccessorFor(t *testing.T) {
	original := date(2024, time.January, 1)
	item := &model.RevisionItem{
		ItemID:           42,
		ItemType:         model.RevisionTargetProblem,
		OriginalDate:     original,
		NextRevisionDate: date(2024, time.January, 2),
		RevisionCycle:    1,
		UserID:           7,
	}

	completedAt := date(2024, time.January, 2)
	next := successorFor(item, completedAt)

	require.NotNil(t, next)
	assert.Equal(t, uint(42), next.ItemID)
	assert.Equal(t, model.RevisionTargetProblem, next.ItemType)
	assert.Equal(t, uint(7), next.UserID)
	assert.Equal(t, original, next.OriginalDate)
	assert.Equal(t, 2, next.RevisionCycle)
	// cycle 2 interval is 3 days from the completion date
	assert.Equal(t, date(2024, time.January, 5), next.NextRevisionDate)
	assert.False(t, next.IsCompleted)
	assert.Nil(t, next.CompletedDate)
}

func TestSuccessorForLateCompletion(t *testing.T) {
	// Completing long after the due date schedules from the completion
	// date, not the original due date.
	item := &model.RevisionItem{
		ItemID:        1,
		ItemType:      model.RevisionTargetLearning,
		RevisionCycle: 2,
		UserID:        1,
	}

	completedAt := date(2024, time.March, 20)
	next := successorFor(item, completedAt)

	assert.Equal(t, 3, next.RevisionCycle)
	assert.Equal(t, date(2024, time.March, 27), next.NextRevisionDate)
}

func TestSuccessorForClampsPastLastCycle(t *testing.T) {
	item := &model.RevisionItem{
		ItemID:        1,
		ItemType:      model.RevisionTargetProblem,
		RevisionCycle: 5,
		UserID:        1,
	}

	completedAt := date(2024, time.June, 1)
	next := successorFor(item, completedAt)

	assert.Equal(t, 6, next.RevisionCycle)
	assert.Equal(t, completedAt.AddDate(0, 0, 30), next.NextRevisionDate)
}

package service

import (
	"codetrack_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubtopicProgress(t *testing.T) {
	total, completed := SubtopicProgress(nil)
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, completed)

	subtopics := []model.Subtopic{
		{Title: "two pointers", IsCompleted: true},
		{Title: "sliding window"},
		{Title: "prefix sums", IsCompleted: true},
	}

	total, completed = SubtopicProgress(subtopics)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, completed)
}

func TestSubtopicProgressAllCompleted(t *testing.T) {
	subtopics := []model.Subtopic{
		{IsCompleted: true},
		{IsCompleted: true},
	}

	total, completed := SubtopicProgress(subtopics)
	assert.Equal(t, total, completed)
}

package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrProblemNotFound      = errors.New("problem not found")
	ErrLearningItemNotFound = errors.New("learning item not found")
	ErrRevisionNotFound     = errors.New("revision item not found")
	ErrRevisionAlreadyDone  = errors.New("revision item already completed")
	ErrRevisionItemType     = errors.New("unknown revision item type")
	ErrRoadmapNotFound      = errors.New("roadmap not found")
	ErrTopicNotFound        = errors.New("topic not found")
	ErrSubtopicNotFound     = errors.New("subtopic not found")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
)

package service

import (
	"codetrack_backend/internal/model"
	"codetrack_backend/internal/repository"
	"codetrack_backend/internal/util"
	"codetrack_backend/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultReportCacheTTL = 5 * time.Minute

type AnalyticsService struct {
	UserRepo     *repository.UserRepository
	ProblemRepo  *repository.ProblemRepository
	LearningRepo *repository.LearningItemRepository
	RoadmapRepo  *repository.RoadmapRepository
	RevisionRepo *repository.RevisionRepository
	Redis        *redis.Client
	CacheTTL     time.Duration
}

func NewAnalyticsService(
	userRepo *repository.UserRepository,
	problemRepo *repository.ProblemRepository,
	learningRepo *repository.LearningItemRepository,
	roadmapRepo *repository.RoadmapRepository,
	revisionRepo *repository.RevisionRepository,
	rdb *redis.Client,
	cacheTTLSeconds int,
) *AnalyticsService {
	ttl := defaultReportCacheTTL
	if cacheTTLSeconds > 0 {
		ttl = time.Duration(cacheTTLSeconds) * time.Second
	}
	return &AnalyticsService{
		UserRepo:     userRepo,
		ProblemRepo:  problemRepo,
		LearningRepo: learningRepo,
		RoadmapRepo:  roadmapRepo,
		RevisionRepo: revisionRepo,
		Redis:        rdb,
		CacheTTL:     ttl,
	}
}

// GetReport loads the user's rows for the requested window and reduces them
// into the report. Computed reports are cached briefly in redis; the report
// itself is derived data, so staleness is bounded by the TTL.
func (s *AnalyticsService) GetReport(ctx context.Context, userID uint, timeframe string, start, end *time.Time) (*model.AnalyticsReport, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now()
	windowStart, windowEnd, err := ResolveWindow(timeframe, start, end, now)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("analytics:%d:%s:%s",
		userID, windowStart.Format("2006-01-02"), windowEnd.Format("2006-01-02"))

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var report model.AnalyticsReport
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				return &report, nil
			}
		}
	}

	problems, err := s.ProblemRepo.FindByUserInRange(userID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	items, err := s.LearningRepo.FindByUserInRange(userID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	roadmaps, err := s.RoadmapRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	report := BuildReport(problems, items, roadmaps, now)

	if s.Redis != nil {
		if payload, err := json.Marshal(report); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache analytics report", zap.Error(err))
			}
		}
	}

	return report, nil
}

// GetRevisionWindow lists the user's revision items whose due date falls in
// the window, using the same window resolution as the report.
func (s *AnalyticsService) GetRevisionWindow(userID uint, timeframe string, start, end *time.Time) ([]model.RevisionItem, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	windowStart, windowEnd, err := ResolveWindow(timeframe, start, end, time.Now())
	if err != nil {
		return nil, err
	}
	return s.RevisionRepo.FindByUserInRange(userID, windowStart, windowEnd)
}

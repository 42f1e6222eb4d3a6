package service

import (
	"codetrack_backend/internal/model"
	"codetrack_backend/internal/repository"
	"codetrack_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ProblemService struct {
	ProblemRepo *repository.ProblemRepository
	UserRepo    *repository.UserRepository
	DB          *gorm.DB
}

func NewProblemService(problemRepo *repository.ProblemRepository, userRepo *repository.UserRepository, db *gorm.DB) *ProblemService {
	return &ProblemService{
		ProblemRepo: problemRepo,
		UserRepo:    userRepo,
		DB:          db,
	}
}

type CreateProblemRequest struct {
	Title      string           `json:"title" binding:"required"`
	Platform   model.Platform   `json:"platform"`
	Difficulty model.Difficulty `json:"difficulty"`
	Topic      string           `json:"topic"`
	TimeSpent  int              `json:"timeSpent" binding:"min=0,max=1440"`
	Outcome    model.Outcome    `json:"outcome"`
	Date       *time.Time       `json:"date"`
	Link       string           `json:"link"`
	CodeLink   string           `json:"codeLink"`
	Tags       []string         `json:"tags"`
	Notes      string           `json:"notes"`
	IsRevision bool             `json:"isRevision"`
}

type UpdateProblemRequest struct {
	Title      *string           `json:"title"`
	Platform   *model.Platform   `json:"platform"`
	Difficulty *model.Difficulty `json:"difficulty"`
	Topic      *string           `json:"topic"`
	TimeSpent  *int              `json:"timeSpent" binding:"omitempty,min=0,max=1440"`
	Outcome    *model.Outcome    `json:"outcome"`
	Date       *time.Time        `json:"date"`
	Link       *string           `json:"link"`
	CodeLink   *string           `json:"codeLink"`
	Tags       []string          `json:"tags"`
	Notes      *string           `json:"notes"`
}

// Create stores the attempt. When it is marked for revision the first
// review of the chain is created in the same transaction.
func (s *ProblemService) Create(userID uint, req CreateProblemRequest) (*model.Problem, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	problem := &model.Problem{
		Title:      req.Title,
		Platform:   req.Platform,
		Difficulty: req.Difficulty,
		Topic:      req.Topic,
		TimeSpent:  req.TimeSpent,
		Outcome:    req.Outcome,
		Date:       date,
		Link:       req.Link,
		CodeLink:   req.CodeLink,
		Tags:       req.Tags,
		Notes:      req.Notes,
		IsRevision: req.IsRevision,
		UserID:     userID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(problem).Error; err != nil {
			return err
		}
		if problem.IsRevision {
			return StartChain(tx, userID, problem.ID, model.RevisionTargetProblem, date)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return problem, nil
}

func (s *ProblemService) Get(userID, id uint) (*model.Problem, error) {
	problem, err := s.ProblemRepo.FindByID(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProblemNotFound
	}
	return problem, err
}

func (s *ProblemService) List(userID uint, filter repository.ProblemFilter) ([]model.Problem, int64, error) {
	return s.ProblemRepo.List(userID, filter)
}

func (s *ProblemService) Update(userID, id uint, req UpdateProblemRequest) (*model.Problem, error) {
	problem, err := s.ProblemRepo.FindByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProblemNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		problem.Title = *req.Title
	}
	if req.Platform != nil {
		problem.Platform = *req.Platform
	}
	if req.Difficulty != nil {
		problem.Difficulty = *req.Difficulty
	}
	if req.Topic != nil {
		problem.Topic = *req.Topic
	}
	if req.TimeSpent != nil {
		problem.TimeSpent = *req.TimeSpent
	}
	if req.Outcome != nil {
		problem.Outcome = *req.Outcome
	}
	if req.Date != nil {
		problem.Date = *req.Date
	}
	if req.Link != nil {
		problem.Link = *req.Link
	}
	if req.CodeLink != nil {
		problem.CodeLink = *req.CodeLink
	}
	if req.Tags != nil {
		problem.Tags = req.Tags
	}
	if req.Notes != nil {
		problem.Notes = *req.Notes
	}

	if err := s.ProblemRepo.Update(problem); err != nil {
		return nil, err
	}
	return problem, nil
}

func (s *ProblemService) Delete(userID, id uint) error {
	err := s.ProblemRepo.Delete(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrProblemNotFound
	}
	return err
}

// Stats summarizes the user's full problem history.
func (s *ProblemService) Stats(userID uint) (*model.ProblemStats, error) {
	problems, err := s.ProblemRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	solved := 0
	minutes := 0
	topicSet := make(map[string]bool)
	byPlatform := make(map[model.Platform]int)
	for _, p := range problems {
		if p.Outcome == model.OutcomeSolved {
			solved++
		}
		minutes += p.TimeSpent
		topicSet[p.Topic] = true
		byPlatform[p.Platform]++
	}

	return &model.ProblemStats{
		TotalProblems:  len(problems),
		SolvedProblems: solved,
		SuccessRate:    SuccessRate(solved, len(problems)),
		TotalTimeSpent: minutes,
		DistinctTopics: len(topicSet),
		CurrentStreak:  CurrentStreak(problems, time.Now()),
		ByDifficulty:   AnalyzeDifficulty(problems),
		ByPlatform:     byPlatform,
	}, nil
}

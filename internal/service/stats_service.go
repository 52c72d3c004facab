package service

import (
	"time"

	"github.com/nutriscan-api/internal/models"
	"github.com/nutriscan-api/internal/repository"
)

// StatsService handles the daily stats view and explicit stats updates
type StatsService struct {
	statsRepo *repository.StatsRepository

	// now is replaceable in tests to simulate day boundaries
	now func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo *repository.StatsRepository) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		now:       time.Now,
	}
}

// UpdateStatsRequest represents the stats update request. Absent fields are
// left untouched; consumed and macros are accepted but not applied, since the
// accumulators are owned by meal writes.
type UpdateStatsRequest struct {
	DailyGoal *int                     `json:"dailyGoal"`
	Consumed  *int                     `json:"consumed"`
	Macros    map[string]models.Macros `json:"macros"`
	Streak    *int                     `json:"streak"`
	Weight    *float64                 `json:"weight"`
}

// Get returns the user's daily stats view for the current date
func (s *StatsService) Get(userID uint) (*models.StatsResponse, error) {
	stats, err := s.statsRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return EffectiveStats(stats, s.now().Format(dateLayout)), nil
}

// EffectiveStats derives the stats view for the given date without mutating
// the stored row. A row last written on an earlier date presents zeroed
// accumulators; the physical reset happens lazily on the next meal write.
// Goals, streak and weight are date-independent.
func EffectiveStats(stats *models.UserStats, today string) *models.StatsResponse {
	resp := &models.StatsResponse{
		DailyGoal: stats.DailyGoal,
		Streak:    stats.Streak,
		Weight:    stats.Weight,
	}
	resp.Macros.Protein.Goal = stats.ProteinGoal
	resp.Macros.Carbs.Goal = stats.CarbsGoal
	resp.Macros.Fat.Goal = stats.FatGoal

	if stats.LastUpdated == nil || *stats.LastUpdated != today {
		return resp
	}

	resp.Consumed = stats.Consumed
	resp.Macros.Protein.Current = stats.ProteinCurrent
	resp.Macros.Carbs.Current = stats.CarbsCurrent
	resp.Macros.Fat.Current = stats.FatCurrent
	return resp
}

// Update applies a partial update to dailyGoal, streak and weight. Supplying
// no updatable field is still a success.
func (s *StatsService) Update(userID uint, req *UpdateStatsRequest) error {
	fields := map[string]interface{}{}
	if req.DailyGoal != nil {
		fields["daily_goal"] = *req.DailyGoal
	}
	if req.Streak != nil {
		fields["streak"] = *req.Streak
	}
	if req.Weight != nil {
		fields["weight"] = *req.Weight
	}
	return s.statsRepo.UpdateFields(userID, fields)
}

package service

import (
	"testing"
	"time"

	"github.com/nutriscan-api/internal/models"
	"github.com/nutriscan-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func TestEffectiveStatsFreshRow(t *testing.T) {
	row := &models.UserStats{
		DailyGoal:      1800,
		Consumed:       650,
		ProteinCurrent: 22,
		ProteinGoal:    120,
		CarbsCurrent:   80,
		CarbsGoal:      250,
		FatCurrent:     18,
		FatGoal:        65,
		Streak:         4,
		Weight:         72.5,
		LastUpdated:    strPtr("2025-03-10"),
	}

	resp := EffectiveStats(row, "2025-03-10")
	assert.Equal(t, 650, resp.Consumed)
	assert.Equal(t, 22.0, resp.Macros.Protein.Current)
	assert.Equal(t, 80.0, resp.Macros.Carbs.Current)
	assert.Equal(t, 18.0, resp.Macros.Fat.Current)
	assert.Equal(t, 1800, resp.DailyGoal)
	assert.Equal(t, 4, resp.Streak)
	assert.Equal(t, 72.5, resp.Weight)
}

func TestEffectiveStatsStaleRowZeroesAccumulators(t *testing.T) {
	row := &models.UserStats{
		DailyGoal:      1800,
		Consumed:       650,
		ProteinCurrent: 22,
		ProteinGoal:    120,
		CarbsGoal:      250,
		FatGoal:        65,
		Streak:         4,
		Weight:         72.5,
		LastUpdated:    strPtr("2025-03-10"),
	}

	resp := EffectiveStats(row, "2025-03-11")
	assert.Equal(t, 0, resp.Consumed)
	assert.Equal(t, 0.0, resp.Macros.Protein.Current)
	// Goals, streak and weight are date-independent
	assert.Equal(t, 120.0, resp.Macros.Protein.Goal)
	assert.Equal(t, 250.0, resp.Macros.Carbs.Goal)
	assert.Equal(t, 65.0, resp.Macros.Fat.Goal)
	assert.Equal(t, 1800, resp.DailyGoal)
	assert.Equal(t, 4, resp.Streak)
	assert.Equal(t, 72.5, resp.Weight)
}

func TestEffectiveStatsNeverWrittenRow(t *testing.T) {
	resp := EffectiveStats(models.DefaultStats(1), "2025-03-10")
	assert.Equal(t, 0, resp.Consumed)
	assert.Equal(t, models.DefaultDailyGoal, resp.DailyGoal)
	assert.Equal(t, 0.0, resp.Macros.Fat.Current)
	assert.Equal(t, float64(models.DefaultFatGoal), resp.Macros.Fat.Goal)
}

func TestUpdateStatsPartial(t *testing.T) {
	env := newTestEnv(t)
	userID, _ := env.registerUser(t, "alice")

	require.NoError(t, env.stats.Update(userID, &UpdateStatsRequest{
		DailyGoal: intPtr(1700),
	}))

	var stored models.UserStats
	require.NoError(t, env.db.Where("user_id = ?", userID).First(&stored).Error)
	assert.Equal(t, 1700, stored.DailyGoal)
	// Untouched fields keep their defaults
	assert.Equal(t, 0, stored.Streak)
	assert.Equal(t, float64(models.DefaultWeight), stored.Weight)

	require.NoError(t, env.stats.Update(userID, &UpdateStatsRequest{
		Streak: intPtr(7),
		Weight: floatPtr(71.2),
	}))

	require.NoError(t, env.db.Where("user_id = ?", userID).First(&stored).Error)
	assert.Equal(t, 1700, stored.DailyGoal)
	assert.Equal(t, 7, stored.Streak)
	assert.Equal(t, 71.2, stored.Weight)
}

func TestUpdateStatsIgnoresAccumulatorFields(t *testing.T) {
	env := newTestEnv(t)
	userID, _ := env.registerUser(t, "alice")

	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	env.setClock(day)
	_, err := env.meals.Create(userID, mealReq("oatmeal", 500, 10, 50, 20))
	require.NoError(t, err)

	// consumed and macros are accepted on the wire but the accumulators are
	// owned by meal writes
	require.NoError(t, env.stats.Update(userID, &UpdateStatsRequest{
		Consumed: intPtr(9999),
		Macros:   map[string]models.Macros{"protein": {Protein: 1}},
	}))

	stats, err := env.stats.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, 500, stats.Consumed)
	assert.Equal(t, 10.0, stats.Macros.Protein.Current)
}

func TestUpdateStatsEmptyIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	userID, _ := env.registerUser(t, "alice")

	require.NoError(t, env.stats.Update(userID, &UpdateStatsRequest{}))

	var stored models.UserStats
	require.NoError(t, env.db.Where("user_id = ?", userID).First(&stored).Error)
	assert.Equal(t, models.DefaultDailyGoal, stored.DailyGoal)
}

func TestGetStatsMissingRow(t *testing.T) {
	env := newTestEnv(t)

	// A stats row exists for every registered user; a missing one is an
	// invariant violation surfaced as not-found.
	user := &models.User{Username: "ghost", PasswordHash: "x"}
	require.NoError(t, env.db.Create(user).Error)

	_, err := env.stats.Get(user.ID)
	assert.ErrorIs(t, err, repository.ErrStatsNotFound)
}

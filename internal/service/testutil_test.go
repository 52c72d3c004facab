package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nutriscan-api/internal/models"
	"github.com/nutriscan-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. The shared-cache name is
// derived from the test name so parallel tests never see each other's data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.UserStats{},
	))
	return db
}

type testEnv struct {
	db       *gorm.DB
	userRepo *repository.UserRepository
	auth     *AuthService
	meals    *MealService
	stats    *StatsService
	profile  *ProfileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	mealRepo := repository.NewMealRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	return &testEnv{
		db:       db,
		userRepo: userRepo,
		auth:     NewAuthService(db, userRepo, statsRepo),
		meals:    NewMealService(db, mealRepo, statsRepo, false),
		stats:    NewStatsService(statsRepo),
		profile:  NewProfileService(userRepo),
	}
}

// registerUser registers a user and returns its id and session token.
func (e *testEnv) registerUser(t *testing.T, username string) (uint, string) {
	t.Helper()

	resp, err := e.auth.Register(&RegisterRequest{Username: username, Password: "pw1"})
	require.NoError(t, err)

	user, err := e.userRepo.GetByUsername(username)
	require.NoError(t, err)
	return user.ID, resp.Token
}

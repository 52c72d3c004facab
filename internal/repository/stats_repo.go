package repository

import (
	"errors"

	"github.com/nutriscan-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrStatsNotFound = errors.New("stats not found")
)

// StatsRepository handles daily stats data access
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *StatsRepository) WithTx(tx *gorm.DB) *StatsRepository {
	return &StatsRepository{db: tx}
}

// Create creates a stats row
func (r *StatsRepository) Create(stats *models.UserStats) error {
	return r.db.Create(stats).Error
}

// GetByUserID retrieves the stats row for a user
func (r *StatsRepository) GetByUserID(userID uint) (*models.UserStats, error) {
	var stats models.UserStats
	result := r.db.Where("user_id = ?", userID).First(&stats)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrStatsNotFound
		}
		return nil, result.Error
	}
	return &stats, nil
}

// Accumulate folds a meal's calories and macros into today's accumulators as a
// single conditional UPDATE. When the stored last_updated date is not today
// (stale day or never written), the accumulators are replaced by the meal's
// values instead of added to them. Running this as one statement keeps two
// concurrent meal writes from both reading the same stale base and dropping
// an update.
func (r *StatsRepository) Accumulate(userID uint, today string, calories int, macros models.Macros) error {
	result := r.db.Model(&models.UserStats{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"consumed":        gorm.Expr("CASE WHEN last_updated = ? THEN consumed + ? ELSE ? END", today, calories, calories),
		"protein_current": gorm.Expr("CASE WHEN last_updated = ? THEN protein_current + ? ELSE ? END", today, macros.Protein, macros.Protein),
		"carbs_current":   gorm.Expr("CASE WHEN last_updated = ? THEN carbs_current + ? ELSE ? END", today, macros.Carbs, macros.Carbs),
		"fat_current":     gorm.Expr("CASE WHEN last_updated = ? THEN fat_current + ? ELSE ? END", today, macros.Fat, macros.Fat),
		"last_updated":    today,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Every user gets a stats row at registration, so this is an
		// invariant violation rather than a normal miss.
		return ErrStatsNotFound
	}
	return nil
}

// Decrement subtracts a deleted meal's values from today's accumulators.
// It only applies while last_updated is still today; a stale row is left
// untouched since its accumulators are already treated as zero by readers.
func (r *StatsRepository) Decrement(userID uint, today string, calories int, macros models.Macros) error {
	result := r.db.Model(&models.UserStats{}).
		Where("user_id = ? AND last_updated = ?", userID, today).
		Updates(map[string]interface{}{
			"consumed":        gorm.Expr("consumed - ?", calories),
			"protein_current": gorm.Expr("protein_current - ?", macros.Protein),
			"carbs_current":   gorm.Expr("carbs_current - ?", macros.Carbs),
			"fat_current":     gorm.Expr("fat_current - ?", macros.Fat),
		})
	return result.Error
}

// UpdateFields applies a partial update to goal/streak/weight columns.
// Only the columns present in the map are touched.
func (r *StatsRepository) UpdateFields(userID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.UserStats{}).Where("user_id = ?", userID).Updates(fields).Error
}

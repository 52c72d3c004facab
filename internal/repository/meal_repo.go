package repository

import (
	"errors"

	"github.com/nutriscan-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMealNotFound = errors.New("meal not found")
)

// MealRepository handles meal data access
type MealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new MealRepository
func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *MealRepository) WithTx(tx *gorm.DB) *MealRepository {
	return &MealRepository{db: tx}
}

// Create creates a new meal entry
func (r *MealRepository) Create(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

// GetByUserID retrieves all meals for a user, newest first
func (r *MealRepository) GetByUserID(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	result := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&meals)
	return meals, result.Error
}

// GetByIDAndUserID retrieves a meal by ID scoped to its owner.
// A meal owned by another user yields the same ErrMealNotFound as a missing
// one, so callers cannot probe for foreign ids.
func (r *MealRepository) GetByIDAndUserID(id string, userID uint) (*models.Meal, error) {
	var meal models.Meal
	result := r.db.Where("id = ? AND user_id = ?", id, userID).First(&meal)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, result.Error
	}
	return &meal, nil
}

// DeleteByIDAndUserID deletes a meal scoped to its owner
func (r *MealRepository) DeleteByIDAndUserID(id string, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Meal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

package service

import (
	"time"

	"github.com/nutriscan-api/internal/models"
	"github.com/nutriscan-api/internal/repository"
	"gorm.io/gorm"
)

// dateLayout is the calendar-date format used for day attribution.
const dateLayout = "2006-01-02"

// MealService handles the per-user meal ledger and its stats side effects
type MealService struct {
	db                *gorm.DB
	mealRepo          *repository.MealRepository
	statsRepo         *repository.StatsRepository
	decrementOnDelete bool

	// now is replaceable in tests to simulate day boundaries
	now func() time.Time
}

// NewMealService creates a new MealService
func NewMealService(db *gorm.DB, mealRepo *repository.MealRepository, statsRepo *repository.StatsRepository, decrementOnDelete bool) *MealService {
	return &MealService{
		db:                db,
		mealRepo:          mealRepo,
		statsRepo:         statsRepo,
		decrementOnDelete: decrementOnDelete,
		now:               time.Now,
	}
}

// CreateMealRequest represents the meal creation request
type CreateMealRequest struct {
	Name     string        `json:"name" binding:"required"`
	Type     string        `json:"type" binding:"required"`
	Time     string        `json:"time" binding:"required"`
	Calories int           `json:"calories"`
	Macros   models.Macros `json:"macros"`
	ImageURL *string       `json:"imageUrl"`
	Insight  *string       `json:"insight"`
}

// List retrieves all meals for a user, newest first
func (s *MealService) List(userID uint) ([]models.MealResponse, error) {
	meals, err := s.mealRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.MealResponse, len(meals))
	for i, meal := range meals {
		responses[i] = meal.ToResponse()
	}
	return responses, nil
}

// Create persists a meal entry and folds its values into the owner's daily
// accumulators. Both writes run in one transaction so a failed stats update
// never leaves an orphaned ledger entry.
func (s *MealService) Create(userID uint, req *CreateMealRequest) (*models.MealResponse, error) {
	createdAt := s.now()
	today := createdAt.Format(dateLayout)

	meal := &models.Meal{
		UserID:    userID,
		Name:      req.Name,
		Type:      req.Type,
		Time:      req.Time,
		Calories:  req.Calories,
		Protein:   req.Macros.Protein,
		Carbs:     req.Macros.Carbs,
		Fat:       req.Macros.Fat,
		ImageURL:  req.ImageURL,
		Insight:   req.Insight,
		CreatedAt: createdAt,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.mealRepo.WithTx(tx).Create(meal); err != nil {
			return err
		}
		return s.statsRepo.WithTx(tx).Accumulate(userID, today, req.Calories, req.Macros)
	})
	if err != nil {
		return nil, err
	}

	resp := meal.ToResponse()
	return &resp, nil
}

// Delete removes a meal entry owned by the user. By default the daily
// accumulators keep the deleted meal's contribution; with decrement-on-delete
// enabled, today's accumulators are rewound inside the same transaction.
func (s *MealService) Delete(userID uint, mealID string) error {
	meal, err := s.mealRepo.GetByIDAndUserID(mealID, userID)
	if err != nil {
		return err
	}

	if !s.decrementOnDelete {
		return s.mealRepo.DeleteByIDAndUserID(mealID, userID)
	}

	today := s.now().Format(dateLayout)
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.mealRepo.WithTx(tx).DeleteByIDAndUserID(mealID, userID); err != nil {
			return err
		}
		macros := models.Macros{Protein: meal.Protein, Carbs: meal.Carbs, Fat: meal.Fat}
		return s.statsRepo.WithTx(tx).Decrement(userID, today, meal.Calories, macros)
	})
}

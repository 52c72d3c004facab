package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nutriscan-api/internal/middleware"
	"github.com/nutriscan-api/internal/repository"
	"github.com/nutriscan-api/internal/service"
	"github.com/nutriscan-api/pkg/response"
)

// MealHandler handles meal ledger requests
type MealHandler struct {
	mealService *service.MealService
}

// NewMealHandler creates a new MealHandler
func NewMealHandler(mealService *service.MealService) *MealHandler {
	return &MealHandler{
		mealService: mealService,
	}
}

// ListMeals returns the caller's meals, newest first
// GET /meals
func (h *MealHandler) ListMeals(c *gin.Context) {
	userID := middleware.GetUserID(c)

	meals, err := h.mealService.List(userID)
	if err != nil {
		response.InternalError(c, "failed to list meals")
		return
	}

	response.Success(c, meals)
}

// CreateMeal logs a meal and updates the caller's daily stats
// POST /meals
func (h *MealHandler) CreateMeal(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	meal, err := h.mealService.Create(userID, &req)
	if err != nil {
		response.InternalError(c, "failed to create meal")
		return
	}

	response.Success(c, meal)
}

// DeleteMeal removes one of the caller's meals
// DELETE /meals/:id
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	userID := middleware.GetUserID(c)
	mealID := c.Param("id")

	if err := h.mealService.Delete(userID, mealID); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			response.NotFound(c, "meal not found")
			return
		}
		response.InternalError(c, "failed to delete meal")
		return
	}

	response.Message(c, "meal deleted")
}

// RegisterRoutes registers meal routes behind the auth middleware
func (h *MealHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	meals := rg.Group("/meals")
	meals.Use(authMiddleware)
	{
		meals.GET("", h.ListMeals)
		meals.POST("", h.CreateMeal)
		meals.DELETE("/:id", h.DeleteMeal)
	}
}

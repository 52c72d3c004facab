package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal represents one logged meal entry. Entries are immutable after
// creation except for deletion, and are only visible to their owner.
type Meal struct {
	ID       string  `gorm:"primaryKey;size:36" json:"id"`
	UserID   uint    `gorm:"index;not null" json:"-"`
	Name     string  `gorm:"size:200;not null" json:"name"`
	Type     string  `gorm:"size:50;not null" json:"type"`
	Time     string  `gorm:"size:50;not null" json:"time"`
	Calories int     `gorm:"not null" json:"calories"`
	Protein  float64 `gorm:"not null" json:"-"`
	Carbs    float64 `gorm:"not null" json:"-"`
	Fat      float64 `gorm:"not null" json:"-"`
	ImageURL *string `gorm:"size:500" json:"-"`
	Insight  *string `gorm:"type:text" json:"-"`
	// CreatedAt orders the meal list and attributes the entry to a calendar day.
	CreatedAt time.Time `json:"-"`
}

// TableName specifies the table name for Meal model
func (Meal) TableName() string {
	return "meals"
}

// BeforeCreate assigns a UUID primary key so meal ids are opaque strings on the wire.
func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Macros is the protein/carbs/fat triple in grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MealResponse is the wire representation of a meal entry.
// CreatedAt carries the calendar date only.
type MealResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Time      string  `json:"time"`
	Calories  int     `json:"calories"`
	Macros    Macros  `json:"macros"`
	ImageURL  *string `json:"imageUrl"`
	Insight   *string `json:"insight"`
	CreatedAt *string `json:"createdAt"`
}

// ToResponse converts a stored meal to its wire representation.
func (m *Meal) ToResponse() MealResponse {
	var createdAt *string
	if !m.CreatedAt.IsZero() {
		d := m.CreatedAt.Format("2006-01-02")
		createdAt = &d
	}
	return MealResponse{
		ID:       m.ID,
		Name:     m.Name,
		Type:     m.Type,
		Time:     m.Time,
		Calories: m.Calories,
		Macros: Macros{
			Protein: m.Protein,
			Carbs:   m.Carbs,
			Fat:     m.Fat,
		},
		ImageURL:  m.ImageURL,
		Insight:   m.Insight,
		CreatedAt: createdAt,
	}
}

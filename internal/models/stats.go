package models

// Default values for a freshly created stats row.
const (
	DefaultDailyGoal   = 2000
	DefaultProteinGoal = 120
	DefaultCarbsGoal   = 250
	DefaultFatGoal     = 65
	DefaultWeight      = 60
)

// UserStats is the single per-user daily statistics row. The accumulators
// (Consumed and the *Current columns) are only meaningful while LastUpdated
// equals the current calendar date; readers must treat them as zero otherwise.
// The physical reset is deferred to the next meal write.
type UserStats struct {
	UserID         uint    `gorm:"primaryKey" json:"-"`
	DailyGoal      int     `gorm:"not null;default:2000" json:"daily_goal"`
	Consumed       int     `gorm:"not null;default:0" json:"consumed"`
	ProteinCurrent float64 `gorm:"not null;default:0" json:"protein_current"`
	ProteinGoal    float64 `gorm:"not null;default:120" json:"protein_goal"`
	CarbsCurrent   float64 `gorm:"not null;default:0" json:"carbs_current"`
	CarbsGoal      float64 `gorm:"not null;default:250" json:"carbs_goal"`
	FatCurrent     float64 `gorm:"not null;default:0" json:"fat_current"`
	FatGoal        float64 `gorm:"not null;default:65" json:"fat_goal"`
	Streak         int     `gorm:"not null;default:0" json:"streak"`
	Weight         float64 `gorm:"not null;default:60" json:"weight"`
	// LastUpdated is the calendar date (2006-01-02) of the last accumulation.
	// Stored as a plain date string so the day check is a portable equality.
	LastUpdated *string `gorm:"size:10" json:"last_updated"`
}

// TableName specifies the table name for UserStats model
func (UserStats) TableName() string {
	return "user_stats"
}

// DefaultStats returns the stats row created at registration.
func DefaultStats(userID uint) *UserStats {
	return &UserStats{
		UserID:      userID,
		DailyGoal:   DefaultDailyGoal,
		ProteinGoal: DefaultProteinGoal,
		CarbsGoal:   DefaultCarbsGoal,
		FatGoal:     DefaultFatGoal,
		Weight:      DefaultWeight,
	}
}

// MacroProgress is one accumulator/goal pair on the wire.
type MacroProgress struct {
	Current float64 `json:"current"`
	Goal    float64 `json:"goal"`
}

// StatsResponse is the wire representation of the daily stats view.
type StatsResponse struct {
	DailyGoal int `json:"dailyGoal"`
	Consumed  int `json:"consumed"`
	Macros    struct {
		Protein MacroProgress `json:"protein"`
		Carbs   MacroProgress `json:"carbs"`
		Fat     MacroProgress `json:"fat"`
	} `json:"macros"`
	Streak int     `json:"streak"`
	Weight float64 `json:"weight"`
}

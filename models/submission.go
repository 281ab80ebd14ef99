package models

import "time"

const (
	// DefaultCharacter is the protagonist every submission defaults to.
	DefaultCharacter = "Deniusth"
	// DefaultEra is the era tag used when the form leaves it blank.
	DefaultEra = "AF"
)

// Submission is one crowd-submitted prediction. Rows are insert-only: the
// API never updates or deletes them.
type Submission struct {
	ID             int64     `gorm:"column:id;primaryKey" json:"id"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	Character      string    `gorm:"column:character" json:"character"`
	Username       string    `gorm:"column:username" json:"username"`
	Cause          string    `gorm:"column:cause" json:"cause"`
	Probability    int       `gorm:"column:probability" json:"probability"`
	Era            string    `gorm:"column:era" json:"era"`
	Year           *int      `gorm:"column:year" json:"year"`
	MonthIndex     int       `gorm:"column:month_index" json:"month_index"`
	MonthName      string    `gorm:"column:month_name" json:"month_name"`
	DayOfMonth     int       `gorm:"column:day_of_month" json:"day_of_month"`
	DayOfWeekIndex int       `gorm:"column:day_of_week_index" json:"day_of_week_index"`
	DayOfWeekName  string    `gorm:"column:day_of_week_name" json:"day_of_week_name"`
}

func (Submission) TableName() string { return "submissions" }

// MonthAggregate is one row of the per-month consensus, recomputed from all
// of a character's submissions on every read.
type MonthAggregate struct {
	MonthIndex     int     `json:"month_index"`
	MonthName      string  `json:"month_name"`
	AvgProbability float64 `json:"avg_probability"`
	Count          int     `json:"count"`
}

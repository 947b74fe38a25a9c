package model

import "time"

// StageTransitionModel is the GORM-specific struct for the 'stage_transitions' table.
type StageTransitionModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EventID    string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerID int64     `gorm:"not null;index"`
	FromStage  string    `gorm:"type:varchar(16);not null"`
	ToStage    string    `gorm:"type:varchar(16);not null"`
	ActivityID *int64
	Source     string    `gorm:"type:varchar(16);not null"`
	OccurredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (StageTransitionModel) TableName() string {
	return "stage_transitions"
}

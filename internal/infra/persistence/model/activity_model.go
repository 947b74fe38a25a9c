package model

import "time"

// ActivityModel is the GORM-specific struct for the 'customer_activities' table.
// idx_customer_activities_pending backs the reconciler drain query.
type ActivityModel struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64      `gorm:"not null;index"`
	ActivityType string     `gorm:"type:varchar(32);not null"`
	Processed    bool       `gorm:"not null;default:false;index:idx_customer_activities_pending,priority:1"`
	ProcessedAt  *time.Time
	CreatedAt    time.Time `gorm:"not null;index:idx_customer_activities_pending,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "customer_activities"
}

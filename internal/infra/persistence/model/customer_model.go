// Package model holds the GORM-specific structs that map onto database tables.
package model

import "time"

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	FirstName    string     `gorm:"type:varchar(100)"`
	LastName     string     `gorm:"type:varchar(100)"`
	Email        string     `gorm:"type:varchar(255);index"`
	Phone        string     `gorm:"type:varchar(32)"`
	Segment      string     `gorm:"type:varchar(64)"`
	Gender       string     `gorm:"type:varchar(16)"`
	DateOfBirth  *time.Time `gorm:"type:date"`
	CurrentStage string     `gorm:"type:varchar(16);not null;default:'NEW'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Activities []ActivityModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

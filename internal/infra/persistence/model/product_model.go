package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	Title         string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Available     bool            `gorm:"not null;default:true"`
	BestSeller    bool            `gorm:"not null;default:false"`
	Rating        int             `gorm:"not null;default:0"`
	PurchaseCount int64           `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

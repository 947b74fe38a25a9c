package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item that can be recommended to a customer.
type Product struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Available     bool            `json:"available"`
	BestSeller    bool            `json:"best_seller"`
	Rating        int             `json:"rating"`
	PurchaseCount int64           `json:"purchase_count"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

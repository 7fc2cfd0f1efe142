package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a single sales transaction. Sales are read-only once loaded.
type Sale struct {
	ID              int             `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ProductName     string          `gorm:"size:255;not null" json:"product_name"`
	Category        string          `gorm:"size:100;not null;index" json:"category"`
	Region          string          `gorm:"size:100;not null;index" json:"region"`
	SalesPersonName string          `gorm:"size:255;not null;index" json:"sales_person_name"`
	Amount          decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	SaleDate        time.Time       `gorm:"not null;index" json:"sale_date"`
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales_data"
}

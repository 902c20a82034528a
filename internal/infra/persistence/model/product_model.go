package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table.
//
// The images column predates the list-typed shape: historic rows hold a bare
// URL string, later rows a JSON-encoded array. All reads go through
// NormalizeImages; all new writes persist the canonical JSON array form.
type ProductModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Description    string          `gorm:"type:text;not null"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Images         datatypes.JSON  `gorm:"type:jsonb"`
	Status         string          `gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	FurtherDetails datatypes.JSON  `gorm:"type:jsonb"`
	Tags           pq.StringArray  `gorm:"type:text[]"`
	Featured       bool            `gorm:"not null;default:false;index"`
	Slug           string          `gorm:"type:varchar(255);unique;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Category   *CategoryModel   `gorm:"foreignKey:CategoryID"`
	OrderItems []OrderItemModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

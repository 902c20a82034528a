// Package model holds the GORM persistence models mirroring the database
// tables. They are exported so the GORM Gen tool can consume them from
// cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Slug        string    `gorm:"type:varchar(100);unique;not null"`
	Image       string    `gorm:"type:text"`
	IconName    string    `gorm:"type:varchar(50)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []ProductModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

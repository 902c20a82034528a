package model

import "github.com/google/uuid"

// VisitorModel mirrors the 'visitors' table, expected to contain at most
// one row. Increments happen in a single atomic statement.
type VisitorModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Count int64     `gorm:"not null;default:0;check:count >= 0"`
}

// TableName explicitly sets the table name for GORM.
func (VisitorModel) TableName() string {
	return "visitors"
}

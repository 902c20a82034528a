package model

import "time"

// WebsiteSettingModel mirrors the 'website_settings' table, a generic
// key/value store backing the content-managed hero and CTA blocks.
type WebsiteSettingModel struct {
	Key       string `gorm:"type:varchar(100);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WebsiteSettingModel) TableName() string {
	return "website_settings"
}

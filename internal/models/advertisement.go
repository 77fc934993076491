// Package models contains data structures for the application's domain models.
package models

// Advertisement represents a promotional banner shown in the hub.
type Advertisement struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Title          string `gorm:"not null" json:"title"`
	Description    string `gorm:"type:text" json:"description"`
	ImageURL       string `json:"image_url"`
	DestinationURL string `json:"destination_url"`
	IsActive       bool   `gorm:"index" json:"is_active"`
}

// TableName specifies the table name for GORM
func (Advertisement) TableName() string {
	return "advertisements"
}

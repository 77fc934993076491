// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a post authored by a user.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"size:255;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
}

// TableName specifies the table name for GORM
func (Post) TableName() string {
	return "posts"
}

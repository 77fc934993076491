// Package models contains data structures for the application's domain models.
package models

import "time"

// Like represents a like on a post. Likes carry a boolean flag rather
// than toggle semantics; there is no "unlike" state, removal deletes the row.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Liked     bool      `gorm:"not null" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
}

// TableName specifies the table name for GORM
func (Like) TableName() string {
	return "likes"
}

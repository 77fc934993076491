// Package models contains data structures for the application's domain models.
package models

import "time"

// Event represents a scheduled event organized by a user. Participants
// are tracked through the event_participants join table.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:30;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`

	Participants []User `gorm:"many2many:event_participants" json:"participants,omitempty"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}

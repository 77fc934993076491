// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a member of the social hub.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:20;not null" json:"name"`
	Surname     string    `gorm:"size:30;not null" json:"surname"`
	Gender      string    `gorm:"size:10" json:"gender"`
	Birthday    time.Time `json:"birthday"`
	Location    string    `gorm:"size:20" json:"location"`
	PhoneNumber string    `gorm:"size:15" json:"phone_number"`
	GroupID     *uint     `gorm:"index" json:"group_id,omitempty"`
	Group       *Group    `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// Package models contains data structures for the application's domain models.
package models

// Group represents a user group with a capacity limit.
// Membership is implicit: users reference a group through User.GroupID,
// and nothing prevents assigning a user to a group that is already full.
type Group struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:20" json:"name"`
	Limit int    `gorm:"column:member_limit" json:"limit"`

	Users []User `gorm:"foreignKey:GroupID" json:"users,omitempty"`
}

// TableName specifies the table name for GORM
func (Group) TableName() string {
	return "groups"
}

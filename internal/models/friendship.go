// Package models contains data structures for the application's domain models.
package models

// Friendship represents an unordered pair of users. No uniqueness or
// symmetry is enforced on the pair; duplicate rows are possible.
type Friendship struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	User1ID uint `gorm:"not null;index" json:"user1_id"`
	User2ID uint `gorm:"not null;index" json:"user2_id"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}

package model

import "time"

// User represents a registered author account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"size:50;not null"`
	LastName     string    `json:"last_name" gorm:"size:50;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"size:200;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName is used by the web templates when listing posts.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

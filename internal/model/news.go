package model

import "time"

// News represents a single news post owned by a user.
type News struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Author is populated only when the listing preloads it for display.
	Author *User `json:"-" gorm:"foreignKey:UserID"`
}

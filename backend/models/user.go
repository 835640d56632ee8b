package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	College      string

	// LeetcodeUsername is nullable so that accounts without a linked
	// LeetCode profile don't collide on the unique constraint.
	LeetcodeUsername *string `gorm:"unique;size:50"`
	LeetcodeScore    int     `gorm:"default:0"`
}

type LoginHistory struct {
	gorm.Model
	UserID    uint
	LoginTime time.Time
}

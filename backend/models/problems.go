package models

import "gorm.io/gorm"

type Problem struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Difficulty  string `gorm:"not null"` // easy, medium, hard
	Topic       string
	Source      string // e.g. "LeetCode", "GeeksforGeeks"
	SourceURL   string
	CompanyTags string
}

// SolvedProblem links a user to a problem they marked as solved.
type SolvedProblem struct {
	gorm.Model
	UserID    uint   `gorm:"uniqueIndex:idx_user_problem"`
	ProblemID uint   `gorm:"uniqueIndex:idx_user_problem"`
	Status    string `gorm:"default:solved"`
}

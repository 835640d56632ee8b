package models

import (
	"time"

	"gorm.io/gorm"
)

type MockInterview struct {
	gorm.Model
	InterviewerID   uint `gorm:"not null"`
	IntervieweeID   uint `gorm:"not null"`
	Interviewer     User `gorm:"foreignKey:InterviewerID"`
	Interviewee     User `gorm:"foreignKey:IntervieweeID"`
	ScheduledTime   time.Time
	DurationMinutes int    `gorm:"default:60"`
	InterviewType   string `gorm:"default:technical"` // technical, behavioral, system_design, coding, mixed
	Status          string `gorm:"default:scheduled"` // scheduled, in_progress, completed, cancelled, no_show
	MeetingLink     string
	Notes           string
	Score           *int // out of 10, set by the interviewer afterwards
	Feedback        string
	TechnicalAreas  string
}

type InterviewExperience struct {
	gorm.Model
	UserID           uint `gorm:"not null"`
	Company          string
	Role             string
	Date             time.Time
	RoundDetails     string
	OverallFeedback  string
	ExperienceType   string `gorm:"default:neutral"` // positive, neutral, negative
	Outcome          string `gorm:"default:pending"` // selected, rejected, pending, withdrew
	DifficultyRating int    `gorm:"default:3"`       // 1-5
	PreparationTime  int    // weeks
	TipsAndAdvice    string
	IsAnonymous      bool `gorm:"default:true"`
}

type ReferralProfile struct {
	gorm.Model
	UserID           uint `gorm:"unique;not null"`
	PreferredCompany string
	TargetRole       string
	WhyReferMe       string
	ExperienceYears  int
	KeySkills        string
	Achievements     string
	ResumeLink       string
	LinkedinProfile  string
	GithubProfile    string
	Status           string `gorm:"default:active"` // active, inactive, hired
}

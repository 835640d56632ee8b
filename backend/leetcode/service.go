package leetcode

import (
	"project/backend/models"
	"strings"

	"gorm.io/gorm"
)

// Service ties the stats fetcher and score calculation to user rows.
// The fetcher is injected so tests can substitute a fake.
type Service struct {
	db      *gorm.DB
	fetcher StatsFetcher
}

func NewService(db *gorm.DB, fetcher StatsFetcher) *Service {
	return &Service{db: db, fetcher: fetcher}
}

// SyncResult is the snapshot returned after a successful profile sync.
type SyncResult struct {
	LeetcodeUsername string `json:"leetcode_username"`
	College          string `json:"college"`
	LeetcodeScore    int    `json:"leetcode_score"`
	Stats            Stats  `json:"stats"`
}

// RefreshOutcome aggregates one bulk refresh run.
type RefreshOutcome struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// LeaderboardEntry is one ranked row of the leaderboard projection.
type LeaderboardEntry struct {
	ID               uint   `json:"id"`
	Username         string `json:"username"`
	LeetcodeUsername string `json:"leetcode_username"`
	LeetcodeScore    int    `json:"leetcode_score"`
	College          string `json:"college"`
}

// SyncProfile links a LeetCode username and college to a user and stores
// the freshly computed score. Validation happens before any network call.
// Re-submitting the same username for the same user is allowed, so the
// operation is idempotent while upstream stats are unchanged.
func (s *Service) SyncProfile(userID uint, leetcodeUsername, college string) (*SyncResult, error) {
	leetcodeUsername = strings.TrimSpace(leetcodeUsername)
	college = strings.TrimSpace(college)

	if leetcodeUsername == "" {
		return nil, ErrUsernameRequired
	}
	if college == "" {
		return nil, ErrCollegeRequired
	}

	var taken int64
	err := s.db.Model(&models.User{}).
		Where("leetcode_username = ? AND id <> ?", leetcodeUsername, userID).
		Count(&taken).Error
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, ErrUsernameTaken
	}

	stats, err := s.fetcher.FetchStats(leetcodeUsername)
	if err != nil {
		return nil, err
	}

	score := Score(stats.Easy, stats.Medium, stats.Hard)

	// Single-row update keeps username, college and score consistent for
	// concurrent readers.
	err = s.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"leetcode_username": leetcodeUsername,
		"college":           college,
		"leetcode_score":    score,
	}).Error
	if err != nil {
		return nil, err
	}

	return &SyncResult{
		LeetcodeUsername: leetcodeUsername,
		College:          college,
		LeetcodeScore:    score,
		Stats:            *stats,
	}, nil
}

// RefreshAll recomputes the score for every user with a linked LeetCode
// username, strictly sequentially. A fetch failure only counts against
// that user; the run continues. Only the score column is written here,
// the linked username and college are already validated.
func (s *Service) RefreshAll() (*RefreshOutcome, error) {
	var users []models.User
	err := s.db.
		Where("leetcode_username IS NOT NULL AND leetcode_username <> ''").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	outcome := &RefreshOutcome{}
	for _, user := range users {
		stats, err := s.fetcher.FetchStats(*user.LeetcodeUsername)
		if err != nil {
			outcome.Failed++
			continue
		}

		err = s.db.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("leetcode_score", Score(stats.Easy, stats.Medium, stats.Hard)).Error
		if err != nil {
			// Persistence failure is not part of the per-user failure
			// policy; it aborts the whole run.
			return nil, err
		}
		outcome.Updated++
	}

	return outcome, nil
}

// Leaderboard returns ranked users with linked LeetCode profiles. A
// requester with a college sees only that college; a requester without
// one sees everybody. Ties break on ascending user id for determinism.
func (s *Service) Leaderboard(requester *models.User) ([]LeaderboardEntry, error) {
	query := s.db.Model(&models.User{}).
		Where("leetcode_username IS NOT NULL AND leetcode_username <> ''")

	if requester.College != "" {
		query = query.Where("college = ?", requester.College)
	}

	var users []models.User
	if err := query.Order("leetcode_score DESC, id ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, LeaderboardEntry{
			ID:               user.ID,
			Username:         user.Username,
			LeetcodeUsername: *user.LeetcodeUsername,
			LeetcodeScore:    user.LeetcodeScore,
			College:          user.College,
		})
	}
	return entries, nil
}

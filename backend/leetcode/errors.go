package leetcode

import "errors"

var (
	// ErrUsernameRequired is returned when a sync request carries no
	// LeetCode username.
	ErrUsernameRequired = errors.New("leetcode username is required")

	// ErrCollegeRequired is returned when a sync request carries no college.
	ErrCollegeRequired = errors.New("college name is required")

	// ErrUsernameTaken is returned when the LeetCode username is already
	// linked to a different account.
	ErrUsernameTaken = errors.New("leetcode username already connected to another account")

	// ErrStatsUnavailable covers every failure reaching or parsing the
	// LeetCode API: bad status, malformed payload, unknown user, timeout.
	// Callers cannot and should not distinguish them.
	ErrStatsUnavailable = errors.New("could not fetch leetcode stats")
)

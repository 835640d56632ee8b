package leetcode

// Score computes the weighted LeetCode score: Easy×1 + Medium×2 + Hard×3.
// Counts stay well within int range, so no overflow handling is needed.
func Score(easy, medium, hard int) int {
	return easy*1 + medium*2 + hard*3
}

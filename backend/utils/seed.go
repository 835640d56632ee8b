package utils

import (
	"project/backend/models"

	"gorm.io/gorm"
)

// SeedProblems loads the curated starter problem set when the table is empty.
func SeedProblems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Problem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	problems := []models.Problem{
		{Title: "Two Sum", Difficulty: "easy", Topic: "Arrays", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/two-sum/", CompanyTags: "Google, Amazon, Microsoft, Facebook, Apple"},
		{Title: "Best Time to Buy and Sell Stock", Difficulty: "easy", Topic: "Arrays", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/best-time-to-buy-and-sell-stock/", CompanyTags: "Amazon, Microsoft, Google, Facebook"},
		{Title: "Contains Duplicate", Difficulty: "easy", Topic: "Arrays", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/contains-duplicate/", CompanyTags: "Google, Amazon, Microsoft"},
		{Title: "3Sum", Difficulty: "medium", Topic: "Arrays", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/3sum/", CompanyTags: "Amazon, Microsoft, Google, Facebook, Apple"},
		{Title: "Container With Most Water", Difficulty: "medium", Topic: "Arrays", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/container-with-most-water/", CompanyTags: "Amazon, Microsoft, Google, Facebook"},
		{Title: "Product of Array Except Self", Difficulty: "medium", Topic: "Arrays", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/product-of-array-except-self/", CompanyTags: "Amazon, Microsoft, Google, Facebook, Apple"},
		{Title: "Trapping Rain Water", Difficulty: "hard", Topic: "Arrays", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/trapping-rain-water/", CompanyTags: "Amazon, Google, Microsoft, Facebook"},
		{Title: "Valid Parentheses", Difficulty: "easy", Topic: "Stacks", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/valid-parentheses/", CompanyTags: "Google, Amazon, Microsoft, Facebook"},
		{Title: "Merge Two Sorted Lists", Difficulty: "easy", Topic: "Linked Lists", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/merge-two-sorted-lists/", CompanyTags: "Amazon, Microsoft, Apple"},
		{Title: "Reverse Linked List", Difficulty: "easy", Topic: "Linked Lists", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/reverse-linked-list/", CompanyTags: "Google, Amazon, Microsoft, Facebook, Apple"},
		{Title: "Longest Substring Without Repeating Characters", Difficulty: "medium", Topic: "Strings", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/longest-substring-without-repeating-characters/", CompanyTags: "Amazon, Microsoft, Google, Facebook"},
		{Title: "Binary Tree Level Order Traversal", Difficulty: "medium", Topic: "Trees", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/binary-tree-level-order-traversal/", CompanyTags: "Amazon, Microsoft, Facebook"},
		{Title: "Validate Binary Search Tree", Difficulty: "medium", Topic: "Trees", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/validate-binary-search-tree/", CompanyTags: "Amazon, Microsoft, Facebook, Google"},
		{Title: "Merge K Sorted Lists", Difficulty: "hard", Topic: "Linked Lists", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/merge-k-sorted-lists/", CompanyTags: "Amazon, Google, Facebook, Microsoft"},
		{Title: "Word Ladder", Difficulty: "hard", Topic: "Graphs", Source: "LeetCode", SourceURL: "https://leetcode.com/problems/word-ladder/", CompanyTags: "Amazon, Google, Facebook"},
	}

	return db.Create(&problems).Error
}

package controllers

import (
	"fmt"
	"project/backend/config"
	"project/backend/leetcode"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LeaderboardController struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Leetcode *leetcode.Service
}

func NewLeaderboardController(db *gorm.DB, cfg *config.Config, lc *leetcode.Service) *LeaderboardController {
	return &LeaderboardController{DB: db, Cfg: cfg, Leetcode: lc}
}

// GetLeaderboard godoc
// @Summary College-scoped LeetCode leaderboard
// @Description Returns users with linked LeetCode profiles ranked by score; scoped to the requester's college when set
// @Tags leaderboard
// @Produce json
// @Success 200 {array} leetcode.LeaderboardEntry
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, lc.DB, lc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	entries, err := lc.Leetcode.Leaderboard(user)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch leaderboard")
	}

	return c.JSON(entries)
}

// RefreshScores godoc
// @Summary Refresh all LeetCode scores
// @Description Re-fetches stats for every user with a linked LeetCode username and stores fresh scores
// @Tags leaderboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /leaderboard/refresh [post]
func (lc *LeaderboardController) RefreshScores(c *fiber.Ctx) error {
	if _, err := utils.CurrentUser(c, lc.DB, lc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	outcome, err := lc.Leetcode.RefreshAll()
	if err != nil {
		return utils.InternalServerError(c, "Could not refresh scores")
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Updated %d users, %d failed", outcome.Updated, outcome.Failed),
		"updated": outcome.Updated,
		"failed":  outcome.Failed,
	})
}

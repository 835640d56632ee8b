package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/leetcode"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Leetcode *leetcode.Service
}

func NewUserController(db *gorm.DB, cfg *config.Config, lc *leetcode.Service) *UserController {
	return &UserController{DB: db, Cfg: cfg, Leetcode: lc}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns authenticated user's profile data
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, uc.DB, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	leetcodeUsername := ""
	if user.LeetcodeUsername != nil {
		leetcodeUsername = *user.LeetcodeUsername
	}

	return c.JSON(fiber.Map{
		"id":                user.ID,
		"username":          user.Username,
		"email":             user.Email,
		"first_name":        user.FirstName,
		"last_name":         user.LastName,
		"college":           user.College,
		"role":              user.Role,
		"leetcode_username": leetcodeUsername,
		"leetcode_score":    user.LeetcodeScore,
	})
}

type UpdateLeetcodeInput struct {
	LeetcodeUsername string `json:"leetcode_username"`
	College          string `json:"college"`
}

// UpdateLeetcodeProfile godoc
// @Summary Link a LeetCode profile
// @Description Stores the user's LeetCode username and college, fetches their stats and computes the weighted score
// @Tags users
// @Accept json
// @Produce json
// @Param input body UpdateLeetcodeInput true "LeetCode username and college"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/leetcode [post]
func (uc *UserController) UpdateLeetcodeProfile(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, uc.DB, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input UpdateLeetcodeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	result, err := uc.Leetcode.SyncProfile(user.ID, input.LeetcodeUsername, input.College)
	switch {
	case errors.Is(err, leetcode.ErrUsernameRequired):
		return utils.BadRequest(c, "LeetCode username is required")
	case errors.Is(err, leetcode.ErrCollegeRequired):
		return utils.BadRequest(c, "College name is required")
	case errors.Is(err, leetcode.ErrUsernameTaken):
		return utils.BadRequest(c, "This LeetCode username is already connected to another account")
	case errors.Is(err, leetcode.ErrStatsUnavailable):
		return utils.BadRequest(c, "Could not fetch stats for this LeetCode username. Please check if the username is correct.")
	case err != nil:
		return utils.InternalServerError(c, "Could not update profile")
	}

	return c.JSON(fiber.Map{
		"message":           "Profile updated successfully",
		"leetcode_username": result.LeetcodeUsername,
		"college":           result.College,
		"leetcode_score":    result.LeetcodeScore,
		"stats": fiber.Map{
			"Easy":   result.Stats.Easy,
			"Medium": result.Stats.Medium,
			"Hard":   result.Stats.Hard,
		},
	})
}

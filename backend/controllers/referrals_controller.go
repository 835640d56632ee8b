package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReferralsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewReferralsController(db *gorm.DB, cfg *config.Config) *ReferralsController {
	return &ReferralsController{DB: db, Cfg: cfg}
}

func referralJSON(profile *models.ReferralProfile) fiber.Map {
	return fiber.Map{
		"id":                profile.ID,
		"preferred_company": profile.PreferredCompany,
		"target_role":       profile.TargetRole,
		"why_refer_me":      profile.WhyReferMe,
		"experience_years":  profile.ExperienceYears,
		"key_skills":        profile.KeySkills,
		"achievements":      profile.Achievements,
		"resume_link":       profile.ResumeLink,
		"linkedin_profile":  profile.LinkedinProfile,
		"github_profile":    profile.GithubProfile,
		"status":            profile.Status,
		"created_at":        profile.CreatedAt,
		"updated_at":        profile.UpdatedAt,
	}
}

// GetReferralProfile returns the requester's referral profile.
func (rc *ReferralsController) GetReferralProfile(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, rc.DB, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var profile models.ReferralProfile
	if err := rc.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return utils.NotFound(c, "No referral profile found")
	}

	return c.JSON(referralJSON(&profile))
}

// UpsertReferralProfile creates or updates the requester's referral profile.
func (rc *ReferralsController) UpsertReferralProfile(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, rc.DB, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		PreferredCompany string `json:"preferred_company"`
		TargetRole       string `json:"target_role"`
		WhyReferMe       string `json:"why_refer_me"`
		ExperienceYears  int    `json:"experience_years"`
		KeySkills        string `json:"key_skills"`
		Achievements     string `json:"achievements"`
		ResumeLink       string `json:"resume_link"`
		LinkedinProfile  string `json:"linkedin_profile"`
		GithubProfile    string `json:"github_profile"`
		Status           string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.PreferredCompany == "" {
		return utils.BadRequest(c, "Preferred Company is required")
	}
	if input.WhyReferMe == "" {
		return utils.BadRequest(c, "Why Refer Me is required")
	}

	message := "Referral profile updated successfully"
	var profile models.ReferralProfile
	err = rc.DB.Where("user_id = ?", user.ID).First(&profile).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.InternalServerError(c, "Could not query database")
		}
		profile = models.ReferralProfile{UserID: user.ID, Status: "active"}
		message = "Referral profile created successfully"
	}

	profile.PreferredCompany = input.PreferredCompany
	profile.WhyReferMe = input.WhyReferMe
	if input.TargetRole != "" {
		profile.TargetRole = input.TargetRole
	}
	if input.ExperienceYears != 0 {
		profile.ExperienceYears = input.ExperienceYears
	}
	if input.KeySkills != "" {
		profile.KeySkills = input.KeySkills
	}
	if input.Achievements != "" {
		profile.Achievements = input.Achievements
	}
	if input.ResumeLink != "" {
		profile.ResumeLink = input.ResumeLink
	}
	if input.LinkedinProfile != "" {
		profile.LinkedinProfile = input.LinkedinProfile
	}
	if input.GithubProfile != "" {
		profile.GithubProfile = input.GithubProfile
	}
	if input.Status != "" {
		profile.Status = input.Status
	}

	if err := rc.DB.Save(&profile).Error; err != nil {
		return utils.InternalServerError(c, "Could not save referral profile")
	}

	return c.JSON(fiber.Map{
		"message": message,
		"profile": referralJSON(&profile),
	})
}

// DeleteReferralProfile removes the requester's referral profile.
func (rc *ReferralsController) DeleteReferralProfile(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, rc.DB, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	// Hard delete so the one-profile-per-user constraint doesn't block a
	// future re-creation.
	result := rc.DB.Unscoped().Where("user_id = ?", user.ID).Delete(&models.ReferralProfile{})
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not delete referral profile")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "No referral profile found")
	}

	return c.JSON(fiber.Map{"message": "Referral profile deleted successfully"})
}

// GetReferralStats aggregates active referral profiles by target company.
func (rc *ReferralsController) GetReferralStats(c *fiber.Ctx) error {
	if _, err := utils.CurrentUser(c, rc.DB, rc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var total int64
	rc.DB.Model(&models.ReferralProfile{}).Count(&total)

	var active int64
	rc.DB.Model(&models.ReferralProfile{}).Where("status = ?", "active").Count(&active)

	type bucket struct {
		Label string `json:"label"`
		Count int64  `json:"count"`
	}
	var topCompanies []bucket
	rc.DB.Model(&models.ReferralProfile{}).
		Select("preferred_company AS label, COUNT(*) AS count").
		Group("preferred_company").
		Order("count DESC").
		Limit(10).
		Scan(&topCompanies)

	return c.JSON(fiber.Map{
		"total_profiles":  total,
		"active_profiles": active,
		"top_companies":   topCompanies,
	})
}

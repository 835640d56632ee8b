package controllers

import (
	"project/backend/config"
	"project/backend/models"
	"project/backend/utils"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ExperiencesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewExperiencesController(db *gorm.DB, cfg *config.Config) *ExperiencesController {
	return &ExperiencesController{DB: db, Cfg: cfg}
}

func experienceAuthor(db *gorm.DB, exp *models.InterviewExperience) string {
	if exp.IsAnonymous {
		return "Anonymous"
	}
	var user models.User
	if err := db.First(&user, exp.UserID).Error; err != nil {
		return "Anonymous"
	}
	return user.Username
}

func experienceJSON(db *gorm.DB, exp *models.InterviewExperience, includeAuthor bool) fiber.Map {
	data := fiber.Map{
		"id":                exp.ID,
		"company":           exp.Company,
		"role":              exp.Role,
		"date":              exp.Date.Format("2006-01-02"),
		"round_details":     exp.RoundDetails,
		"overall_feedback":  exp.OverallFeedback,
		"experience_type":   exp.ExperienceType,
		"outcome":           exp.Outcome,
		"difficulty_rating": exp.DifficultyRating,
		"preparation_time":  exp.PreparationTime,
		"tips_and_advice":   exp.TipsAndAdvice,
		"is_anonymous":      exp.IsAnonymous,
		"created_at":        exp.CreatedAt,
		"updated_at":        exp.UpdatedAt,
	}
	if includeAuthor {
		data["author"] = experienceAuthor(db, exp)
	}
	return data
}

// GetExperiences godoc
// @Summary Browse shared interview experiences
// @Tags interviews
// @Produce json
// @Param company query string false "Filter by company"
// @Param experience_type query string false "Filter by experience type"
// @Param outcome query string false "Filter by outcome"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} utils.PaginatedResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /interviews/experiences [get]
func (ec *ExperiencesController) GetExperiences(c *fiber.Ctx) error {
	if _, err := utils.CurrentUser(c, ec.DB, ec.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	company := c.Query("company")
	experienceType := c.Query("experience_type")
	outcome := c.Query("outcome")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	query := ec.DB.Model(&models.InterviewExperience{})
	if company != "" {
		query = query.Where("LOWER(company) LIKE LOWER(?)", "%"+company+"%")
	}
	if experienceType != "" && experienceType != "all" {
		query = query.Where("experience_type = ?", experienceType)
	}
	if outcome != "" && outcome != "all" {
		query = query.Where("outcome = ?", outcome)
	}

	var total int64
	query.Count(&total)

	var experiences []models.InterviewExperience
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&experiences).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch experiences")
	}

	data := make([]fiber.Map, 0, len(experiences))
	for i := range experiences {
		data = append(data, experienceJSON(ec.DB, &experiences[i], true))
	}

	return utils.Paginate(c, data, total, page, pageSize)
}

// CreateExperience godoc
// @Summary Share an interview experience
// @Tags interviews
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /interviews/experiences [post]
func (ec *ExperiencesController) CreateExperience(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, ec.DB, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Company          string `json:"company"`
		Role             string `json:"role"`
		Date             string `json:"date"`
		RoundDetails     string `json:"round_details"`
		OverallFeedback  string `json:"overall_feedback"`
		ExperienceType   string `json:"experience_type"`
		Outcome          string `json:"outcome"`
		DifficultyRating int    `json:"difficulty_rating"`
		PreparationTime  int    `json:"preparation_time"`
		TipsAndAdvice    string `json:"tips_and_advice"`
		IsAnonymous      *bool  `json:"is_anonymous"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Company == "" || input.Role == "" || input.Date == "" {
		return utils.BadRequest(c, "Company, role and date are required")
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return utils.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
	}

	experience := models.InterviewExperience{
		UserID:          user.ID,
		Company:         input.Company,
		Role:            input.Role,
		Date:            date,
		RoundDetails:    input.RoundDetails,
		OverallFeedback: input.OverallFeedback,
		TipsAndAdvice:   input.TipsAndAdvice,
		PreparationTime: input.PreparationTime,
		IsAnonymous:     true,
	}
	if input.ExperienceType != "" {
		experience.ExperienceType = input.ExperienceType
	}
	if input.Outcome != "" {
		experience.Outcome = input.Outcome
	}
	if input.DifficultyRating != 0 {
		experience.DifficultyRating = input.DifficultyRating
	}
	if input.IsAnonymous != nil {
		experience.IsAnonymous = *input.IsAnonymous
	}

	if err := ec.DB.Create(&experience).Error; err != nil {
		return utils.InternalServerError(c, "Failed to create experience")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Interview experience created successfully",
		"experience": experienceJSON(ec.DB, &experience, false),
	})
}

// GetMyExperiences returns the requester's own shared experiences.
func (ec *ExperiencesController) GetMyExperiences(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, ec.DB, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var experiences []models.InterviewExperience
	err = ec.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&experiences).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch experiences")
	}

	data := make([]fiber.Map, 0, len(experiences))
	for i := range experiences {
		data = append(data, experienceJSON(ec.DB, &experiences[i], false))
	}
	return c.JSON(data)
}

// UpdateExperience updates one of the requester's own experiences.
func (ec *ExperiencesController) UpdateExperience(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, ec.DB, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	experienceID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid experience id")
	}

	var experience models.InterviewExperience
	err = ec.DB.Where("id = ? AND user_id = ?", experienceID, user.ID).
		First(&experience).Error
	if err != nil {
		return utils.NotFound(c, "Experience not found or not authorized")
	}

	var input map[string]interface{}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if v, ok := input["company"].(string); ok {
		experience.Company = v
	}
	if v, ok := input["role"].(string); ok {
		experience.Role = v
	}
	if v, ok := input["date"].(string); ok && v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			return utils.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		}
		experience.Date = date
	}
	if v, ok := input["round_details"].(string); ok {
		experience.RoundDetails = v
	}
	if v, ok := input["overall_feedback"].(string); ok {
		experience.OverallFeedback = v
	}
	if v, ok := input["experience_type"].(string); ok {
		experience.ExperienceType = v
	}
	if v, ok := input["outcome"].(string); ok {
		experience.Outcome = v
	}
	if v, ok := input["difficulty_rating"].(float64); ok {
		experience.DifficultyRating = int(v)
	}
	if v, ok := input["preparation_time"].(float64); ok {
		experience.PreparationTime = int(v)
	}
	if v, ok := input["tips_and_advice"].(string); ok {
		experience.TipsAndAdvice = v
	}
	if v, ok := input["is_anonymous"].(bool); ok {
		experience.IsAnonymous = v
	}

	if err := ec.DB.Save(&experience).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update experience")
	}

	return c.JSON(fiber.Map{"message": "Experience updated successfully"})
}

// DeleteExperience removes one of the requester's own experiences.
func (ec *ExperiencesController) DeleteExperience(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, ec.DB, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	experienceID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid experience id")
	}

	result := ec.DB.Where("id = ? AND user_id = ?", experienceID, user.ID).
		Delete(&models.InterviewExperience{})
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to delete experience")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Experience not found or not authorized")
	}

	return c.JSON(fiber.Map{"message": "Experience deleted successfully"})
}

// GetExperienceStats aggregates the shared-experience corpus.
func (ec *ExperiencesController) GetExperienceStats(c *fiber.Ctx) error {
	if _, err := utils.CurrentUser(c, ec.DB, ec.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var total int64
	ec.DB.Model(&models.InterviewExperience{}).Count(&total)

	type bucket struct {
		Label string `json:"label"`
		Count int64  `json:"count"`
	}

	var experienceTypes []bucket
	ec.DB.Model(&models.InterviewExperience{}).
		Select("experience_type AS label, COUNT(*) AS count").
		Group("experience_type").
		Scan(&experienceTypes)

	var outcomes []bucket
	ec.DB.Model(&models.InterviewExperience{}).
		Select("outcome AS label, COUNT(*) AS count").
		Group("outcome").
		Scan(&outcomes)

	var topCompanies []bucket
	ec.DB.Model(&models.InterviewExperience{}).
		Select("company AS label, COUNT(*) AS count").
		Group("company").
		Order("count DESC").
		Limit(10).
		Scan(&topCompanies)

	var avgDifficulty float64
	ec.DB.Model(&models.InterviewExperience{}).
		Select("COALESCE(AVG(difficulty_rating), 0)").
		Scan(&avgDifficulty)

	return c.JSON(fiber.Map{
		"total_experiences":  total,
		"experience_types":   experienceTypes,
		"outcomes":           outcomes,
		"top_companies":      topCompanies,
		"average_difficulty": avgDifficulty,
	})
}

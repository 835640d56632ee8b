package controllers

import (
	"project/backend/config"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProblemsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProblemsController(db *gorm.DB, cfg *config.Config) *ProblemsController {
	return &ProblemsController{DB: db, Cfg: cfg}
}

// GetProblems godoc
// @Summary List problems
// @Description Returns the curated problem set with the requester's solved flags
// @Tags problems
// @Produce json
// @Param difficulty query string false "Filter by difficulty (easy|medium|hard|all)"
// @Param topic query string false "Filter by topic"
// @Param search query string false "Search in title and company tags"
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /problems [get]
func (pc *ProblemsController) GetProblems(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, pc.DB, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	difficulty := c.Query("difficulty")
	topic := c.Query("topic")
	search := c.Query("search")

	query := pc.DB.Model(&models.Problem{})
	if difficulty != "" && difficulty != "all" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if topic != "" && topic != "all" {
		query = query.Where("LOWER(topic) LIKE LOWER(?)", "%"+topic+"%")
	}
	if search != "" {
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(company_tags) LIKE LOWER(?)",
			"%"+search+"%", "%"+search+"%",
		)
	}

	var problems []models.Problem
	if err := query.Order("created_at").Find(&problems).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch problems")
	}

	var solved []models.SolvedProblem
	pc.DB.Where("user_id = ?", user.ID).Find(&solved)
	solvedIDs := make(map[uint]bool, len(solved))
	for _, sp := range solved {
		solvedIDs[sp.ProblemID] = true
	}

	problemsData := make([]fiber.Map, 0, len(problems))
	for _, problem := range problems {
		problemsData = append(problemsData, fiber.Map{
			"id":           problem.ID,
			"title":        problem.Title,
			"difficulty":   problem.Difficulty,
			"topic":        problem.Topic,
			"source":       problem.Source,
			"source_url":   problem.SourceURL,
			"company_tags": problem.CompanyTags,
			"is_solved":    solvedIDs[problem.ID],
			"created_at":   problem.CreatedAt,
		})
	}

	return c.JSON(problemsData)
}

// MarkProblemSolved godoc
// @Summary Mark a problem solved or unsolved
// @Tags problems
// @Accept json
// @Produce json
// @Param id path int true "Problem ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /problems/{id}/solve [post]
func (pc *ProblemsController) MarkProblemSolved(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, pc.DB, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	problemID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid problem id")
	}

	var problem models.Problem
	if err := pc.DB.First(&problem, problemID).Error; err != nil {
		return utils.NotFound(c, "Problem not found")
	}

	var input struct {
		Action string `json:"action"`
	}
	if err := c.BodyParser(&input); err != nil {
		input.Action = ""
	}
	if input.Action == "" {
		input.Action = "solve"
	}

	switch input.Action {
	case "solve":
		var existing models.SolvedProblem
		err := pc.DB.Where("user_id = ? AND problem_id = ?", user.ID, problem.ID).First(&existing).Error
		if err != nil {
			pc.DB.Create(&models.SolvedProblem{
				UserID:    user.ID,
				ProblemID: problem.ID,
				Status:    "solved",
			})
		} else {
			existing.Status = "solved"
			pc.DB.Save(&existing)
		}
		return c.JSON(fiber.Map{
			"message":   "Problem \"" + problem.Title + "\" marked as solved",
			"is_solved": true,
		})

	case "unsolve":
		// Hard delete so the (user, problem) unique pair can be recreated
		// if the problem is solved again later.
		pc.DB.Unscoped().
			Where("user_id = ? AND problem_id = ?", user.ID, problem.ID).
			Delete(&models.SolvedProblem{})
		return c.JSON(fiber.Map{
			"message":   "Problem \"" + problem.Title + "\" marked as unsolved",
			"is_solved": false,
		})

	default:
		return utils.BadRequest(c, "Invalid action. Use \"solve\" or \"unsolve\"")
	}
}

// GetUserStats godoc
// @Summary Problem-solving statistics
// @Description Solved counts per difficulty against the catalogue totals
// @Tags problems
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /problems/stats [get]
func (pc *ProblemsController) GetUserStats(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, pc.DB, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	solvedByTier := func(difficulty string) int64 {
		var count int64
		pc.DB.Model(&models.SolvedProblem{}).
			Joins("JOIN problems ON problems.id = solved_problems.problem_id").
			Where("solved_problems.user_id = ? AND problems.difficulty = ?", user.ID, difficulty).
			Count(&count)
		return count
	}
	totalByTier := func(difficulty string) int64 {
		var count int64
		pc.DB.Model(&models.Problem{}).Where("difficulty = ?", difficulty).Count(&count)
		return count
	}

	easy, medium, hard := solvedByTier("easy"), solvedByTier("medium"), solvedByTier("hard")
	totalEasy, totalMedium, totalHard := totalByTier("easy"), totalByTier("medium"), totalByTier("hard")

	return c.JSON(fiber.Map{
		"solved": fiber.Map{
			"easy":   easy,
			"medium": medium,
			"hard":   hard,
			"total":  easy + medium + hard,
		},
		"total": fiber.Map{
			"easy":   totalEasy,
			"medium": totalMedium,
			"hard":   totalHard,
			"total":  totalEasy + totalMedium + totalHard,
		},
	})
}

// CreateProblem godoc
// @Summary Add a problem to the catalogue
// @Tags problems
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/problems [post]
func (pc *ProblemsController) CreateProblem(c *fiber.Ctx) error {
	var input struct {
		Title       string `json:"title"`
		Difficulty  string `json:"difficulty"`
		Topic       string `json:"topic"`
		Source      string `json:"source"`
		SourceURL   string `json:"source_url"`
		CompanyTags string `json:"company_tags"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}
	switch input.Difficulty {
	case "easy", "medium", "hard":
	default:
		return utils.BadRequest(c, "Difficulty must be easy, medium or hard")
	}

	problem := models.Problem{
		Title:       input.Title,
		Difficulty:  input.Difficulty,
		Topic:       input.Topic,
		Source:      input.Source,
		SourceURL:   input.SourceURL,
		CompanyTags: input.CompanyTags,
	}
	if err := pc.DB.Create(&problem).Error; err != nil {
		return utils.InternalServerError(c, "Could not create problem")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Problem created successfully",
		"id":      problem.ID,
	})
}

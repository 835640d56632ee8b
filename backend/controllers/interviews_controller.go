package controllers

import (
	"project/backend/config"
	"project/backend/models"
	"project/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewInterviewsController(db *gorm.DB, cfg *config.Config) *InterviewsController {
	return &InterviewsController{DB: db, Cfg: cfg}
}

func interviewJSON(interview *models.MockInterview, viewer *models.User) fiber.Map {
	role := "interviewee"
	if interview.InterviewerID == viewer.ID {
		role = "interviewer"
	}
	return fiber.Map{
		"id": interview.ID,
		"interviewer": fiber.Map{
			"id":       interview.Interviewer.ID,
			"username": interview.Interviewer.Username,
			"is_me":    interview.InterviewerID == viewer.ID,
		},
		"interviewee": fiber.Map{
			"id":       interview.Interviewee.ID,
			"username": interview.Interviewee.Username,
			"is_me":    interview.IntervieweeID == viewer.ID,
		},
		"scheduled_time":   interview.ScheduledTime,
		"duration_minutes": interview.DurationMinutes,
		"interview_type":   interview.InterviewType,
		"status":           interview.Status,
		"meeting_link":     interview.MeetingLink,
		"notes":            interview.Notes,
		"score":            interview.Score,
		"feedback":         interview.Feedback,
		"technical_areas":  interview.TechnicalAreas,
		"created_at":       interview.CreatedAt,
		"role":             role,
	}
}

// GetInterviews godoc
// @Summary List the requester's mock interviews
// @Description Interviews where the requester is interviewer or interviewee
// @Tags interviews
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /interviews/mock [get]
func (ic *InterviewsController) GetInterviews(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, ic.DB, ic.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var interviews []models.MockInterview
	err = ic.DB.Preload("Interviewer").Preload("Interviewee").
		Where("interviewer_id = ? OR interviewee_id = ?", user.ID, user.ID).
		Order("scheduled_time DESC").
		Find(&interviews).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch interviews")
	}

	data := make([]fiber.Map, 0, len(interviews))
	for i := range interviews {
		data = append(data, interviewJSON(&interviews[i], user))
	}
	return c.JSON(data)
}

// CreateInterview godoc
// @Summary Schedule a mock interview
// @Description The requester becomes the interviewee; a meeting room link is generated when none is supplied
// @Tags interviews
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /interviews/mock [post]
func (ic *InterviewsController) CreateInterview(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, ic.DB, ic.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		InterviewerID   uint   `json:"interviewer_id"`
		ScheduledTime   string `json:"scheduled_time"`
		DurationMinutes int    `json:"duration_minutes"`
		InterviewType   string `json:"interview_type"`
		Notes           string `json:"notes"`
		TechnicalAreas  string `json:"technical_areas"`
		MeetingLink     string `json:"meeting_link"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.InterviewerID == 0 || input.ScheduledTime == "" || input.InterviewType == "" {
		return utils.BadRequest(c, "Interviewer, scheduled time and interview type are required")
	}

	var interviewer models.User
	if err := ic.DB.First(&interviewer, input.InterviewerID).Error; err != nil {
		return utils.NotFound(c, "Interviewer not found")
	}

	scheduledTime, err := time.Parse(time.RFC3339, input.ScheduledTime)
	if err != nil {
		return utils.BadRequest(c, "Invalid date format")
	}

	// One interviewer slot per clock hour.
	hourStart := scheduledTime.Truncate(time.Hour)
	var clash int64
	ic.DB.Model(&models.MockInterview{}).
		Where("interviewer_id = ? AND scheduled_time >= ? AND scheduled_time < ? AND status IN ?",
			interviewer.ID, hourStart, hourStart.Add(time.Hour),
			[]string{"scheduled", "in_progress"}).
		Count(&clash)
	if clash > 0 {
		return utils.BadRequest(c, "Interviewer is not available at this time")
	}

	duration := input.DurationMinutes
	if duration == 0 {
		duration = 60
	}
	meetingLink := input.MeetingLink
	if meetingLink == "" {
		meetingLink = "https://meet.jit.si/" + uuid.NewString()
	}

	interview := models.MockInterview{
		InterviewerID:   interviewer.ID,
		IntervieweeID:   user.ID,
		ScheduledTime:   scheduledTime,
		DurationMinutes: duration,
		InterviewType:   input.InterviewType,
		Status:          "scheduled",
		Notes:           input.Notes,
		TechnicalAreas:  input.TechnicalAreas,
		MeetingLink:     meetingLink,
	}
	if err := ic.DB.Create(&interview).Error; err != nil {
		return utils.InternalServerError(c, "Failed to create interview")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Mock interview scheduled successfully",
		"interview": fiber.Map{
			"id":               interview.ID,
			"interviewer":      interviewer.Username,
			"scheduled_time":   interview.ScheduledTime,
			"interview_type":   interview.InterviewType,
			"duration_minutes": interview.DurationMinutes,
			"meeting_link":     interview.MeetingLink,
		},
	})
}

// GetAvailableInterviewers lists every other user as a potential interviewer.
func (ic *InterviewsController) GetAvailableInterviewers(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, ic.DB, ic.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var interviewers []models.User
	err = ic.DB.Where("id <> ?", user.ID).Find(&interviewers).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch interviewers")
	}

	data := make([]fiber.Map, 0, len(interviewers))
	for _, interviewer := range interviewers {
		data = append(data, fiber.Map{
			"id":         interviewer.ID,
			"username":   interviewer.Username,
			"first_name": interviewer.FirstName,
			"last_name":  interviewer.LastName,
		})
	}
	return c.JSON(data)
}

// UpdateInterview lets participants update an interview. Only the
// interviewer may set status, score, feedback and the meeting link;
// notes and technical areas stay editable while still scheduled.
func (ic *InterviewsController) UpdateInterview(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, ic.DB, ic.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	interviewID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid interview id")
	}

	var interview models.MockInterview
	if err := ic.DB.First(&interview, interviewID).Error; err != nil {
		return utils.NotFound(c, "Interview not found")
	}

	if interview.InterviewerID != user.ID && interview.IntervieweeID != user.ID {
		return utils.Forbidden(c, "Not authorized to update this interview")
	}

	var input map[string]interface{}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if interview.InterviewerID == user.ID {
		if v, ok := input["status"].(string); ok {
			interview.Status = v
		}
		if v, ok := input["score"].(float64); ok {
			score := int(v)
			interview.Score = &score
		}
		if v, ok := input["feedback"].(string); ok {
			interview.Feedback = v
		}
		if v, ok := input["meeting_link"].(string); ok {
			interview.MeetingLink = v
		}
	}

	if interview.Status == "scheduled" {
		if v, ok := input["notes"].(string); ok {
			interview.Notes = v
		}
		if v, ok := input["technical_areas"].(string); ok {
			interview.TechnicalAreas = v
		}
	}

	if err := ic.DB.Save(&interview).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update interview")
	}

	return c.JSON(fiber.Map{"message": "Interview updated successfully"})
}

// CancelInterview cancels a scheduled interview for either participant.
func (ic *InterviewsController) CancelInterview(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, ic.DB, ic.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	interviewID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid interview id")
	}

	var interview models.MockInterview
	if err := ic.DB.First(&interview, interviewID).Error; err != nil {
		return utils.NotFound(c, "Interview not found")
	}

	if interview.InterviewerID != user.ID && interview.IntervieweeID != user.ID {
		return utils.Forbidden(c, "Not authorized to cancel this interview")
	}
	if interview.Status != "scheduled" {
		return utils.BadRequest(c, "Can only cancel scheduled interviews")
	}

	interview.Status = "cancelled"
	if err := ic.DB.Save(&interview).Error; err != nil {
		return utils.InternalServerError(c, "Failed to cancel interview")
	}

	return c.JSON(fiber.Map{"message": "Interview cancelled successfully"})
}

// GetInterviewStats summarizes the requester's interviews on both sides
// of the table.
func (ic *InterviewsController) GetInterviewStats(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, ic.DB, ic.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	countBy := func(column string, status string) int64 {
		var count int64
		query := ic.DB.Model(&models.MockInterview{}).Where(column+" = ?", user.ID)
		if status != "" {
			query = query.Where("status = ?", status)
		}
		query.Count(&count)
		return count
	}

	var avgScore float64
	ic.DB.Model(&models.MockInterview{}).
		Where("interviewee_id = ? AND status = ? AND score IS NOT NULL", user.ID, "completed").
		Select("COALESCE(AVG(score), 0)").
		Scan(&avgScore)

	return c.JSON(fiber.Map{
		"as_interviewee": fiber.Map{
			"total":     countBy("interviewee_id", ""),
			"completed": countBy("interviewee_id", "completed"),
			"scheduled": countBy("interviewee_id", "scheduled"),
			"cancelled": countBy("interviewee_id", "cancelled"),
		},
		"as_interviewer": fiber.Map{
			"total":     countBy("interviewer_id", ""),
			"completed": countBy("interviewer_id", "completed"),
			"scheduled": countBy("interviewer_id", "scheduled"),
			"cancelled": countBy("interviewer_id", "cancelled"),
		},
		"average_score": avgScore,
	})
}

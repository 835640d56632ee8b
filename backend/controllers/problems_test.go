package controllers_test

import (
	"fmt"
	"project/backend/models"
	"project/backend/utils"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProblemsWithSolvedFlags(t *testing.T) {
	app, db, cfg := setupApp(t, "")
	require.NoError(t, utils.SeedProblems(db))

	user, token := authedUser(t, db, cfg, "solver", "")

	var twoSum models.Problem
	require.NoError(t, db.Where("title = ?", "Two Sum").First(&twoSum).Error)
	require.NoError(t, db.Create(&models.SolvedProblem{
		UserID:    user.ID,
		ProblemID: twoSum.ID,
		Status:    "solved",
	}).Error)

	resp, problems := doJSONList(t, app, "GET", "/api/problems/", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, problems)

	for _, problem := range problems {
		if problem["title"] == "Two Sum" {
			assert.Equal(t, true, problem["is_solved"])
		} else {
			assert.Equal(t, false, problem["is_solved"])
		}
	}

	// Difficulty filter narrows the set.
	resp, hardOnly := doJSONList(t, app, "GET", "/api/problems/?difficulty=hard", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, hardOnly)
	for _, problem := range hardOnly {
		assert.Equal(t, "hard", problem["difficulty"])
	}
}

func TestMarkProblemSolvedAndUnsolved(t *testing.T) {
	app, db, cfg := setupApp(t, "")
	require.NoError(t, utils.SeedProblems(db))
	user, token := authedUser(t, db, cfg, "solver", "")

	var problem models.Problem
	require.NoError(t, db.Where("title = ?", "3Sum").First(&problem).Error)

	target := fmt.Sprintf("/api/problems/%d/solve", problem.ID)

	resp, body := doJSON(t, app, "POST", target, token, map[string]string{"action": "solve"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["is_solved"])

	// Solving twice stays a single row.
	resp, _ = doJSON(t, app, "POST", target, token, map[string]string{"action": "solve"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var count int64
	db.Model(&models.SolvedProblem{}).
		Where("user_id = ? AND problem_id = ?", user.ID, problem.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)

	resp, body = doJSON(t, app, "POST", target, token, map[string]string{"action": "unsolve"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["is_solved"])

	resp, _ = doJSON(t, app, "POST", target, token, map[string]string{"action": "sideways"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProblemStatsCountsByTier(t *testing.T) {
	app, db, cfg := setupApp(t, "")
	require.NoError(t, utils.SeedProblems(db))
	user, token := authedUser(t, db, cfg, "grinder", "")

	var easy models.Problem
	require.NoError(t, db.Where("difficulty = ?", "easy").First(&easy).Error)
	var hard models.Problem
	require.NoError(t, db.Where("difficulty = ?", "hard").First(&hard).Error)
	require.NoError(t, db.Create(&models.SolvedProblem{UserID: user.ID, ProblemID: easy.ID}).Error)
	require.NoError(t, db.Create(&models.SolvedProblem{UserID: user.ID, ProblemID: hard.ID}).Error)

	resp, body := doJSON(t, app, "GET", "/api/problems/stats", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	solved := body["solved"].(map[string]interface{})
	assert.EqualValues(t, 1, solved["easy"])
	assert.EqualValues(t, 0, solved["medium"])
	assert.EqualValues(t, 1, solved["hard"])
	assert.EqualValues(t, 2, solved["total"])

	total := body["total"].(map[string]interface{})
	assert.EqualValues(t, 15, total["total"])
}

func TestCreateProblemRequiresAdmin(t *testing.T) {
	app, db, cfg := setupApp(t, "")
	_, token := authedUser(t, db, cfg, "plebeian", "")

	resp, _ := doJSON(t, app, "POST", "/api/admin/problems", token, map[string]string{
		"title":      "New Problem",
		"difficulty": "easy",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	admin, adminToken := authedUser(t, db, cfg, "moderator", "")
	require.NoError(t, db.Model(admin).Update("role", "admin").Error)

	resp, _ = doJSON(t, app, "POST", "/api/admin/problems", adminToken, map[string]string{
		"title":      "New Problem",
		"difficulty": "easy",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

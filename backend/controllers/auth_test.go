package controllers_test

import (
	"net/http"
	"project/backend/models"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAndLogin(t *testing.T) {
	app, db, _ := setupApp(t, "")

	resp, body := doJSON(t, app, "POST", "/api/auth/signup", "", map[string]string{
		"username":   "newuser",
		"email":      "newuser@example.com",
		"password":   "password123",
		"first_name": "New",
		"last_name":  "User",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, body["token"])

	var stored models.User
	require.NoError(t, db.Where("username = ?", "newuser").First(&stored).Error)
	assert.NotEqual(t, "password123", stored.PasswordHash)

	resp, body = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "newuser",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])

	// One login recorded
	var logins int64
	db.Model(&models.LoginHistory{}).Where("user_id = ?", stored.ID).Count(&logins)
	assert.EqualValues(t, 1, logins)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	app, _, _ := setupApp(t, "")

	resp, _ := doJSON(t, app, "POST", "/api/auth/signup", "", map[string]string{
		"username": "incomplete",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, db, _ := setupApp(t, "")

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Username:     "victim",
		Email:        "victim@example.com",
		PasswordHash: string(hash),
	}).Error)

	resp, _ := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "victim",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetProfileRequiresToken(t *testing.T) {
	app, _, _ := setupApp(t, "")

	resp, _ := doJSON(t, app, "GET", "/api/user/profile", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetProfile(t *testing.T) {
	app, db, cfg := setupApp(t, "")
	user, token := authedUser(t, db, cfg, "profiled", "MIT")
	linkLeetcode(t, db, user, "profiled_lc", 26)

	resp, body := doJSON(t, app, "GET", "/api/user/profile", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "profiled", body["username"])
	assert.Equal(t, "MIT", body["college"])
	assert.Equal(t, "profiled_lc", body["leetcode_username"])
	assert.EqualValues(t, 26, body["leetcode_score"])
}

func TestChangeUsernameConflict(t *testing.T) {
	app, db, cfg := setupApp(t, "")
	authedUser(t, db, cfg, "taken", "")
	_, token := authedUser(t, db, cfg, "renamer", "")

	resp, _ := doJSON(t, app, "POST", "/api/user/change-username", token, map[string]string{
		"username": "taken",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Re-submitting your own name is fine.
	resp, body := doJSON(t, app, "POST", "/api/user/change-username", token, map[string]string{
		"username": "renamer",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "renamer", body["new_username"])
}

func TestChangePassword(t *testing.T) {
	app, db, cfg := setupApp(t, "")
	user, token := authedUser(t, db, cfg, "rotating", "")

	resp, _ := doJSON(t, app, "POST", "/api/user/change-password", token, map[string]string{
		"password": "fresh-secret",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("fresh-secret")))
}

func TestGoogleCallbackRequiresCode(t *testing.T) {
	app, _, _ := setupApp(t, "")

	resp, _ := doJSON(t, app, "POST", "/api/auth/google", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

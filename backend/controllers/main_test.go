package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"project/backend/config"
	"project/backend/models"
	"project/backend/routes"
	"project/backend/utils"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp wires the full route table against an in-memory database,
// with the LeetCode endpoint pointed wherever the test needs it.
func setupApp(t *testing.T, leetcodeURL string) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, utils.MigrateModels(db))

	cfg := &config.Config{
		JWTSecret:      "testsecret",
		LeetcodeAPIURL: leetcodeURL,
	}

	app := fiber.New()
	routes.SetupRoutes(app, db, cfg)
	return app, db, cfg
}

// authedUser persists a user and returns it with a valid token.
func authedUser(t *testing.T, db *gorm.DB, cfg *config.Config, username, college string) (*models.User, string) {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		College:  college,
	}
	require.NoError(t, db.Create(user).Error)

	token, err := utils.GenerateJWTToken(user.ID, cfg)
	require.NoError(t, err)
	return user, token
}

func linkLeetcode(t *testing.T, db *gorm.DB, user *models.User, leetcodeUsername string, score int) {
	t.Helper()
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"leetcode_username": leetcodeUsername,
		"leetcode_score":    score,
	}).Error)
}

// doJSON runs one request against the app and decodes the JSON response.
func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

// doJSONList is doJSON for endpoints returning a top-level array.
func doJSONList(t *testing.T, app *fiber.App, method, target, token string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

// fakeLeetcodeServer answers the GraphQL stats query for known usernames.
func fakeLeetcodeServer(t *testing.T, known map[string]map[string]int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Variables map[string]string `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		counts, ok := known[body.Variables["username"]]
		if !ok {
			w.Write([]byte(`{"data": {"matchedUser": null}}`))
			return
		}

		payload := map[string]interface{}{
			"data": map[string]interface{}{
				"matchedUser": map[string]interface{}{
					"username": body.Variables["username"],
					"submitStats": map[string]interface{}{
						"acSubmissionNum": []map[string]interface{}{
							{"difficulty": "All", "count": counts["Easy"] + counts["Medium"] + counts["Hard"]},
							{"difficulty": "Easy", "count": counts["Easy"]},
							{"difficulty": "Medium", "count": counts["Medium"]},
							{"difficulty": "Hard", "count": counts["Hard"]},
						},
					},
				},
			},
		}
		json.NewEncoder(w).Encode(payload)
	}))
}

package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"project/backend/config"
	"project/backend/models"
	"project/backend/utils"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// [+] Register godoc
// @Summary Register a new user
// @Description Creates a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterInput true "User registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/signup [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Username, email and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.BadRequest(c, "Could not create user")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"token":   token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// [+] Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := ac.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	ac.DB.Create(&models.LoginHistory{
		UserID:    user.ID,
		LoginTime: time.Now(),
	})

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// GoogleCallback godoc
// @Summary Google OAuth code exchange
// @Description Exchanges an authorization code for tokens and signs the user in, creating the account on first login
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /auth/google [post]
func (ac *AuthController) GoogleCallback(c *fiber.Ctx) error {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil || input.Code == "" {
		return utils.BadRequest(c, "Missing code")
	}

	tokenResp, err := http.PostForm(ac.Cfg.GoogleTokenEndpoint, url.Values{
		"code":          {input.Code},
		"client_id":     {ac.Cfg.GoogleClientID},
		"client_secret": {ac.Cfg.GoogleClientSecret},
		"redirect_uri":  {ac.Cfg.GoogleRedirectURI},
		"grant_type":    {"authorization_code"},
	})
	if err != nil {
		return utils.BadRequest(c, "Failed to get token")
	}
	defer tokenResp.Body.Close()

	if tokenResp.StatusCode != http.StatusOK {
		return utils.BadRequest(c, "Failed to get token")
	}

	var tokenBody struct {
		IDToken string `json:"id_token"`
	}
	if err := json.NewDecoder(tokenResp.Body).Decode(&tokenBody); err != nil || tokenBody.IDToken == "" {
		return utils.BadRequest(c, "No ID token")
	}

	// The id_token comes straight from Google's token endpoint over TLS,
	// so the claims are read without a local signature check.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenBody.IDToken, claims); err != nil {
		return utils.BadRequest(c, "Invalid ID token")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return utils.BadRequest(c, "No email in token")
	}
	firstName, _ := claims["given_name"].(string)
	lastName, _ := claims["family_name"].(string)

	created := false
	var user models.User
	if err := ac.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.InternalServerError(c, "Could not query database")
		}

		user = models.User{
			Username:  ac.uniqueUsernameFor(email),
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
			// No local password for OAuth accounts; login stays
			// Google-only until the user sets one.
			PasswordHash: "",
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			return utils.InternalServerError(c, "Could not create user")
		}
		created = true
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"created": created,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// uniqueUsernameFor derives a username from the email local part,
// suffixing a counter until it is free.
func (ac *AuthController) uniqueUsernameFor(email string) string {
	base := strings.Split(email, "@")[0]
	username := base
	for counter := 1; ; counter++ {
		var count int64
		ac.DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
		if count == 0 {
			return username
		}
		username = fmt.Sprintf("%s%d", base, counter)
	}
}

// ChangeUsername godoc
// @Summary Change username
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/change-username [post]
func (ac *AuthController) ChangeUsername(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, ac.DB, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&input); err != nil || input.Username == "" {
		return utils.BadRequest(c, "Username is required")
	}

	var count int64
	err = ac.DB.Model(&models.User{}).
		Where("username = ? AND id <> ?", input.Username, user.ID).
		Count(&count).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if count > 0 {
		return utils.BadRequest(c, "Username already exists")
	}

	user.Username = input.Username
	if err := ac.DB.Save(user).Error; err != nil {
		return utils.InternalServerError(c, "An error occurred while changing username")
	}

	return c.JSON(fiber.Map{
		"message":      "Username changed successfully",
		"new_username": input.Username,
	})
}

// ChangePassword godoc
// @Summary Change password
// @Tags auth
// @Security ApiKeyAuth
// @Router /user/change-password [post]
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	user, err := utils.CurrentUser(c, ac.DB, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil || input.Password == "" {
		return utils.BadRequest(c, "Password is required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user.PasswordHash = string(hashedPassword)
	if err := ac.DB.Save(user).Error; err != nil {
		return utils.InternalServerError(c, "An error occurred while changing password")
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

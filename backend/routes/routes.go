package routes

import (
	"project/backend/config"
	"project/backend/controllers"
	"project/backend/leetcode"
	"project/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	fetcher := leetcode.NewHTTPClient(cfg.LeetcodeAPIURL)
	leetcodeService := leetcode.NewService(db, fetcher)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/signup", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/google", authController.GoogleCallback)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg, leetcodeService)
	user := app.Group("/api/user", authMiddleware)
	user.Get("/profile", userController.GetProfile)
	user.Post("/change-username", authController.ChangeUsername)
	user.Post("/change-password", authController.ChangePassword)
	user.Post("/leetcode", userController.UpdateLeetcodeProfile)

	// Problem tracker routes
	problemsController := controllers.NewProblemsController(db, cfg)
	problems := app.Group("/api/problems", authMiddleware)
	problems.Get("/", problemsController.GetProblems)
	problems.Get("/stats", problemsController.GetUserStats)
	problems.Post("/:id/solve", problemsController.MarkProblemSolved)
	app.Post("/api/admin/problems", authMiddleware, adminMiddleware, problemsController.CreateProblem)

	// Interview experience routes
	experiencesController := controllers.NewExperiencesController(db, cfg)
	experiences := app.Group("/api/interviews/experiences", authMiddleware)
	experiences.Get("/", experiencesController.GetExperiences)
	experiences.Post("/", experiencesController.CreateExperience)
	experiences.Get("/my", experiencesController.GetMyExperiences)
	experiences.Get("/stats", experiencesController.GetExperienceStats)
	experiences.Put("/:id", experiencesController.UpdateExperience)
	experiences.Delete("/:id", experiencesController.DeleteExperience)

	// Mock interview routes
	interviewsController := controllers.NewInterviewsController(db, cfg)
	interviews := app.Group("/api/interviews/mock", authMiddleware)
	interviews.Get("/", interviewsController.GetInterviews)
	interviews.Post("/", interviewsController.CreateInterview)
	interviews.Get("/interviewers", interviewsController.GetAvailableInterviewers)
	interviews.Get("/stats", interviewsController.GetInterviewStats)
	interviews.Put("/:id", interviewsController.UpdateInterview)
	interviews.Delete("/:id", interviewsController.CancelInterview)

	// Referral profile routes
	referralsController := controllers.NewReferralsController(db, cfg)
	referrals := app.Group("/api/interviews/referral-profile", authMiddleware)
	referrals.Get("/", referralsController.GetReferralProfile)
	referrals.Post("/", referralsController.UpsertReferralProfile)
	referrals.Delete("/", referralsController.DeleteReferralProfile)
	referrals.Get("/stats", referralsController.GetReferralStats)

	// Leaderboard routes
	leaderboardController := controllers.NewLeaderboardController(db, cfg, leetcodeService)
	app.Get("/api/leaderboard", authMiddleware, leaderboardController.GetLeaderboard)
	app.Post("/api/leaderboard/refresh", authMiddleware, leaderboardController.RefreshScores)
}

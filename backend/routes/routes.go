package routes

import (
	"log"

	"socratia/backend/config"
	"socratia/backend/controllers"
	"socratia/backend/gemini"
	"socratia/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, ai gemini.Client, logger *log.Logger) {
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg, logger)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/auth/signout", authController.SignOut)
	app.Post("/api/auth/signout", authController.SignOut)

	// Curriculum routes
	curriculumController := controllers.NewCurriculumController(db, cfg, ai, logger)
	app.Get("/api/curriculum/active", authMiddleware, curriculumController.GetActive)
	app.Post("/api/curriculum/create", authMiddleware, curriculumController.Create)
	app.Get("/api/curriculum/overview", authMiddleware, curriculumController.Overview)
	app.Get("/api/lessons", authMiddleware, curriculumController.GetLessons)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg, logger)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Post("/api/progress", authMiddleware, progressController.UpsertProgress)

	// Teach routes; evaluate goes first so it is not captured by :id
	teachController := controllers.NewTeachController(db, cfg, ai, logger)
	app.Post("/api/teach/evaluate", authMiddleware, teachController.Evaluate)
	app.Get("/api/teach/:id", authMiddleware, teachController.StartLesson)
	app.Post("/api/teach/:id", authMiddleware, teachController.ContinueLesson)

	// Journal routes; /api/reflection is a legacy alias of the create
	journalController := controllers.NewJournalController(db, cfg, ai, logger)
	app.Get("/api/journal", authMiddleware, journalController.List)
	app.Post("/api/journal", authMiddleware, journalController.Create)
	app.Get("/api/journal/check", authMiddleware, journalController.Check)
	app.Post("/api/reflection", authMiddleware, journalController.Create)

	// User routes
	userController := controllers.NewUserController(db, cfg, logger)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Delete("/api/user/delete", authMiddleware, userController.DeleteAccount)
}

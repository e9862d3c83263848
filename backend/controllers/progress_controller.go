package controllers

import (
	"errors"
	"log"

	"socratia/backend/config"
	"socratia/backend/models"
	"socratia/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log *log.Logger
}

func NewProgressController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg, Log: logger}
}

type UpsertProgressRequest struct {
	LessonID            string                    `json:"lessonId"`
	ConversationHistory []models.ConversationTurn `json:"conversationHistory"`
	IsCompleted         bool                      `json:"isCompleted"`
}

// GetProgress godoc
// @Summary Get progress for one lesson
// @Description Returns the stored record or a zero-value one when none exists
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	lessonID := c.Query("lessonId")
	if lessonID == "" {
		return utils.BadRequest(c, "Lesson ID is required")
	}

	var progress models.Progress
	if err := pc.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{
				"isCompleted":         false,
				"lastQuestionIndex":   0,
				"conversationHistory": []models.ConversationTurn{},
			})
		}
		pc.Log.Printf("progress get: query failed: %v", err)
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"isCompleted":         progress.IsCompleted,
		"lastQuestionIndex":   progress.LastQuestionIndex,
		"conversationHistory": progress.ConversationHistory.Data(),
		"updatedAt":           progress.UpdatedAt,
	})
}

// UpsertProgress godoc
// @Summary Save lesson progress
// @Description Creates or updates the (user, lesson) record
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/progress [post]
func (pc *ProgressController) UpsertProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var req UpsertProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if req.LessonID == "" || req.ConversationHistory == nil {
		return utils.BadRequest(c, "Invalid input data")
	}

	// Progress is only tracked against an active curriculum.
	var curriculum models.Curriculum
	if err := pc.DB.Where("user_id = ? AND status = ?", userID, models.CurriculumActive).
		First(&curriculum).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "No active curriculum found")
		}
		pc.Log.Printf("progress save: curriculum lookup failed: %v", err)
		return utils.InternalServerError(c, "Could not query database")
	}

	var existing models.Progress
	var current *models.Progress
	err = pc.DB.Where("user_id = ? AND lesson_id = ?", userID, req.LessonID).First(&existing).Error
	switch {
	case err == nil:
		current = &existing
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		pc.Log.Printf("progress save: lookup failed: %v", err)
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := models.ValidateTransition(current, req.IsCompleted, req.ConversationHistory); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if current == nil {
		existing = models.Progress{
			UserID:   userID,
			LessonID: req.LessonID,
		}
	}
	existing.IsCompleted = req.IsCompleted
	existing.LastQuestionIndex = len(req.ConversationHistory)
	existing.ConversationHistory = datatypes.NewJSONType(req.ConversationHistory)

	if err := pc.DB.Save(&existing).Error; err != nil {
		pc.Log.Printf("progress save: write failed: %v", err)
		return utils.InternalServerError(c, "Could not save progress")
	}

	return c.JSON(fiber.Map{
		"id":                  existing.ID,
		"lessonId":            existing.LessonID,
		"isCompleted":         existing.IsCompleted,
		"lastQuestionIndex":   existing.LastQuestionIndex,
		"conversationHistory": existing.ConversationHistory.Data(),
		"updatedAt":           existing.UpdatedAt,
	})
}

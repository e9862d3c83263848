package controllers

import (
	"log"
	"strings"

	"socratia/backend/config"
	"socratia/backend/gemini"
	"socratia/backend/models"
	"socratia/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type JournalController struct {
	DB  *gorm.DB
	Cfg *config.Config
	AI  gemini.Client
	Log *log.Logger
}

func NewJournalController(db *gorm.DB, cfg *config.Config, ai gemini.Client, logger *log.Logger) *JournalController {
	return &JournalController{DB: db, Cfg: cfg, AI: ai, Log: logger}
}

type CreateJournalRequest struct {
	Reflection string `json:"reflection"`
	Day        int    `json:"day"`
}

// List godoc
// @Summary List journal entries
// @Description Returns the user's reflections, newest first
// @Tags journal
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/journal [get]
func (jc *JournalController) List(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, jc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var entries []models.JournalEntry
	if err := jc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&entries).Error; err != nil {
		jc.Log.Printf("journal list: query failed: %v", err)
		return utils.InternalServerError(c, "Could not query database")
	}

	result := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		result = append(result, fiber.Map{
			"id":         entry.ID,
			"reflection": entry.Reflection,
			"summary":    entry.Summary,
			"createdAt":  entry.CreatedAt,
		})
	}

	return c.JSON(result)
}

// Create godoc
// @Summary Save a reflection
// @Description Summarizes the reflection and stores both as a journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/journal [post]
func (jc *JournalController) Create(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, jc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var req CreateJournalRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if strings.TrimSpace(req.Reflection) == "" || req.Day < 1 {
		return utils.BadRequest(c, "Reflection and day are required")
	}

	// The summary is plain prose, used as returned.
	summary, err := jc.AI.GenerateContent(c.Context(), gemini.ReflectionSummaryPrompt(req.Reflection))
	if err != nil {
		jc.Log.Printf("journal create: summary failed: %v", err)
		return utils.InternalServerError(c, "Failed to process reflection")
	}

	entry := models.JournalEntry{
		UserID:     userID,
		Day:        req.Day,
		Reflection: req.Reflection,
		Summary:    summary,
	}
	if err := jc.DB.Create(&entry).Error; err != nil {
		jc.Log.Printf("journal create: insert failed: %v", err)
		return utils.InternalServerError(c, "Failed to process reflection")
	}

	return c.JSON(fiber.Map{
		"id":         entry.ID,
		"day":        entry.Day,
		"reflection": entry.Reflection,
		"summary":    entry.Summary,
		"createdAt":  entry.CreatedAt,
	})
}

// Check godoc
// @Summary Check for a day's entry
// @Description Reports whether a journal entry exists for the given day
// @Tags journal
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/journal/check [get]
func (jc *JournalController) Check(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, jc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	day := c.QueryInt("day")
	if day < 1 {
		return utils.BadRequest(c, "Day parameter is required")
	}

	var count int64
	if err := jc.DB.Model(&models.JournalEntry{}).
		Where("user_id = ? AND day = ?", userID, day).
		Count(&count).Error; err != nil {
		jc.Log.Printf("journal check: query failed: %v", err)
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{"exists": count > 0})
}

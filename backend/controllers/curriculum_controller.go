package controllers

import (
	"errors"
	"log"
	"time"

	"socratia/backend/config"
	"socratia/backend/gemini"
	"socratia/backend/models"
	"socratia/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CurriculumController struct {
	DB  *gorm.DB
	Cfg *config.Config
	AI  gemini.Client
	Log *log.Logger
}

func NewCurriculumController(db *gorm.DB, cfg *config.Config, ai gemini.Client, logger *log.Logger) *CurriculumController {
	return &CurriculumController{DB: db, Cfg: cfg, AI: ai, Log: logger}
}

type CreateCurriculumRequest struct {
	Topic string `json:"topic"`
	Days  int    `json:"days"`
}

// GetActive godoc
// @Summary Get the active curriculum
// @Description Returns the active curriculum with a per-lesson progress map, or null
// @Tags curriculum
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/curriculum/active [get]
func (cc *CurriculumController) GetActive(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var curriculum models.Curriculum
	if err := cc.DB.Where("user_id = ? AND status = ?", userID, models.CurriculumActive).
		Order("created_at DESC").First(&curriculum).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		cc.Log.Printf("curriculum active: query failed: %v", err)
		return utils.InternalServerError(c, "Could not query database")
	}

	var rows []models.Progress
	if err := cc.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		cc.Log.Printf("curriculum active: progress query failed: %v", err)
		return utils.InternalServerError(c, "Could not query database")
	}

	progress := make(fiber.Map, len(rows))
	for _, row := range rows {
		progress[row.LessonID] = fiber.Map{
			"isCompleted":         row.IsCompleted,
			"lastQuestionIndex":   row.LastQuestionIndex,
			"conversationHistory": row.ConversationHistory.Data(),
			"updatedAt":           row.UpdatedAt,
		}
	}

	return c.JSON(fiber.Map{
		"id":        curriculum.ID,
		"topic":     curriculum.Topic,
		"days":      curriculum.Days,
		"startDate": curriculum.StartDate,
		"status":    curriculum.Status,
		"lessons":   curriculum.Lessons.Data(),
		"createdAt": curriculum.CreatedAt,
		"progress":  progress,
	})
}

// Create godoc
// @Summary Create a curriculum
// @Description Generates a day-by-day plan for a topic and activates it
// @Tags curriculum
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/curriculum/create [post]
func (cc *CurriculumController) Create(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var req CreateCurriculumRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if req.Topic == "" || req.Days < 1 || req.Days > 90 {
		return utils.BadRequest(c, "Invalid topic or days (must be 1-90)")
	}

	// A prior plan is retired before the new one is generated. This is
	// deliberately not transactional: a failed generation leaves the
	// user with no active curriculum.
	var existing models.Curriculum
	if err := cc.DB.Where("user_id = ? AND status = ?", userID, models.CurriculumActive).
		First(&existing).Error; err == nil {
		existing.Status = models.CurriculumInactive
		if err := cc.DB.Save(&existing).Error; err != nil {
			cc.Log.Printf("curriculum create: deactivate failed: %v", err)
			return utils.InternalServerError(c, "Failed to create curriculum")
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		cc.Log.Printf("curriculum create: lookup failed: %v", err)
		return utils.InternalServerError(c, "Failed to create curriculum")
	}

	reply, err := cc.AI.GenerateContent(c.Context(), gemini.CurriculumPrompt(req.Topic, req.Days))
	if err != nil {
		cc.Log.Printf("curriculum create: generation failed: %v", err)
		return utils.InternalServerError(c, "Failed to generate curriculum")
	}

	plan, err := gemini.ParseLessonPlan(reply)
	if err != nil {
		cc.Log.Printf("curriculum create: bad plan: %v", err)
		return utils.InternalServerError(c, "Failed to generate curriculum")
	}

	curriculum := models.Curriculum{
		UserID:    userID,
		Topic:     req.Topic,
		Days:      req.Days,
		StartDate: time.Now(),
		Status:    models.CurriculumActive,
		Lessons:   datatypes.NewJSONType(plan),
	}
	if err := cc.DB.Create(&curriculum).Error; err != nil {
		cc.Log.Printf("curriculum create: insert failed: %v", err)
		return utils.InternalServerError(c, "Failed to create curriculum")
	}

	return c.JSON(fiber.Map{
		"id":        curriculum.ID,
		"topic":     curriculum.Topic,
		"days":      curriculum.Days,
		"startDate": curriculum.StartDate,
		"status":    curriculum.Status,
		"lessons":   curriculum.Lessons.Data(),
		"createdAt": curriculum.CreatedAt,
	})
}

// Overview godoc
// @Summary Get derived curriculum state
// @Description Returns current day, unlock states, day completion and overall percentage
// @Tags curriculum
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/curriculum/overview [get]
func (cc *CurriculumController) Overview(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var curriculum models.Curriculum
	if err := cc.DB.Where("user_id = ? AND status = ?", userID, models.CurriculumActive).
		Order("created_at DESC").First(&curriculum).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "No active curriculum found")
		}
		cc.Log.Printf("curriculum overview: query failed: %v", err)
		return utils.InternalServerError(c, "Could not query database")
	}

	var rows []models.Progress
	if err := cc.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		cc.Log.Printf("curriculum overview: progress query failed: %v", err)
		return utils.InternalServerError(c, "Could not query database")
	}

	progress := models.BuildProgressMap(rows)
	lessons := curriculum.Lessons.Data()
	currentDay := curriculum.CurrentDay(time.Now())

	days := make([]fiber.Map, 0, len(lessons))
	for _, dayPlan := range lessons {
		concepts := make([]fiber.Map, 0, len(dayPlan.Concepts))
		for i, concept := range dayPlan.Concepts {
			concepts = append(concepts, fiber.Map{
				"concept":   concept,
				"unlocked":  models.IsLessonUnlocked(dayPlan.Day, i, currentDay, progress, lessons),
				"completed": progress[concept].IsCompleted,
			})
		}
		days = append(days, fiber.Map{
			"day":      dayPlan.Day,
			"complete": models.IsDayComplete(dayPlan.Day, lessons, progress),
			"lessons":  concepts,
		})
	}

	return c.JSON(fiber.Map{
		"currentDay":           currentDay,
		"completionPercentage": models.CompletionPercentage(lessons, currentDay, progress),
		"days":                 days,
	})
}

// GetLessons godoc
// @Summary Get the active curriculum's lesson list
// @Tags curriculum
// @Produce json
// @Success 200 {array} models.DayLessons
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/lessons [get]
func (cc *CurriculumController) GetLessons(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var curriculum models.Curriculum
	if err := cc.DB.Where("user_id = ? AND status = ?", userID, models.CurriculumActive).
		Order("created_at DESC").First(&curriculum).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "No active curriculum found")
		}
		cc.Log.Printf("lessons: query failed: %v", err)
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(curriculum.Lessons.Data())
}

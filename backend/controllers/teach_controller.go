package controllers

import (
	"errors"
	"log"
	"net/url"

	"socratia/backend/config"
	"socratia/backend/gemini"
	"socratia/backend/models"
	"socratia/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TeachController struct {
	DB  *gorm.DB
	Cfg *config.Config
	AI  gemini.Client
	Log *log.Logger
}

func NewTeachController(db *gorm.DB, cfg *config.Config, ai gemini.Client, logger *log.Logger) *TeachController {
	return &TeachController{DB: db, Cfg: cfg, AI: ai, Log: logger}
}

type ContinueLessonRequest struct {
	ConversationHistory []models.ConversationTurn `json:"conversationHistory"`
}

type EvaluateRequest struct {
	QuestionID          int                       `json:"questionId"`
	UserAnswer          string                    `json:"userAnswer"`
	LessonID            string                    `json:"lessonId"`
	ConversationHistory []models.ConversationTurn `json:"conversationHistory"`
	CurrentQuestion     gemini.Message            `json:"currentQuestion"`
}

// StartLesson godoc
// @Summary Open a lesson
// @Description Returns the opening question, or replays a completed lesson's transcript
// @Tags teach
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/teach/{id} [get]
func (tc *TeachController) StartLesson(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	lessonID := lessonParam(c)

	// Completed lessons replay from the store and never reach the model.
	var progress models.Progress
	err = tc.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err == nil && progress.State() == models.LessonCompleted {
		if saveErr := tc.DB.Save(&progress).Error; saveErr != nil {
			tc.Log.Printf("teach start: replay save failed: %v", saveErr)
		}
		return c.JSON(fiber.Map{
			"title":               lessonID,
			"completed":           true,
			"conversationHistory": progress.ConversationHistory.Data(),
		})
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		tc.Log.Printf("teach start: progress lookup failed: %v", err)
		return utils.InternalServerError(c, "Could not query database")
	}

	reply, err := tc.AI.GenerateContent(c.Context(), gemini.OpeningQuestionPrompt(lessonID))
	if err != nil {
		tc.Log.Printf("teach start: generation failed: %v", err)
		return utils.InternalServerError(c, "Unable to continue the lesson")
	}

	question, err := gemini.ParseQuestion(reply)
	if err != nil {
		tc.Log.Printf("teach start: bad reply: %v", err)
		return utils.InternalServerError(c, "Unable to continue the lesson")
	}

	return c.JSON(fiber.Map{
		"title":    lessonID,
		"question": question,
	})
}

// ContinueLesson godoc
// @Summary Continue a lesson
// @Description Returns the next question, or a closing summary when the student is done
// @Tags teach
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/teach/{id} [post]
func (tc *TeachController) ContinueLesson(c *fiber.Ctx) error {
	_, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	lessonID := lessonParam(c)

	var req ContinueLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if req.ConversationHistory == nil {
		return utils.BadRequest(c, "Invalid input data")
	}

	reply, err := tc.AI.GenerateContent(c.Context(), gemini.ContinuePrompt(lessonID, req.ConversationHistory))
	if err != nil {
		tc.Log.Printf("teach continue: generation failed: %v", err)
		return utils.InternalServerError(c, "Unable to continue the lesson")
	}

	turn, err := gemini.ParseTurn(reply)
	if err != nil {
		tc.Log.Printf("teach continue: bad reply: %v", err)
		return utils.InternalServerError(c, "Unable to continue the lesson")
	}

	if turn.Summary != nil {
		return c.JSON(fiber.Map{"summary": turn.Summary})
	}
	return c.JSON(fiber.Map{"question": turn.Question})
}

// Evaluate godoc
// @Summary Evaluate an answer
// @Description Returns feedback on a single free-text answer
// @Tags teach
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/teach/evaluate [post]
func (tc *TeachController) Evaluate(c *fiber.Ctx) error {
	_, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var req EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if req.UserAnswer == "" || req.CurrentQuestion.Text == "" {
		return utils.BadRequest(c, "Invalid input data")
	}

	reply, err := tc.AI.GenerateContent(c.Context(), gemini.FeedbackPrompt(req.LessonID, req.CurrentQuestion.Text, req.UserAnswer))
	if err != nil {
		tc.Log.Printf("teach evaluate: generation failed: %v", err)
		return utils.InternalServerError(c, "Unable to continue the lesson")
	}

	feedback, err := gemini.ParseFeedback(reply)
	if err != nil {
		tc.Log.Printf("teach evaluate: bad reply: %v", err)
		return utils.InternalServerError(c, "Unable to continue the lesson")
	}

	return c.JSON(fiber.Map{"feedback": feedback})
}

// lessonParam decodes the concept text from the path. The browser
// client URL-encodes concepts when navigating to a lesson.
func lessonParam(c *fiber.Ctx) string {
	raw := c.Params("id")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

package controller

import (
	"net/http"

	"github.com/SDhinakar/Interview-Prep-Backend/internal/apperr"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/dto"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/middleware"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// AddQuestions godoc
// @Summary Append questions to a session
// @Description Only questions whose normalized text is new to the session are inserted. If every entry is a duplicate the call succeeds with success=false.
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batch body dto.AddQuestionsDTO true "Session id and question batch"
// @Success 201 {object} dto.AddQuestionsResponseDTO
// @Success 200 {object} dto.AddQuestionsResponseDTO "All entries were duplicates"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/add [post]
func (c *QuestionController) AddQuestions(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized"})
		return
	}

	var req dto.AddQuestionsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Please provide sessionId and questions array", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.AddQuestionsToSession(userID, req)
	if err != nil {
		log.Error().Err(err).Uint("sessionID", req.SessionID).Msg("AddQuestions failed")
		ctx.JSON(apperr.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}

	if !resp.Success {
		ctx.JSON(http.StatusOK, resp)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// TogglePin godoc
// @Summary Toggle the pinned flag on a question
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id}/pin [post]
func (c *QuestionController) TogglePin(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized"})
		return
	}

	questionID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	resp, err := c.questionService.TogglePin(userID, questionID)
	if err != nil {
		ctx.JSON(apperr.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Question pin status updated", "question": resp})
}

// UpdateNote godoc
// @Summary Overwrite the note on a question
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param note body dto.UpdateNoteDTO true "Note text"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id}/note [post]
func (c *QuestionController) UpdateNote(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized"})
		return
	}

	questionID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	var req dto.UpdateNoteDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.UpdateNote(userID, questionID, req.Note)
	if err != nil {
		ctx.JSON(apperr.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Question note updated", "question": resp})
}

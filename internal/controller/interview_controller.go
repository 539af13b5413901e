package controller

import (
	"net/http"

	"github.com/SDhinakar/Interview-Prep-Backend/internal/dto"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService service.InterviewService
}

func NewInterviewController(interviewService service.InterviewService) *InterviewController {
	return &InterviewController{interviewService: interviewService}
}

// GenerateMockQuestions godoc
// @Summary Generate a mock-interview question set
// @Description Always replies 200 with questions and idealAnswers of equal length; malformed or missing model output degrades through the fallback ladder.
// @Tags Interview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param params body dto.MockQuestionsDTO true "Role, topics, experience"
// @Success 200 {object} dto.MockQuestionsResponse
// @Router /interview/questions [post]
func (c *InterviewController) GenerateMockQuestions(ctx *gin.Context) {
	var req dto.MockQuestionsDTO
	// A bad body degrades to empty parameters rather than erroring; this
	// endpoint never fails the request.
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateMockQuestions: unreadable body, proceeding with empty fields")
	}

	resp := c.interviewService.GenerateMockQuestions(ctx.Request.Context(), req)
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit a mock-interview answer for AI review
// @Description Persists the answer with whatever feedback and rating could be extracted from the reviewer model.
// @Tags Interview
// @Accept json
// @Produce json
// @Param answer body dto.SubmitAnswerDTO true "Answer submission"
// @Success 200 {object} dto.UserAnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "mockIdRef, question and user_ans are required"
// @Failure 500 {object} dto.ErrorResponse
// @Router /interview/answers [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	var req dto.SubmitAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.interviewService.SubmitAnswer(ctx.Request.Context(), req)
	if err != nil {
		if service.IsMissingAnswerFields(err) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing fields"})
			return
		}
		log.Error().Err(err).Msg("SubmitAnswer failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to process answer"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAnswers godoc
// @Summary List stored answers for a mock-interview session
// @Tags Interview
// @Produce json
// @Param sessionId path string true "Mock session reference"
// @Param userId query string false "User identifier"
// @Success 200 {array} dto.UserAnswerResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /interview/answers/{sessionId} [get]
func (c *InterviewController) GetAnswers(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")
	userID := ctx.Query("userId")

	answers, err := c.interviewService.GetAnswers(sessionID, userID)
	if err != nil {
		log.Error().Err(err).Str("sessionId", sessionID).Msg("GetAnswers failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Could not fetch answers"})
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

package controller

import (
	"errors"
	"net/http"

	"github.com/SDhinakar/Interview-Prep-Backend/config"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/dto"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AIController struct {
	generationService service.GenerationService
	cfg               *config.Config
}

func NewAIController(generationService service.GenerationService, cfg *config.Config) *AIController {
	return &AIController{generationService: generationService, cfg: cfg}
}

// GenerateQuestions godoc
// @Summary Generate interview questions with model answers
// @Description Builds a prompt from role, experience, topic and count, and parses the model's JSON reply. Malformed model output is surfaced as 500.
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param params body dto.GenerateQuestionsDTO true "Generation parameters"
// @Success 200 {object} dto.GeneratedDataResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields, names them in details"
// @Failure 500 {object} dto.ErrorResponse
// @Router /ai/generate-questions [post]
func (c *AIController) GenerateQuestions(ctx *gin.Context) {
	var req dto.GenerateQuestionsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Request body is required", Details: []string{err.Error()}})
		return
	}

	pairs, err := c.generationService.GenerateQuestions(ctx.Request.Context(), req)
	if err != nil {
		var missing *service.MissingFieldsError
		if errors.As(err, &missing) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing required fields", Details: missing.Fields})
			return
		}
		log.Error().Err(err).Msg("GenerateQuestions failed")
		ctx.JSON(http.StatusInternalServerError, c.upstreamError("Failed to generate questions", err))
		return
	}
	ctx.JSON(http.StatusOK, dto.GeneratedDataResponse{Success: true, Data: pairs})
}

// GenerateExplanation godoc
// @Summary Generate a concept explanation for an interview question
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param params body dto.GenerateExplanationDTO true "Question to explain"
// @Success 200 {object} dto.GeneratedDataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ai/generate-explanation [post]
func (c *AIController) GenerateExplanation(ctx *gin.Context) {
	var req dto.GenerateExplanationDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Question field is required", Details: []string{err.Error()}})
		return
	}

	explanation, err := c.generationService.GenerateExplanation(ctx.Request.Context(), req.Question)
	if err != nil {
		log.Error().Err(err).Msg("GenerateExplanation failed")
		ctx.JSON(http.StatusInternalServerError, c.upstreamError("Failed to generate explanation", err))
		return
	}
	ctx.JSON(http.StatusOK, dto.GeneratedDataResponse{Success: true, Data: explanation})
}

// upstreamError attaches the raw error message only outside production.
func (c *AIController) upstreamError(message string, err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{Message: message}
	if c.cfg.IsDevelopment() {
		resp.Details = []string{err.Error()}
	}
	return resp
}

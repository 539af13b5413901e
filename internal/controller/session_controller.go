package controller

import (
	"net/http"
	"strconv"

	"github.com/SDhinakar/Interview-Prep-Backend/internal/apperr"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/dto"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/middleware"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// CreateSession godoc
// @Summary Create a new interview-prep session
// @Description Create a session, optionally seeding it with question/answer pairs. Pairs missing text or answer are skipped.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body dto.SessionCreateDTO true "Session data"
// @Success 201 {object} dto.SessionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions/create [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized"})
		return
	}

	var req dto.SessionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Please provide all required fields", Details: []string{err.Error()}})
		return
	}

	resp, err := c.sessionService.CreateSession(userID, req)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("CreateSession failed")
		ctx.JSON(apperr.StatusFor(err), dto.ErrorResponse{Message: "Error creating session", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "session": resp})
}

// GetMySessions godoc
// @Summary List the authenticated user's sessions
// @Description Sessions come back newest first with their questions populated.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SessionResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions/my-sessions [get]
func (c *SessionController) GetMySessions(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized"})
		return
	}

	sessions, err := c.sessionService.GetMySessions(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetMySessions failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error fetching sessions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, sessions)
}

// GetSessionByID godoc
// @Summary Get one session with its questions
// @Description Questions are ordered pinned-first, then by creation time ascending.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /sessions/{id} [get]
func (c *SessionController) GetSessionByID(ctx *gin.Context) {
	sessionID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid session ID format"})
		return
	}

	resp, err := c.sessionService.GetSessionByID(sessionID)
	if err != nil {
		ctx.JSON(apperr.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "session": resp})
}

// DeleteSession godoc
// @Summary Delete a session and all of its questions
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Not the session owner"
// @Failure 404 {object} dto.ErrorResponse
// @Router /sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized"})
		return
	}

	sessionID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid session ID format"})
		return
	}

	if err := c.sessionService.DeleteSession(userID, sessionID); err != nil {
		ctx.JSON(apperr.StatusFor(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Session deleted successfully"})
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

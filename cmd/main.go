package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/SDhinakar/Interview-Prep-Backend/config"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/auth"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/controller"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/database"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/logger"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/middleware"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/model"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/repository"
	"github.com/SDhinakar/Interview-Prep-Backend/internal/service"
)

// @title Interview Prep API
// @version 1.0
// @description Backend for interview preparation: sessions, AI-generated questions and AI-reviewed answers.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			func(cfg *config.Config) *auth.JWTService {
				return auth.NewJWTService(cfg.Auth.JWTSecret)
			},
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewSessionRepository,
			repository.NewQuestionRepository,
			repository.NewUserAnswerRepository,
		),

		fx.Provide(
			service.NewGeminiClient,
			service.NewAuthService,
			service.NewSessionService,
			service.NewQuestionService,
			service.NewGenerationService,
			service.NewInterviewService,
		),

		fx.Provide(
			controller.NewAuthController,
			controller.NewSessionController,
			controller.NewQuestionController,
			controller.NewAIController,
			controller.NewInterviewController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authCtrl *controller.AuthController,
	sessionCtrl *controller.SessionController,
	questionCtrl *controller.QuestionController,
	aiCtrl *controller.AIController,
	interviewCtrl *controller.InterviewController,
) {
	api := router.Group("/api")
	protected := middleware.RequireAuth(jwtService)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.GET("/profile", protected, authCtrl.GetProfile)
	}

	sessionGroup := api.Group("/sessions", protected)
	{
		sessionGroup.POST("/create", sessionCtrl.CreateSession)
		sessionGroup.GET("/my-sessions", sessionCtrl.GetMySessions)
		sessionGroup.GET("/:id", sessionCtrl.GetSessionByID)
		sessionGroup.DELETE("/:id", sessionCtrl.DeleteSession)
	}

	questionGroup := api.Group("/questions", protected)
	{
		questionGroup.POST("/add", questionCtrl.AddQuestions)
		questionGroup.POST("/:id/pin", questionCtrl.TogglePin)
		questionGroup.POST("/:id/note", questionCtrl.UpdateNote)
	}

	aiGroup := api.Group("/ai", protected)
	{
		aiGroup.POST("/generate-questions", aiCtrl.GenerateQuestions)
		aiGroup.POST("/generate-explanation", aiCtrl.GenerateExplanation)
	}

	interviewGroup := api.Group("/interview")
	{
		interviewGroup.POST("/questions", protected, interviewCtrl.GenerateMockQuestions)
		interviewGroup.POST("/answers", interviewCtrl.SubmitAnswer)
		interviewGroup.GET("/answers/:sessionId", interviewCtrl.GetAnswers)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview Prep API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Question{},
		&model.UserAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	// GORM tags cannot express an expression index, so the per-session
	// question dedup rule is created here. ON CONFLICT DO NOTHING inserts
	// rely on it for atomic add-if-absent semantics.
	err = db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_questions_session_normalized_text
		 ON questions (session_id, lower(trim(question)))
		 WHERE deleted_at IS NULL`,
	).Error
	if err != nil {
		log.Error().Err(err).Msg("Failed to create question dedup index")
		return err
	}

	log.Info().Msg("Database migration completed successfully.")
	return nil
}

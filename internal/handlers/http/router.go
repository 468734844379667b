package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
	"github.com/rafabene/padelmatch-backend/internal/handlers/dto"
	"github.com/rafabene/padelmatch-backend/internal/handlers/middleware"
	"github.com/rafabene/padelmatch-backend/internal/infrastructure/i18n"
)

// RouterConfig reúne tudo o que o router precisa
type RouterConfig struct {
	Env            string
	BaseURL        string
	AllowedOrigins string
	// UploadsRoot serve /uploads quando os arquivos ficam no disco local
	UploadsRoot string
	// ProfileRoot serve as fotos de perfil em /Profile
	ProfileRoot string

	Logger ports.Logger
	I18n   *i18n.Service
	Auth   *middleware.AuthMiddleware

	Members       *MemberHandler
	PadelMatches  *PadelMatchHandler
	Groups        *GroupHandler
	Profiles      *ProfileHandler
	TrailMatches  *TrailMatchHandler
	Questions     *QuestionHandler
	Volunteers    *VolunteerHandler
	Notifications *NotificationHandler
}

// NewRouter monta o engine do Gin com middlewares e rotas
func NewRouter(cfg RouterConfig) *gin.Engine {
	dto.RegisterValidatorNames()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(dto.ErrorHandler())

	router.NoRoute(dto.NotFoundProblem)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.UploadsRoot != "" {
		router.Static("/uploads", cfg.UploadsRoot+"/uploads")
	}
	if cfg.ProfileRoot != "" {
		router.Static("/Profile", cfg.ProfileRoot)
	}

	v1 := router.Group("/api/v1")
	v1.Use(cfg.Auth.Authenticate())
	{
		v1.GET("/level", cfg.Members.Level)

		members := v1.Group("/members")
		{
			members.GET("/nearby", cfg.Members.Nearby)
			members.GET("/search", cfg.Members.Search)
		}

		matches := v1.Group("/padel-matches")
		{
			matches.POST("", cfg.PadelMatches.Create)
			matches.DELETE("/:id", cfg.PadelMatches.Delete)
			matches.POST("/:id/join", cfg.PadelMatches.Join)
			matches.POST("/:id/members/:userId/approve", cfg.PadelMatches.Approve)
		}

		groups := v1.Group("/groups")
		{
			groups.GET("/:id/messages", cfg.Groups.ListMessages)
			groups.POST("/:id/messages", cfg.Groups.SendMessage)
			groups.POST("/:id/read", cfg.Groups.MarkRead)
			groups.GET("/:id/ws", cfg.Groups.Stream)
		}

		profile := v1.Group("/profile")
		{
			profile.GET("", cfg.Profiles.MyProfile)
			profile.GET("/level-progress", cfg.Profiles.LevelProgress)
			profile.GET("/:id", cfg.Profiles.OtherProfile)
		}

		trails := v1.Group("/trail-matches")
		{
			trails.GET("", cfg.TrailMatches.Details)
			trails.POST("/status", cfg.TrailMatches.Status)
			trails.POST("/accept", cfg.TrailMatches.Accept)
			trails.POST("/deny", cfg.TrailMatches.Deny)
			trails.POST("/requests", cfg.TrailMatches.SubmitRequest)
			trails.GET("/requests/latest", cfg.TrailMatches.LatestRequest)
		}

		questions := v1.Group("/trail-match-questions")
		{
			questions.GET("", middleware.RequirePermission(entities.PermissionQuestionRead), cfg.Questions.List)
			questions.POST("/answers", middleware.RequirePermission(entities.PermissionAnswerSubmit), cfg.Questions.SubmitAnswers)

			write := questions.Group("", middleware.RequirePermission(entities.PermissionQuestionWrite))
			write.POST("", cfg.Questions.Create)
			write.PUT("/:id", cfg.Questions.Update)
			write.DELETE("/:id", cfg.Questions.Delete)
		}

		volunteers := v1.Group("/volunteers")
		{
			volunteers.GET("", middleware.RequirePermission(entities.PermissionVolunteerRead), cfg.Volunteers.List)

			write := volunteers.Group("", middleware.RequirePermission(entities.PermissionVolunteerWrite))
			write.POST("", cfg.Volunteers.Create)
			write.PUT("/:id", cfg.Volunteers.Update)
			write.PATCH("/:id/role", cfg.Volunteers.UpdateRole)
			write.DELETE("/:id", cfg.Volunteers.Delete)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", cfg.Notifications.List)
			notifications.PATCH("/:id/read", cfg.Notifications.MarkRead)
			notifications.GET("/ws", cfg.Notifications.Stream)
		}
	}

	return router
}

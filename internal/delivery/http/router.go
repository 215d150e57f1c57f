package http

import (
	"github.com/amora-app/amora-backend/internal/delivery/http/handler"
	"github.com/amora-app/amora-backend/internal/delivery/http/middleware"
	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	feedHandler       *handler.FeedHandler
	matchHandler      *handler.MatchHandler
	moderationHandler *handler.ModerationHandler
	authMiddleware    *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	feedHandler *handler.FeedHandler,
	matchHandler *handler.MatchHandler,
	moderationHandler *handler.ModerationHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:       authHandler,
		profileHandler:    profileHandler,
		feedHandler:       feedHandler,
		matchHandler:      matchHandler,
		moderationHandler: moderationHandler,
		authMiddleware:    authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidations()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
			auth.DELETE("/me", r.authMiddleware.RequireAuth(), r.authHandler.DeleteAccount)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.POST("/complete-onboarding", r.profileHandler.CompleteOnboarding)
				profile.GET("/:user_id", r.profileHandler.GetProfileByUserID)
			}

			// Visible profiles feed
			protected.GET("/profiles", r.feedHandler.VisibleProfiles)

			// Like / match routes
			protected.POST("/like/:user_id", r.matchHandler.Like)
			protected.GET("/matches", r.matchHandler.ListMatches)
			protected.GET("/likes/received", r.matchHandler.LikesReceived)

			// Moderation routes
			protected.POST("/block/:user_id", r.moderationHandler.Block)
			protected.POST("/report/:user_id", r.moderationHandler.Report)
		}
	}

	return router
}

// registerValidations adds custom binding validations to gin's validator
// engine.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("reportreason", func(fl validator.FieldLevel) bool {
			return domain.ReportReason(fl.Field().String()).Valid()
		})
	}
}

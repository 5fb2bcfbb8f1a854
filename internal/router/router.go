package router

import (
	"github.com/cardfolio/internal/config"
	"github.com/cardfolio/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup configures the gin engine and routes.
func Setup(db *gorm.DB, cfg config.AppConfig) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("cardfolio_session", store))

	api := handler.NewAPI(db, cfg.UploadDir, cfg.UploadURLPath, cfg.SiteBaseURL)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Uploaded avatars are served straight from disk.
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	auth := r.Group("/auth")
	{
		auth.POST("/register", api.Register)
		auth.POST("/login", api.Login)
		auth.POST("/logout", api.Logout)
	}

	// Public read surface, gated on the published flag.
	r.GET("/c/:cardId", api.PublicCard)

	// Card editor API, session required.
	editor := r.Group("/api")
	editor.Use(handler.AuthRequired())
	{
		editor.GET("/dashboard", api.Dashboard)

		editor.GET("/card", api.GetCard)
		editor.PATCH("/card", api.UpdateCard)
		editor.POST("/card/publish", api.SetPublished)
		editor.POST("/card/save", api.SaveCard)
		editor.POST("/card/avatar", api.UploadAvatar)

		editor.GET("/card/link-preview", api.PreviewLink)
		editor.POST("/card/links", api.AddLink)
		editor.DELETE("/card/links/:id", api.RemoveLink)
	}

	return r
}

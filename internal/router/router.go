package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/aimeevoice/aimee-web-app/internal/auth"
	"github.com/aimeevoice/aimee-web-app/internal/handlers"
	"github.com/aimeevoice/aimee-web-app/internal/middleware"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Voice   *handlers.VoiceHandler
	Catalog *handlers.CatalogHandler
	Email   *handlers.EmailHandler
}

func Router(h Handlers, authSvc *auth.Service, corsOrigins []string, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "healthy",
		})
	})

	v1 := r.Group("/api/v1")
	v1.POST("/auth/login", h.Auth.Login)

	authed := v1.Group("")
	authed.Use(middleware.AuthRequired(authSvc, log))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.POST("/voice/query", h.Voice.Query)
		authed.GET("/wines", h.Catalog.Wines)
		authed.GET("/customers", h.Catalog.Customers)
		authed.GET("/orders/summary", h.Catalog.OrdersSummary)
		authed.POST("/email/send", h.Email.Send)
		authed.POST("/email/confirm", h.Email.Confirm)
	}

	return r
}

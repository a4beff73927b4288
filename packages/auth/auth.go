package auth

import (
	"auth/handlers"
	"auth/middleware"
	"auth/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	Handler *handlers.AuthHandler
	Email   services.EmailService
}

func NewModule(db *gorm.DB) *Module {
	emailService := services.NewEmailService()
	return &Module{
		Handler: handlers.NewAuthHandler(db, emailService),
		Email:   emailService,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", m.Handler.Login)
		auth.GET("/me", middleware.JWTMiddleware(), m.Handler.Profile)
		auth.POST("/refresh", m.Handler.RefreshToken)
		auth.POST("/logout", m.Handler.Logout)
		auth.POST("/logout-all", middleware.JWTMiddleware(), m.Handler.LogoutAll)
		auth.POST("/change-password", middleware.JWTMiddleware(), m.Handler.ChangePassword)
		auth.POST("/reset-password/send-link", m.Handler.SendPasswordResetLink)
		auth.POST("/reset-password/confirm", m.Handler.ConfirmPasswordReset)

		// One-time bootstrap; self-disables once an admin account exists
		auth.GET("/setup/status", m.Handler.SetupStatus)
		auth.POST("/setup", m.Handler.Setup)
	}
}

func JWTMiddleware() gin.HandlerFunc {
	return middleware.JWTMiddleware()
}

func GetUserID(c *gin.Context) (uint, bool) {
	return middleware.GetUserID(c)
}

func GetUserEmail(c *gin.Context) (string, bool) {
	return middleware.GetUserEmail(c)
}

func RequireRole(db *gorm.DB, role string) gin.HandlerFunc {
	return middleware.RequireRole(db, role)
}

func RequireAnyRole(db *gorm.DB, roles ...string) gin.HandlerFunc {
	return middleware.RequireAnyRole(db, roles...)
}

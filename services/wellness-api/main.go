package main

import (
	"log/slog"
	"time"

	"github.com/Lokeshwar-goud/Psyvana/services/wellness-api/apihandlers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var conf WellnessApiConfig

func main() {
	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	v1Root := router.Group("/v1")

	v1APIHandlers := apihandlers.NewHTTPHandler(
		conf.UserManagementConfig.AppUserJWTConfig.SignKey,
		conf.UserManagementConfig.AppUserJWTConfig.ExpiresIn,
		wellnessDBService,
		userDBService,
		conf.UserManagementConfig.MaxNewUsersPer5Minutes,
	)
	v1APIHandlers.AddAppAuthAPI(v1Root)
	v1APIHandlers.AddQuestionnaireAPI(v1Root)
	v1APIHandlers.AddAssessmentAPI(v1Root)
	v1APIHandlers.AddJournalAPI(v1Root)
	v1APIHandlers.AddAdminAPI(v1Root)

	// Start the server
	slog.Info("Starting Wellness API on port " + conf.GinConfig.Port)
	err := router.Run(":" + conf.GinConfig.Port)
	if err != nil {
		slog.Error("Exited Wellness API", slog.String("error", err.Error()))
		return
	}
}

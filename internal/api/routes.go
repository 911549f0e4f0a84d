package api

import (
	"net/http"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/service"
	"fitsync/fitness-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers onto the router.
func SetupRoutes(
	router *gin.Engine,
	st *store.Store,
	authService service.AuthService,
	trainerService service.TrainerService,
	workoutService service.WorkoutService,
	nutritionService service.NutritionService,
	progressService service.ProgressService,
	messageService service.MessageService,
	statsService service.StatsService,
) {
	authHandler := NewAuthHandler(authService)
	trainerHandler := NewTrainerHandler(trainerService)
	workoutHandler := NewWorkoutHandler(workoutService)
	trackerHandler := NewTrackerHandler(nutritionService, progressService, messageService)
	statsHandler := NewStatsHandler(statsService, st)
	settingsHandler := NewSettingsHandler(st)

	authMiddleware := AuthMiddleware(authService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/password-strength", authHandler.PasswordStrength)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)

		clientGroup := protected.Group("/clients", RoleMiddleware(domain.RoleTrainer))
		{
			clientGroup.POST("", trainerHandler.CreateClient)
			clientGroup.GET("", trainerHandler.ListClients)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.PATCH("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.POST("/:id/complete", workoutHandler.CompleteWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		mealGroup := protected.Group("/meals")
		{
			mealGroup.POST("", trackerHandler.CreateMeal)
			mealGroup.GET("", trackerHandler.ListMeals)
			mealGroup.PATCH("/:id", trackerHandler.UpdateMeal)
			mealGroup.DELETE("/:id", trackerHandler.DeleteMeal)
		}

		progressGroup := protected.Group("/progress")
		{
			progressGroup.POST("", trackerHandler.CreateProgress)
			progressGroup.GET("", trackerHandler.ListProgress)
			progressGroup.PATCH("/:id", trackerHandler.UpdateProgress)
			progressGroup.DELETE("/:id", trackerHandler.DeleteProgress)
		}

		messageGroup := protected.Group("/messages")
		{
			messageGroup.POST("", trackerHandler.SendMessage)
			messageGroup.GET("", trackerHandler.ListMessages)
			messageGroup.POST("/:id/read", trackerHandler.MarkMessageRead)
			messageGroup.DELETE("/:id", trackerHandler.DeleteMessage)
		}

		statsGroup := protected.Group("/stats")
		{
			statsGroup.GET("/dashboard", statsHandler.Dashboard)
			statsGroup.GET("/nutrition", statsHandler.Nutrition)
		}

		settingsGroup := protected.Group("/settings")
		{
			settingsGroup.GET("", settingsHandler.GetSettings)
			settingsGroup.PUT("", settingsHandler.PutSettings)
		}
	}
}

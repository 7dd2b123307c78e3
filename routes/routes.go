package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PATCH("/profile", controllers.UpdateProfile)
		user.POST("/onboarding", controllers.CompleteOnboarding)
		user.DELETE("/account", controllers.DeleteAccount)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		food := api.Group("/food")
		{
			food.GET("/search", controllers.SearchFoods)
			food.POST("/recognize", controllers.RecognizeFood)
			food.POST("/analyze", controllers.AnalyzeFood)
		}

		personal := api.Group("/personal-foods")
		{
			personal.GET("", controllers.ListPersonalFoods)
			personal.POST("", controllers.CreatePersonalFood)
			personal.GET("/:id", controllers.GetPersonalFood)
			personal.PUT("/:id", controllers.UpdatePersonalFood)
			personal.DELETE("/:id", controllers.DeletePersonalFood)
		}

		logs := api.Group("/logs")
		{
			logs.GET("", controllers.ListLogEntries)
			logs.POST("", controllers.AddLogEntry)
			logs.PUT("/:id", controllers.UpdateLogEntry)
			logs.DELETE("/:id", controllers.DeleteLogEntry)
		}

		api.GET("/summary", controllers.GetDaySummary)
		api.GET("/summary/targets", controllers.GetTargets)

		activity := api.Group("/activity")
		{
			activity.POST("", controllers.UpsertDailyActivity)
			activity.GET("", controllers.GetDailyActivity)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/summary", controllers.AnalyticsSummary)
			analytics.GET("/weekly", controllers.WeeklyOverview)
		}

		api.GET("/alerts", controllers.ListAlerts)
		api.POST("/devices", controllers.RegisterDevice(push))
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/updates", controllers.UpdatesWS(hub))
	}

	return r
}

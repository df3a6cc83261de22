package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rogue-drones/workflow/internal/handlers"
	"github.com/rogue-drones/workflow/internal/middleware"
	"github.com/rogue-drones/workflow/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group(types.APIBasePath)
	{
		health := api.Group("/health")
		{
			health.GET("", handlers.HealthCheck)
			health.GET("/db", handlers.HealthCheckDB)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterUser)
			auth.POST("/login", handlers.LoginUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		clients := api.Group("/clients", middleware.AuthMiddleware())
		{
			clients.POST("", handlers.CreateClient)
			clients.GET("", handlers.ListClients)
			clients.GET("/:id", handlers.GetClient)
			clients.PUT("/:id", handlers.UpdateClient)
			clients.DELETE("/:id", handlers.DeleteClient)
		}

		organisations := api.Group("/organisations", middleware.AuthMiddleware())
		{
			organisations.POST("", handlers.CreateOrganisation)
			organisations.GET("", handlers.ListOrganisations)
			organisations.GET("/:id", handlers.GetOrganisation)
			organisations.PUT("/:id", handlers.UpdateOrganisation)
			organisations.DELETE("/:id", handlers.DeleteOrganisation)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware())
		{
			projects.POST("", handlers.CreateProject)
			projects.GET("", handlers.ListProjects)
			projects.GET("/:id", handlers.GetProject)
			projects.PUT("/:id", handlers.UpdateProject)
			projects.DELETE("/:id", handlers.DeleteProject)
		}

		documents := api.Group("/documents", middleware.AuthMiddleware())
		{
			documents.POST("", handlers.CreateDocument)
			documents.GET("", handlers.ListDocuments)
			documents.GET("/:id", handlers.GetDocument)
			documents.PUT("/:id", handlers.UpdateDocument)
			documents.DELETE("/:id", handlers.DeleteDocument)
			documents.POST("/:id/sign", handlers.SignDocument)
		}

		meetings := api.Group("/meetings", middleware.AuthMiddleware())
		{
			meetings.POST("", handlers.CreateMeeting)
			meetings.GET("", handlers.ListMeetings)
			meetings.GET("/:id", handlers.GetMeeting)
			meetings.PUT("/:id", handlers.UpdateMeeting)
			meetings.DELETE("/:id", handlers.DeleteMeeting)
			meetings.POST("/:id/transcript", handlers.AddTranscript)
			meetings.POST("/:id/key_points", handlers.AddKeyPoints)
			meetings.POST("/:id/recording", handlers.AddRecording)
		}
	}

	return r
}

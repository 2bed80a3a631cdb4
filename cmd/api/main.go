package main

import (
	"log"
	"os"

	"github.com/careerpilot/careerpilot/internal/database"
	"github.com/careerpilot/careerpilot/internal/handlers"
	"github.com/careerpilot/careerpilot/internal/middleware"
	"github.com/careerpilot/careerpilot/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// 2. Database Connection
	db := database.Connect()

	// 3. Initialize Core Services (Dependencies)
	activityService := services.NewActivityService(db)
	userService := services.NewUserService(db)
	applicationService := services.NewApplicationService(db, activityService)
	companyService := services.NewCompanyService(db, activityService)
	contactService := services.NewContactService(db, activityService)
	interviewService := services.NewInterviewService(db, activityService)
	offerService := services.NewOfferService(db, activityService)
	taskService := services.NewTaskService(db, activityService)
	attachmentService := services.NewAttachmentService(db, activityService)
	emailService := services.NewEmailService(db, activityService)

	// 4. Initialize Handlers
	authHandler := handlers.NewAuthHandler(userService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, activityService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	contactHandler := handlers.NewContactHandler(contactService)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	offerHandler := handlers.NewOfferHandler(offerService)
	taskHandler := handlers.NewTaskHandler(taskService)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService)
	activityHandler := handlers.NewActivityHandler(activityService)
	emailHandler := handlers.NewEmailHandler(emailService)

	// 5. Setup Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// 6. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoute := api.Group("/auth")
		{
			authRoute.POST("/register", authHandler.Register)
			authRoute.POST("/login", authHandler.Login)
			authRoute.GET("/me", middleware.Auth(), authHandler.Me)
		}

		protected := api.Group("", middleware.Auth())
		{
			// Pipeline board (kanban view)
			protected.GET("/board", applicationHandler.Board)

			protected.POST("/applications", applicationHandler.Create)
			protected.GET("/applications", applicationHandler.List)
			protected.GET("/applications/:id", applicationHandler.Get)
			protected.PATCH("/applications/:id", applicationHandler.Update)
			protected.DELETE("/applications/:id", applicationHandler.Delete)
			protected.GET("/applications/:id/activities", applicationHandler.ListActivities)
			protected.POST("/applications/:id/interviews", interviewHandler.Create)
			protected.POST("/applications/:id/offer", offerHandler.Create)
			protected.GET("/applications/:id/offer", offerHandler.Get)
			protected.POST("/applications/:id/attachments", attachmentHandler.Create)
			protected.GET("/applications/:id/attachments", attachmentHandler.List)

			protected.POST("/companies", companyHandler.Create)
			protected.GET("/companies", companyHandler.List)
			protected.GET("/companies/:id", companyHandler.Get)
			protected.PATCH("/companies/:id", companyHandler.Update)
			protected.DELETE("/companies/:id", companyHandler.Delete)

			protected.POST("/contacts", contactHandler.Create)
			protected.GET("/contacts", contactHandler.List)
			protected.GET("/contacts/:id", contactHandler.Get)
			protected.PATCH("/contacts/:id", contactHandler.Update)
			protected.DELETE("/contacts/:id", contactHandler.Delete)

			// Calendar view reads from here
			protected.GET("/interviews", interviewHandler.List)
			protected.GET("/interviews/:id", interviewHandler.Get)
			protected.PATCH("/interviews/:id", interviewHandler.Update)
			protected.DELETE("/interviews/:id", interviewHandler.Delete)

			protected.PATCH("/offers/:id", offerHandler.Update)
			protected.DELETE("/offers/:id", offerHandler.Delete)

			protected.POST("/tasks", taskHandler.Create)
			protected.GET("/tasks", taskHandler.List)
			protected.GET("/tasks/:id", taskHandler.Get)
			protected.PATCH("/tasks/:id", taskHandler.Update)
			protected.POST("/tasks/:id/complete", taskHandler.Complete)
			protected.DELETE("/tasks/:id", taskHandler.Delete)

			protected.DELETE("/attachments/:id", attachmentHandler.Delete)

			protected.GET("/activities", activityHandler.List)

			protected.POST("/email/connect", emailHandler.Connect)
			protected.GET("/email/connections", emailHandler.List)
			protected.DELETE("/email/connections/:id", emailHandler.Disconnect)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server starting on port " + port + "...")
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ijaz003/Employment-Exchange/internal/auth"
	"github.com/ijaz003/Employment-Exchange/internal/config"
	"github.com/ijaz003/Employment-Exchange/internal/database"
	"github.com/ijaz003/Employment-Exchange/internal/handlers"
	"github.com/ijaz003/Employment-Exchange/internal/middlewares"
	"github.com/ijaz003/Employment-Exchange/internal/services"
	"github.com/ijaz003/Employment-Exchange/internal/storage"
)

func main() {
	// .env is for local dev; deployed environments set real variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	resumeStorage, err := storage.NewCloudinaryStorage(cfg.CloudinaryURL)
	if err != nil {
		log.Fatal("Failed to initialize Cloudinary:", err)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.CookieExpireDays)

	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db, resumeStorage)
	llmService := services.NewLLMService(cfg.GeminiAPIKey)

	authn := middlewares.NewAuth(tokens, userService)

	userHandler := handlers.NewUserHandler(userService, tokens)
	jobHandler := handlers.NewJobHandler(jobService, llmService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	r := gin.Default()
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.FrontendOrigin}
	corsCfg.AllowCredentials = true // the token travels as a cookie
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		user := api.Group("/user")
		{
			user.POST("/register", userHandler.Register)
			user.POST("/login", userHandler.Login)
			user.GET("/logout", authn.Authenticate(), userHandler.Logout)
			user.GET("/getuser", authn.Authenticate(), userHandler.GetUser)
		}

		job := api.Group("/job")
		{
			job.GET("/getall", jobHandler.GetAllJobs)
			job.POST("/post", authn.Authenticate(), jobHandler.PostJob)
			job.GET("/getmyjobs", authn.Authenticate(), jobHandler.GetMyJobs)
			job.PUT("/update/:id", authn.Authenticate(), jobHandler.UpdateJob)
			job.DELETE("/delete/:id", authn.Authenticate(), jobHandler.DeleteJob)
			job.POST("/extract", authn.Authenticate(), jobHandler.ExtractPosting)
			job.GET("/:id", jobHandler.GetSingleJob)
		}

		application := api.Group("/application")
		{
			application.POST("/post", authn.Authenticate(), applicationHandler.Post)
			application.GET("/employer/getall", authn.Authenticate(), applicationHandler.EmployerGetAll)
			application.GET("/jobseeker/getall", authn.Authenticate(), applicationHandler.JobseekerGetAll)
			application.DELETE("/delete/:id", authn.Authenticate(), applicationHandler.Delete)
		}
	}

	log.Println("Server starting on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

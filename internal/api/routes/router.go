package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jobtrackhq/jobtrack-go/docs"
	"github.com/jobtrackhq/jobtrack-go/internal/api/handlers"
	"github.com/jobtrackhq/jobtrack-go/internal/api/middleware"
	"github.com/jobtrackhq/jobtrack-go/internal/application"
	"github.com/jobtrackhq/jobtrack-go/internal/domain/user"
	"github.com/jobtrackhq/jobtrack-go/internal/repository"
)

func RegisterRoutes(r *gin.Engine) {
	// init
	repos_instance := repository.New()
	services_instance := application.New(repos_instance)
	handlers_instance := handlers.New(services_instance)

	// setup
	r.POST("/register", handlers_instance.User.Register)
	r.POST("/login", handlers_instance.User.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.Authenticate(repos_instance.User))
	{
		auth.GET("/auth/status", handlers.AuthStatusHandler)
		auth.GET("/ws/jobs", handlers_instance.Job.StreamJobs)

		JobRoutes(auth, handlers_instance.Job)

		admin := auth.Group("/admin")
		admin.Use(middleware.RequireRole(user.RoleAdmin))
		{
			admin.GET("/users", handlers_instance.User.GetUsers)
		}
	}
}

package main

import (
	"os"

	"voloconnect/cmd/internal/domain/sqlite"
	"voloconnect/cmd/internal/domain/sqlite/repository"
	"voloconnect/cmd/internal/routes"
	"voloconnect/cmd/internal/service"
	"voloconnect/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()

	err := godotenv.Load()
	if err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	if err := utils.InitTokenSecret(); err != nil {
		log.Fatal("failed to initialize token secret: ", err)
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./database.db"
	}

	// Init SQLite
	db, err := sqlite.Init(dbPath)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	// Getting repositories
	userRepo := repository.NewUserRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	eventRepo := repository.NewEventRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	queryRepo := repository.NewQueryRepository(db)

	// Getting services
	authService := service.NewAuthService(userRepo, validate)
	volunteerService := service.NewVolunteerService(db, volunteerRepo, validate)
	eventService := service.NewEventService(db, eventRepo, validate)
	assignmentService := service.NewAssignmentService(db, assignmentRepo, eventRepo, volunteerRepo)
	profileService := service.NewProfileService(db, volunteerRepo, assignmentRepo, validate)
	queryService := service.NewQueryService(db, queryRepo, validate)

	// Getting routes
	authRoutes := routes.NewAuthDefault(authService)
	eventRoutes := routes.NewEventDefault(eventService, assignmentService)
	volunteerRoutes := routes.NewVolunteerDefault(volunteerService, profileService, assignmentService)
	queryRoutes := routes.NewQueryDefault(queryService)

	e := echo.New()
	e.Use(middleware.CORS())

	// Auth
	e.POST("/api/auth/register", authRoutes.Register)
	e.POST("/api/auth/login", authRoutes.Login)

	// Events
	e.GET("/api/events", eventRoutes.GetEvents)
	e.GET("/api/events/:id", eventRoutes.GetEvent)
	e.POST("/api/events", eventRoutes.CreateEvent)
	e.PUT("/api/events/:id", eventRoutes.UpdateEvent)
	e.PUT("/api/events/:id/status", eventRoutes.UpdateEventStatus)
	e.DELETE("/api/events/:id", eventRoutes.DeleteEvent)

	// Event assignments
	e.GET("/api/events/:id/volunteers", eventRoutes.GetEventVolunteers)
	e.POST("/api/events/:id/volunteers", eventRoutes.AssignVolunteer)
	e.DELETE("/api/events/:id/volunteers/:volunteerId", eventRoutes.RemoveVolunteer)
	e.PUT("/api/events/:id/volunteers/:volunteerId/role", eventRoutes.UpdateVolunteerRole)

	// Volunteers
	e.POST("/api/volunteers", volunteerRoutes.RegisterVolunteer)
	e.GET("/api/volunteers", volunteerRoutes.GetVolunteers)
	e.GET("/api/volunteers/search", volunteerRoutes.SearchVolunteers)
	e.GET("/api/volunteers/counts", volunteerRoutes.GetVolunteerCounts)
	e.GET("/api/volunteers/:id", volunteerRoutes.GetVolunteer)
	e.PUT("/api/volunteers/:id", volunteerRoutes.UpdateVolunteer)
	e.PUT("/api/volunteers/:id/status", volunteerRoutes.UpdateVolunteerStatus)
	e.DELETE("/api/volunteers/:id", volunteerRoutes.DeleteVolunteer)
	e.PUT("/api/volunteers/:id/profile", volunteerRoutes.UpdateProfile)
	e.PUT("/api/volunteers/:id/skills", volunteerRoutes.UpdateSkills)
	e.PUT("/api/volunteers/:id/availability", volunteerRoutes.UpdateAvailability)
	e.GET("/api/volunteers/:id/stats", volunteerRoutes.GetVolunteerStats)
	e.GET("/api/volunteers/:id/events", volunteerRoutes.GetVolunteerEvents)

	// Contact queries
	e.POST("/api/queries", queryRoutes.SubmitQuery)
	e.GET("/api/queries", queryRoutes.GetQueries)
	e.GET("/api/queries/counts", queryRoutes.GetQueryCounts)
	e.GET("/api/queries/:id", queryRoutes.GetQuery)
	e.PUT("/api/queries/:id/respond", queryRoutes.RespondQuery)
	e.PUT("/api/queries/:id/close", queryRoutes.CloseQuery)
	e.DELETE("/api/queries/:id", queryRoutes.DeleteQuery)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	err = e.Start(":" + port)
	if err != nil {
		e.Logger.Fatal(err)
	}
}

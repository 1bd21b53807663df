package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sgu-project/sgu-backend/internal/config"
	"github.com/sgu-project/sgu-backend/internal/handler"
	"github.com/sgu-project/sgu-backend/internal/middleware"
	"github.com/sgu-project/sgu-backend/internal/response"
	"github.com/sgu-project/sgu-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Faculty    *handler.FacultyHandler
	Department *handler.DepartmentHandler
	Major      *handler.MajorHandler
	Student    *handler.StudentHandler
	Professor  *handler.ProfessorHandler
	Course     *handler.CourseHandler
	Classroom  *handler.ClassroomHandler
	Schedule   *handler.ScheduleHandler
	Enrollment *handler.EnrollmentHandler
	Report     *handler.ReportHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// XLSX downloads are already compressed containers, skip brotli there.
	router.Use(middleware.BrotliWithConfig(middleware.BrotliConfig{
		Skipper: func(c *gin.Context) bool {
			return strings.HasSuffix(c.Request.URL.Path, "/xlsx")
		},
	}))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/admin/login", handlers.Auth.Login)
		auth.GET("/admin/me", middleware.RequireAdminJWT(authService), handlers.Auth.Me)
	}

	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.RequireAdminJWT(authService))
	{
		faculties := admin.Group("/faculties")
		{
			faculties.GET("", handlers.Faculty.GetAll)
			faculties.GET("/:id", handlers.Faculty.GetByID)
			faculties.POST("", handlers.Faculty.Create)
			faculties.PUT("/:id", handlers.Faculty.Update)
			faculties.DELETE("/:id", handlers.Faculty.Delete)
		}

		departments := admin.Group("/departments")
		{
			departments.GET("", handlers.Department.GetAll)
			departments.GET("/:id", handlers.Department.GetByID)
			departments.POST("", handlers.Department.Create)
			departments.PUT("/:id", handlers.Department.Update)
			departments.DELETE("/:id", handlers.Department.Delete)
		}

		majors := admin.Group("/majors")
		{
			majors.GET("", handlers.Major.GetAll)
			majors.GET("/:id", handlers.Major.GetByID)
			majors.POST("", handlers.Major.Create)
			majors.PUT("/:id", handlers.Major.Update)
			majors.DELETE("/:id", handlers.Major.Delete)
		}

		students := admin.Group("/students")
		{
			students.GET("", handlers.Student.GetAll)
			students.GET("/:id", handlers.Student.GetByID)
			students.POST("", handlers.Student.Create)
			students.PUT("/:id", handlers.Student.Update)
			students.DELETE("/:id", handlers.Student.Delete)
		}

		professors := admin.Group("/professors")
		{
			professors.GET("", handlers.Professor.GetAll)
			professors.GET("/:id", handlers.Professor.GetByID)
			professors.POST("", handlers.Professor.Create)
			professors.PUT("/:id", handlers.Professor.Update)
			professors.DELETE("/:id", handlers.Professor.Delete)
		}

		courses := admin.Group("/courses")
		{
			courses.GET("", handlers.Course.GetAll)
			courses.GET("/:id", handlers.Course.GetByID)
			courses.POST("", handlers.Course.Create)
			courses.PUT("/:id", handlers.Course.Update)
			courses.DELETE("/:id", handlers.Course.Delete)
		}

		classrooms := admin.Group("/classrooms")
		{
			classrooms.GET("", handlers.Classroom.GetAll)
			classrooms.GET("/:id", handlers.Classroom.GetByID)
			classrooms.POST("", handlers.Classroom.Create)
			classrooms.PUT("/:id", handlers.Classroom.Update)
			classrooms.DELETE("/:id", handlers.Classroom.Delete)
		}

		schedules := admin.Group("/schedules")
		{
			schedules.GET("", handlers.Schedule.GetAll)
			schedules.GET("/:id", handlers.Schedule.GetByID)
			schedules.POST("", handlers.Schedule.Create)
			schedules.PUT("/:id", handlers.Schedule.Update)
			schedules.DELETE("/:id", handlers.Schedule.Delete)
		}

		enrollments := admin.Group("/enrollments")
		{
			enrollments.GET("", handlers.Enrollment.GetAll)
			enrollments.POST("", handlers.Enrollment.Enroll)
			enrollments.POST("/withdraw", handlers.Enrollment.Withdraw)
			enrollments.POST("/grade", handlers.Enrollment.AssignGrade)
		}

		reports := admin.Group("/reports")
		reports.Use(middleware.CacheControl(60))
		{
			reports.GET("/enrollments", handlers.Report.Enrollments)
			reports.GET("/enrollments/xlsx", handlers.Report.EnrollmentsXLSX)
			reports.GET("/departments", handlers.Report.DepartmentStats)
			reports.GET("/departments/xlsx", handlers.Report.DepartmentStatsXLSX)
		}
	}

	return router
}

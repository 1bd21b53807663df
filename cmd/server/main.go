package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/sgu-project/sgu-backend/internal/config"
	"github.com/sgu-project/sgu-backend/internal/database"
	"github.com/sgu-project/sgu-backend/internal/handler"
	"github.com/sgu-project/sgu-backend/internal/logger"
	"github.com/sgu-project/sgu-backend/internal/repository"
	"github.com/sgu-project/sgu-backend/internal/router"
	"github.com/sgu-project/sgu-backend/internal/service"
	"github.com/sgu-project/sgu-backend/internal/validator"
	"github.com/sgu-project/sgu-backend/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting SGU Backend")

	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Repositories. The guarded write paths (enrollments, schedules)
	// build transaction-scoped repositories internally, so only the
	// read/CRUD surface is wired here.
	facultyRepo := repository.NewFacultyRepository(pool)
	departmentRepo := repository.NewDepartmentRepository(pool)
	majorRepo := repository.NewMajorRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	professorRepo := repository.NewProfessorRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	classroomRepo := repository.NewClassroomRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	authService := service.NewAuthService(cfg, adminRepo)
	facultyService := service.NewFacultyService(facultyRepo)
	departmentService := service.NewDepartmentService(departmentRepo)
	majorService := service.NewMajorService(majorRepo)
	studentService := service.NewStudentService(studentRepo)
	professorService := service.NewProfessorService(professorRepo)
	courseService := service.NewCourseService(courseRepo)
	classroomService := service.NewClassroomService(classroomRepo)
	scheduleService := service.NewScheduleService(pool, cfg.MaxCoursesPerSemester, log)
	enrollmentService := service.NewEnrollmentService(pool, cfg.MaxCoursesPerSemester, log)
	reportService := service.NewReportService(reportRepo, rdb, cfg.ReportCacheTTL, log)

	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Faculty:    handler.NewFacultyHandler(facultyService),
		Department: handler.NewDepartmentHandler(departmentService),
		Major:      handler.NewMajorHandler(majorService),
		Student:    handler.NewStudentHandler(studentService),
		Professor:  handler.NewProfessorHandler(professorService),
		Course:     handler.NewCourseHandler(courseService),
		Classroom:  handler.NewClassroomHandler(classroomService),
		Schedule:   handler.NewScheduleHandler(scheduleService),
		Enrollment: handler.NewEnrollmentHandler(enrollmentService),
		Report:     handler.NewReportHandler(reportService),
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())

	reportWorker := worker.NewReportWorker(reportService, cfg.ReportDir, cfg.ReportInterval, log)
	go reportWorker.Start(workerCtx)

	r := router.SetupRouter(authService, handlers, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

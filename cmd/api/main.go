package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/attendance-tracker/internal/config"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/reason"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
	"github.com/cmlabs-hris/attendance-tracker/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/attendance-tracker/internal/handler/http"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-tracker/internal/repository/memory"
	"github.com/cmlabs-hris/attendance-tracker/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-tracker/internal/service/attendance"
	holidayService "github.com/cmlabs-hris/attendance-tracker/internal/service/holiday"
	reportService "github.com/cmlabs-hris/attendance-tracker/internal/service/report"
	scheduleService "github.com/cmlabs-hris/attendance-tracker/internal/service/schedule"
	studentService "github.com/cmlabs-hris/attendance-tracker/internal/service/student"
	"github.com/go-chi/httplog/v3"
)

type repositories struct {
	students   student.StudentRepository
	holidays   holiday.HolidayRepository
	schedules  schedule.ScheduleRepository
	attendance attendance.AttendanceRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-tracker"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx := context.Background()

	catalog := reason.Default()
	if cfg.Catalog.ReasonsFile != "" {
		catalog, err = reason.Load(cfg.Catalog.ReasonsFile)
		if err != nil {
			log.Fatal("Failed to load reason catalog: ", err)
		}
	}

	var repos repositories
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			log.Fatal("Failed to apply schema: ", err)
		}
		repos = repositories{
			students:   postgresql.NewStudentRepository(db),
			holidays:   postgresql.NewHolidayRepository(db),
			schedules:  postgresql.NewScheduleRepository(db),
			attendance: postgresql.NewAttendanceRepository(db),
		}
	case config.StorageDriverMemory:
		store := memory.NewStore()
		repos = repositories{
			students:   store.Students(),
			holidays:   store.Holidays(),
			schedules:  store.Schedules(),
			attendance: store.Attendance(),
		}
	default:
		log.Fatal("Unsupported storage driver: ", cfg.Storage.Driver)
	}

	studentSvc := studentService.NewStudentService(repos.students)
	roster, err := fixtures.Roster()
	if err != nil {
		log.Fatal("Failed to read roster: ", err)
	}
	seeded, err := studentSvc.Seed(ctx, roster)
	if err != nil {
		log.Fatal("Failed to seed roster: ", err)
	}
	if seeded > 0 {
		logger.Info("roster seeded", slog.Int("students", seeded))
	}

	holidaySvc := holidayService.NewHolidayService(repos.holidays)
	scheduleSvc := scheduleService.NewScheduleService(repos.schedules, repos.holidays)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.schedules, repos.holidays, repos.students, catalog)
	reportSvc := reportService.NewReportService(repos.students, repos.attendance)

	var jwtService jwt.Service
	if cfg.Auth.Secret != "" {
		jwtService = jwt.NewJWTService(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	} else {
		logger.Warn("AUTH_SECRET is empty, write routes are open")
	}

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		StaticDir:      cfg.App.StaticDir,
		JWTService:     jwtService,
	}, appHTTP.Handlers{
		Student:    appHTTP.NewStudentHandler(studentSvc),
		Reason:     appHTTP.NewReasonHandler(catalog),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server running", slog.String("addr", "http://localhost"+port), slog.String("storage", cfg.Storage.Driver))
	if err := http.ListenAndServe(port, router); err != nil {
		logger.Error("server error", slog.Any("error", err))
	}
}

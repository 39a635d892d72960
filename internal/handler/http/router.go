package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	// StaticDir serves the browser UI when set.
	StaticDir string
	// JWTService protects the write routes with editor tokens when set.
	JWTService jwt.Service
}

type Handlers struct {
	Student    StudentHandler
	Reason     ReasonHandler
	Holiday    HolidayHandler
	Schedule   ScheduleHandler
	Attendance AttendanceHandler
	Report     ReportHandler
}

func NewRouter(opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Handle("/metrics", metrics.Handler())

	r.Get("/students", h.Student.List)
	r.Get("/reasons", h.Reason.List)
	r.Get("/days/{date}", h.Holiday.DayStatus)
	r.Get("/holidays", h.Holiday.List)
	r.Get("/holidays/{date}", h.Holiday.Get)
	r.Get("/schedule/{date}", h.Schedule.Get)
	r.Get("/attendance/{date}", h.Attendance.List)
	r.Route("/report/{month}", func(r chi.Router) {
		r.Get("/", h.Report.Monthly)
		r.Get("/export", h.Report.Export)
	})

	// Writes
	r.Group(func(r chi.Router) {
		if opts.JWTService != nil {
			r.Use(jwtauth.Verifier(opts.JWTService.JWTAuth()))
			r.Use(middleware.EditorRequired)
		}
		r.Post("/holidays", h.Holiday.Set)
		r.Post("/schedule", h.Schedule.Save)
		r.Post("/attendance", h.Attendance.Write)
	})

	if opts.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
	}

	return r
}

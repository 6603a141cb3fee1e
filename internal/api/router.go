package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/classflow/gateway/internal/api/handler"
	"github.com/classflow/gateway/internal/api/middleware"
	"github.com/classflow/gateway/internal/core/ports"
	"github.com/classflow/gateway/internal/core/service"
	"github.com/classflow/gateway/internal/infrastructure/backend"
	"github.com/classflow/gateway/internal/pkg/config"
)

const (
	signInPath = "/auth"
	homePath   = "/"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil (readiness then skips the store check); store and bc carry
// the session store and backend client so tests can substitute their own.
func NewRouter(cfg *config.Config, rdb *redis.Client, store ports.SessionStore, bc *backend.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	// Request metrics live on a per-router registry; the handler gathers the
	// default registry too so the domain counters show up alongside them.
	promRegistry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "classflow",
		Registerer: promRegistry,
	}))

	// --- Dependencies ---
	authAPI := backend.NewAuthClient(bc)
	sessionManager := service.NewSessionService(authAPI, store, cfg.Session.TTL, log)
	eventService := service.NewEventService(backend.NewEventClient(bc), log)
	timetableService := service.NewTimetableService(backend.NewTimetableClient(bc), log)
	attendanceService := service.NewAttendanceService(backend.NewAttendanceClient(bc), log)
	plannerService := service.NewPlannerService(backend.NewPlannerClient(bc), log)

	authHandler := handler.NewAuthHandler(sessionManager)
	profileHandler := handler.NewProfileHandler(authAPI, sessionManager)
	eventHandler := handler.NewEventHandler(eventService)
	timetableHandler := handler.NewTimetableHandler(timetableService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	plannerHandler := handler.NewPlannerHandler(plannerService)
	pageHandler := handler.NewPageHandler(eventService, timetableService, attendanceService, plannerService)

	loadSession := middleware.LoadSession(store, sessionManager, cfg.Session.CookieName, cfg.Session.Secure)
	e.Use(loadSession)

	// --- Health probes and metrics (no session semantics) ---
	healthHandler := handler.NewHealthHandler(rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{promRegistry, prometheus.DefaultGatherer},
	}))

	// --- Auth endpoints (reachable regardless of session state) ---
	e.POST("/api/v1/auth/login", authHandler.Login)
	e.POST("/api/v1/auth/google", authHandler.GoogleLogin)
	e.POST("/api/v1/auth/register", authHandler.Register)
	e.POST("/api/v1/auth/logout", authHandler.Logout)
	e.POST("/api/v1/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/api/v1/auth/reset-password", authHandler.ResetPassword)
	e.GET("/api/v1/session", authHandler.Session)

	// --- Public pages: authenticated sessions are sent home ---
	public := e.Group("", middleware.Public(homePath))
	public.GET(signInPath, pageHandler.SignIn)
	public.GET("/forgot-password", pageHandler.ForgotPassword)

	// --- Protected pages: everyone else is sent to sign-in ---
	pages := e.Group("", middleware.Protected(signInPath))
	pages.GET(homePath, pageHandler.Home)
	pages.GET("/calendar", pageHandler.Calendar)
	pages.GET("/events", pageHandler.Events)
	pages.GET("/timetable", pageHandler.Timetable)
	pages.GET("/attendance", pageHandler.Attendance)
	pages.GET("/profile", pageHandler.Profile)
	pages.GET("/study-plan", pageHandler.StudyPlan)

	// --- Protected API resources: JSON clients get 401 instead of redirects ---
	v1 := e.Group("/api/v1", middleware.RequireAuth())

	v1.GET("/events", eventHandler.List)
	v1.POST("/events", eventHandler.Create)
	v1.GET("/events/day", eventHandler.ByDay)
	v1.GET("/events/deadlines", eventHandler.Deadlines)
	v1.GET("/events/count", eventHandler.CountForDay)
	v1.GET("/events/stats/today", eventHandler.TodayStats)
	v1.GET("/events/:id", eventHandler.Get)
	v1.PUT("/events/:id", eventHandler.Update)
	v1.DELETE("/events/:id", eventHandler.Delete)
	v1.PATCH("/events/:id/toggle", eventHandler.ToggleComplete)

	v1.GET("/timetable", timetableHandler.List)
	v1.POST("/timetable", timetableHandler.Create)
	v1.GET("/timetable/day", timetableHandler.ByDay)
	v1.PUT("/timetable/:id", timetableHandler.Update)
	v1.DELETE("/timetable/:id", timetableHandler.Delete)

	v1.GET("/attendance", attendanceHandler.List)
	v1.POST("/attendance", attendanceHandler.Mark)
	v1.GET("/attendance/stats", attendanceHandler.Stats)
	v1.DELETE("/attendance/:id", attendanceHandler.Delete)

	v1.GET("/ai/studyplan", plannerHandler.StudyPlan)
	v1.GET("/ai/daily", plannerHandler.DailyWorkload)
	v1.GET("/ai/overcommitment", plannerHandler.Overcommitment)
	v1.GET("/ai/analytics", plannerHandler.Analytics)

	v1.GET("/profile", profileHandler.Get)
	v1.PUT("/profile", profileHandler.Update)

	return e
}

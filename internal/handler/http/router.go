package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	employeeHandler EmployeeHandler,
	contractHandler ContractHandler,
	scheduleHandler ScheduleHandler,
	punchHandler PunchHandler,
	timebankHandler TimebankHandler,
	settingHandler SettingHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "escalator"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)

			r.Route("/{employeeID}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetByID)
				r.Delete("/", employeeHandler.Deactivate)

				r.Route("/contracts", func(r chi.Router) {
					r.Get("/", contractHandler.ListByEmployee)
					r.Post("/", contractHandler.Create)
					r.Get("/current", contractHandler.Current)
				})

				r.Route("/schedules", func(r chi.Router) {
					r.Get("/", scheduleHandler.ListRange)
					r.Post("/", scheduleHandler.Create)
					r.Get("/day", scheduleHandler.GetDay)
					r.Get("/validate-week", scheduleHandler.ValidateWeek)
					r.Post("/apply-template", scheduleHandler.ApplyTemplate)
				})

				r.Route("/punches", func(r chi.Router) {
					r.Post("/", punchHandler.Register)
					r.Get("/day", punchHandler.DayOverview)
				})

				r.Route("/timebank", func(r chi.Router) {
					r.Get("/", timebankHandler.ListEntries)
					r.Get("/balance", timebankHandler.Balance)
					r.Post("/compensate", timebankHandler.Compensate)
				})
			})
		})

		r.Get("/templates", scheduleHandler.ListTemplates)

		r.Post("/timebank/process-expirations", timebankHandler.ProcessExpirations)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingHandler.List)
			r.Put("/", settingHandler.Upsert)
		})
	})

	return r
}

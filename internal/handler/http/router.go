package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/payledger/payledger-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
	sheetHandler SheetHandler,
	datasetHandler DatasetHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payledger"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Delete("/", employeeHandler.DeleteEmployee)
				r.Post("/reduce-loan-term", employeeHandler.ReduceLoanTerm)

				r.Route("/payroll/{year}/{month}", func(r chi.Router) {
					r.Get("/preview", payrollHandler.PreviewEmployee)
					r.Post("/commit", payrollHandler.CommitPeriod)
					r.Get("/commit", payrollHandler.GetCommit)
				})
			})
		})

		r.Route("/attendance/{name}/{year}/{month}", func(r chi.Router) {
			r.Get("/", attendanceHandler.GetMonth)
			r.Route("/{day}", func(r chi.Router) {
				r.Put("/", attendanceHandler.SetDay)
				r.Delete("/", attendanceHandler.ClearDay)
			})
		})

		r.Route("/payroll/{year}/{month}", func(r chi.Router) {
			r.Get("/preview", payrollHandler.PreviewMonth)
			r.Post("/commit", payrollHandler.CommitAll)
			r.Get("/commits", payrollHandler.ListCommits)
		})

		r.Route("/reports/{year}/{month}", func(r chi.Router) {
			r.Get("/summary", reportHandler.MonthlySummary)
		})

		r.Route("/sheets/{year}/{month}", func(r chi.Router) {
			r.Get("/pay-sheet", sheetHandler.PaySheet)
			r.Get("/all-employees", sheetHandler.AllEmployeesSheet)
			r.Get("/grand-totals", sheetHandler.GrandTotalsSheet)
			r.Get("/branch-pay-sheet", sheetHandler.BranchPaySheet)
		})

		r.Route("/dataset", func(r chi.Router) {
			r.Get("/export", datasetHandler.Export)
			r.Post("/import", datasetHandler.Import)
		})
	})

	return r
}

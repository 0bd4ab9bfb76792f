package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/payledger/payledger-backend-go/internal/config"
	appHTTP "github.com/payledger/payledger-backend-go/internal/handler/http"
	"github.com/payledger/payledger-backend-go/internal/pkg/cron"
	"github.com/payledger/payledger-backend-go/internal/pkg/database"
	"github.com/payledger/payledger-backend-go/internal/pkg/storage"
	"github.com/payledger/payledger-backend-go/internal/repository/postgresql"
	attendanceService "github.com/payledger/payledger-backend-go/internal/service/attendance"
	datasetService "github.com/payledger/payledger-backend-go/internal/service/dataset"
	employeeService "github.com/payledger/payledger-backend-go/internal/service/employee"
	payrollService "github.com/payledger/payledger-backend-go/internal/service/payroll"
	reportService "github.com/payledger/payledger-backend-go/internal/service/report"
	sheetService "github.com/payledger/payledger-backend-go/internal/service/sheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	txManager := postgresql.NewTxManager(db)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(txManager, payrollRepo, employeeRepo, attendanceRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, cfg.Payroll.DailyBucketMode)
	sheetSvc := sheetService.NewSheetService(reportSvc, fileStorage)
	datasetSvc := datasetService.NewDatasetService(txManager, employeeRepo, attendanceRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	sheetHandler := appHTTP.NewSheetHandler(sheetSvc)
	datasetHandler := appHTTP.NewDatasetHandler(datasetSvc)

	router := appHTTP.NewRouter(
		cfg,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		reportHandler,
		sheetHandler,
		datasetHandler,
	)

	scheduler := cron.NewScheduler()
	if cfg.Payroll.AutoCommit {
		cron.RegisterPayrollAutoCommit(scheduler, payrollSvc)
	}
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

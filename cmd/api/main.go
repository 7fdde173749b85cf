package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/config"
	appHTTP "github.com/peopleops-hq/hr-admin-backend-go/internal/handler/http"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/database"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/jwt"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peopleops-hq/hr-admin-backend-go/internal/service/attendance"
	authService "github.com/peopleops-hq/hr-admin-backend-go/internal/service/auth"
	employeeService "github.com/peopleops-hq/hr-admin-backend-go/internal/service/employee"
	leaveService "github.com/peopleops-hq/hr-admin-backend-go/internal/service/leave"
	overtimeService "github.com/peopleops-hq/hr-admin-backend-go/internal/service/overtime"
	payrollService "github.com/peopleops-hq/hr-admin-backend-go/internal/service/payroll"
	reportService "github.com/peopleops-hq/hr-admin-backend-go/internal/service/report"
	taskService "github.com/peopleops-hq/hr-admin-backend-go/internal/service/task"
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
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	overtimeRequestRepo := postgresql.NewOvertimeRequestRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRequestRepo, employeeRepo)
	taskSvc := taskService.NewTaskService(taskRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, logger)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		leaveHandler,
		overtimeHandler,
		taskHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"fmt"
	"net/http"

	"github.com/samat2k5/hrms-singapore-sub000/internal/config"
	appHTTP "github.com/samat2k5/hrms-singapore-sub000/internal/handler/http"
	attendanceService "github.com/samat2k5/hrms-singapore-sub000/internal/service/attendance"
	leaveService "github.com/samat2k5/hrms-singapore-sub000/internal/service/leave"
	payrollService "github.com/samat2k5/hrms-singapore-sub000/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	attendanceSvc := attendanceService.NewAttendanceService()
	payrollSvc := payrollService.NewPayrollService(attendanceSvc)
	leaveSvc := leaveService.NewLeaveService()

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(cfg, payrollHandler, attendanceHandler, leaveHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

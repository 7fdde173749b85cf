package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/attendance"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewAttendanceService(employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{employeeRepo: employeeRepo}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.CheckInResponse{}, err
	}

	// An open marker is silently overwritten; re-checking in restarts the
	// session.
	now := time.Now()
	if err := s.employeeRepo.UpdateLastCheckIn(ctx, req.EmployeeID, &now); err != nil {
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{CheckInTime: now}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	if emp.LastCheckIn == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNoCheckInRecord
	}

	elapsedMinutes := time.Since(*emp.LastCheckIn).Minutes()
	if elapsedMinutes < 1 {
		return attendance.CheckOutResponse{}, attendance.ErrCheckOutTooSoon
	}

	hoursWorked := elapsedMinutes / 60
	totalWorkedHours := emp.WorkedHours + hoursWorked

	if err := s.employeeRepo.ApplyCheckOut(ctx, req.EmployeeID, totalWorkedHours); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	return attendance.CheckOutResponse{
		HoursWorked:      fmt.Sprintf("%.2f", hoursWorked),
		TotalWorkedHours: totalWorkedHours,
	}, nil
}

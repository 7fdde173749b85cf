package attendance

import "context"

// AttendanceService defines the check-in/check-out time accounting operations.
type AttendanceService interface {
	// CheckIn records the current timestamp as the employee's open check-in
	// marker. Checking in again overwrites the marker.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut closes the marker, converts the elapsed time to hours and adds
	// it to the employee's worked-hours accumulator.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)
}

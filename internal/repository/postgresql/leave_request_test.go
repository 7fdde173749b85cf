package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/leave"
)

func TestScanLeaveRequest_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanLeaveRequest(row)
	if !errors.Is(err, leave.ErrLeaveRequestNotFound) {
		t.Fatalf("expected ErrLeaveRequestNotFound, got %v", err)
	}
}

func leaveMockColumns() []string {
	return []string{
		"id", "employee_id", "employee_name", "leave_type", "start_date", "end_date",
		"duration", "reason", "status", "created_at", "updated_at",
	}
}

func leaveMockRow(rows *pgxmock.Rows, id string, status leave.Status) *pgxmock.Rows {
	now := time.Now().UTC()
	return rows.AddRow(
		id, "emp-1", "Ada Lovelace", leave.LeaveTypeVacation, now, now.AddDate(0, 0, 5),
		5, "Family trip", status, now, now,
	)
}

func TestLeaveRequestRepository_List_FiltersByStatusAndEmployee(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewLeaveRequestRepository(mock)

	query := regexp.QuoteMeta(`SELECT ` + leaveRequestColumns +
		` FROM leave_requests WHERE 1=1 AND status = $1 AND employee_id = $2 ORDER BY created_at DESC`)
	mock.ExpectQuery(query).
		WithArgs("pending", "emp-1").
		WillReturnRows(leaveMockRow(pgxmock.NewRows(leaveMockColumns()), "lr-1", leave.StatusPending))

	requests, err := repo.List(context.Background(), leave.ListLeaveFilter{Status: "pending", EmployeeID: "emp-1"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(requests) != 1 || requests[0].ID != "lr-1" {
		t.Fatalf("unexpected result %+v", requests)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLeaveRequestRepository_List_NoFilters(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewLeaveRequestRepository(mock)

	rows := pgxmock.NewRows(leaveMockColumns())
	rows = leaveMockRow(rows, "lr-2", leave.StatusApproved)
	rows = leaveMockRow(rows, "lr-1", leave.StatusPending)

	query := regexp.QuoteMeta(`SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE 1=1 ORDER BY created_at DESC`)
	mock.ExpectQuery(query).WillReturnRows(rows)

	requests, err := repo.List(context.Background(), leave.ListLeaveFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
}

func TestLeaveRequestRepository_UpdateStatus(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewLeaveRequestRepository(mock)

	query := regexp.QuoteMeta(`
			UPDATE leave_requests
			SET status = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING ` + leaveRequestColumns)
	mock.ExpectQuery(query).
		WithArgs(leave.StatusApproved, "lr-1").
		WillReturnRows(leaveMockRow(pgxmock.NewRows(leaveMockColumns()), "lr-1", leave.StatusApproved))

	updated, err := repo.UpdateStatus(context.Background(), "lr-1", leave.StatusApproved)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if updated.Status != leave.StatusApproved {
		t.Fatalf("expected approved status, got %s", updated.Status)
	}
}

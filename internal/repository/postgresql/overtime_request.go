package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/overtime"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/database"
)

const overtimeRequestColumns = `id, employee_id, employee_name, date, hours, start_time, end_time,
		reason, status, created_at, updated_at`

type overtimeRequestRepositoryImpl struct {
	db database.Querier
}

func NewOvertimeRequestRepository(db database.Querier) overtime.OvertimeRequestRepository {
	return &overtimeRequestRepositoryImpl{db: db}
}

func scanOvertimeRequest(row pgx.Row) (overtime.OvertimeRequest, error) {
	var or overtime.OvertimeRequest
	err := row.Scan(
		&or.ID, &or.EmployeeID, &or.EmployeeName, &or.Date, &or.Hours, &or.StartTime, &or.EndTime,
		&or.Reason, &or.Status, &or.CreatedAt, &or.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
		}
		return overtime.OvertimeRequest{}, err
	}
	return or, nil
}

// Create implements overtime.OvertimeRequestRepository.
func (o *overtimeRequestRepositoryImpl) Create(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	query := `
		INSERT INTO overtime_requests (
			id, employee_id, employee_name, date, hours, start_time, end_time, reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + overtimeRequestColumns

	return scanOvertimeRequest(o.db.QueryRow(ctx, query,
		uuid.NewString(), request.EmployeeID, request.EmployeeName, request.Date,
		request.Hours, request.StartTime, request.EndTime, request.Reason,
	))
}

// GetByID implements overtime.OvertimeRequestRepository.
func (o *overtimeRequestRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	query := `SELECT ` + overtimeRequestColumns + ` FROM overtime_requests WHERE id = $1`
	return scanOvertimeRequest(o.db.QueryRow(ctx, query, id))
}

// List implements overtime.OvertimeRequestRepository.
func (o *overtimeRequestRepositoryImpl) List(ctx context.Context, filter overtime.ListOvertimeFilter) ([]overtime.OvertimeRequest, error) {
	query := `SELECT ` + overtimeRequestColumns + ` FROM overtime_requests WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := o.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		or, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, or)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateStatus implements overtime.OvertimeRequestRepository.
func (o *overtimeRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status overtime.Status) (overtime.OvertimeRequest, error) {
	query := `
		UPDATE overtime_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + overtimeRequestColumns
	return scanOvertimeRequest(o.db.QueryRow(ctx, query, status, id))
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/approval"
	"github.com/hrpulse/attendance-backend-go/internal/domain/overtime"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.Repository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `
	o.id, o.employee_id, o.date, o.start_time, o.end_time, o.type, o.reason,
	o.rate_multiplier, o.hours, o.hourly_rate, o.amount, o.is_holiday, o.holiday_name,
	o.status, o.approved_by, o.approved_at, o.rejection_reason, o.created_at, o.updated_at,
	e.full_name`

func scanOvertime(row pgx.Row) (overtime.Request, error) {
	var r overtime.Request
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.Date, &r.StartTime, &r.EndTime, &r.Type, &r.Reason,
		&r.RateMultiplier, &r.Hours, &r.HourlyRate, &r.Amount, &r.IsHoliday, &r.HolidayName,
		&r.Status, &r.ApprovedBy, &r.ApprovedAt, &r.RejectionReason, &r.CreatedAt, &r.UpdatedAt,
		&r.EmployeeName,
	)
	return r, err
}

// Create implements overtime.Repository.
func (repo *overtimeRepository) Create(ctx context.Context, request overtime.Request) (overtime.Request, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		INSERT INTO overtime_requests (
			employee_id, date, start_time, end_time, type, reason,
			rate_multiplier, hours, hourly_rate, amount, is_holiday, holiday_name,
			status, approved_by, approved_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.Date,
		request.StartTime,
		request.EndTime,
		request.Type,
		request.Reason,
		request.RateMultiplier,
		request.Hours,
		request.HourlyRate,
		request.Amount,
		request.IsHoliday,
		request.HolidayName,
		request.Status,
		request.ApprovedBy,
		request.ApprovedAt,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return overtime.Request{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return request, nil
}

// GetByID implements overtime.Repository.
func (repo *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.Request, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests o
		JOIN employees e ON e.id = o.employee_id
		WHERE o.id = $1
	`

	r, err := scanOvertime(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Request{}, overtime.ErrRequestNotFound
		}
		return overtime.Request{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	return r, nil
}

// List implements overtime.Repository.
func (repo *overtimeRepository) List(ctx context.Context, filter overtime.ListFilter) ([]overtime.Request, int64, error) {
	q := GetQuerier(ctx, repo.db)

	where := "1=1"
	args := []interface{}{}
	idx := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND o.employee_id = $%d", idx)
		args = append(args, *filter.EmployeeID)
		idx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND o.status = $%d", idx)
		args = append(args, *filter.Status)
		idx++
	}
	if filter.DateFrom != nil {
		where += fmt.Sprintf(" AND o.date >= $%d", idx)
		args = append(args, *filter.DateFrom)
		idx++
	}
	if filter.DateTo != nil {
		where += fmt.Sprintf(" AND o.date <= $%d", idx)
		args = append(args, *filter.DateTo)
		idx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM overtime_requests o WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtime requests: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM overtime_requests o
		JOIN employees e ON e.id = o.employee_id
		WHERE %s
		ORDER BY o.created_at DESC
		LIMIT $%d OFFSET $%d
	`, overtimeColumns, where, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var result []overtime.Request
	for rows.Next() {
		r, err := scanOvertime(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		result = append(result, r)
	}

	return result, total, rows.Err()
}

// Update implements overtime.Repository.
func (repo *overtimeRepository) Update(ctx context.Context, request overtime.Request) error {
	q := GetQuerier(ctx, repo.db)

	tag, err := q.Exec(ctx, `
		UPDATE overtime_requests
		SET status = $2, approved_by = $3, approved_at = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $1
	`, request.ID, request.Status, request.ApprovedBy, request.ApprovedAt, request.RejectionReason)
	if err != nil {
		return fmt.Errorf("failed to update overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrRequestNotFound
	}

	return nil
}

// HasOverlap implements overtime.Repository.
func (repo *overtimeRepository) HasOverlap(ctx context.Context, employeeID string, request overtime.Request) (bool, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM overtime_requests
			WHERE employee_id = $1
			  AND status NOT IN ($2, $3)
			  AND start_time < $5
			  AND end_time > $4
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query,
		employeeID, approval.StatusRejected, approval.StatusExpired,
		request.StartTime, request.EndTime,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check overtime overlap: %w", err)
	}

	return exists, nil
}

// MarkExpiredBefore implements overtime.Repository.
func (repo *overtimeRepository) MarkExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, repo.db)

	tag, err := q.Exec(ctx, `
		UPDATE overtime_requests
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND created_at < $3
	`, approval.StatusExpired, approval.StatusPending, before)
	if err != nil {
		return 0, fmt.Errorf("failed to expire overtime requests: %w", err)
	}

	return tag.RowsAffected(), nil
}

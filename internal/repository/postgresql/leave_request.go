package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/approval"
	"github.com/hrpulse/attendance-backend-go/internal/domain/leave"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.category, l.start_date, l.end_date, l.days, l.reason,
	l.status, l.approved_by, l.approved_at, l.rejection_reason, l.created_at, l.updated_at,
	e.full_name`

func scanLeave(row pgx.Row) (leave.Request, error) {
	var r leave.Request
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.Category, &r.StartDate, &r.EndDate, &r.Days, &r.Reason,
		&r.Status, &r.ApprovedBy, &r.ApprovedAt, &r.RejectionReason, &r.CreatedAt, &r.UpdatedAt,
		&r.EmployeeName,
	)
	return r, err
}

// Create implements leave.Repository.
func (repo *leaveRequestRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, category, start_date, end_date, days, reason,
			status, approved_by, approved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Category, request.StartDate, request.EndDate,
		request.Days, request.Reason, request.Status, request.ApprovedBy, request.ApprovedAt,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.Repository.
func (repo *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	r, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return r, nil
}

// List implements leave.Repository.
func (repo *leaveRequestRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, repo.db)

	where := "1=1"
	args := []interface{}{}
	idx := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND l.employee_id = $%d", idx)
		args = append(args, *filter.EmployeeID)
		idx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND l.status = $%d", idx)
		args = append(args, *filter.Status)
		idx++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests l WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
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
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE %s
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveColumns, where, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.Request
	for rows.Next() {
		r, err := scanLeave(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, r)
	}

	return result, total, rows.Err()
}

// Update implements leave.Repository.
func (repo *leaveRequestRepository) Update(ctx context.Context, request leave.Request) error {
	q := GetQuerier(ctx, repo.db)

	tag, err := q.Exec(ctx, `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approved_at = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $1
	`, request.ID, request.Status, request.ApprovedBy, request.ApprovedAt, request.RejectionReason)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

// HasOverlap implements leave.Repository.
func (repo *leaveRequestRepository) HasOverlap(ctx context.Context, employeeID string, request leave.Request) (bool, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status NOT IN ($2, $3)
			  AND start_date <= $5
			  AND end_date >= $4
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query,
		employeeID, approval.StatusRejected, approval.StatusExpired,
		request.StartDate, request.EndDate,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}

	return exists, nil
}

// MarkExpiredBefore implements leave.Repository.
func (repo *leaveRequestRepository) MarkExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, repo.db)

	tag, err := q.Exec(ctx, `
		UPDATE leave_requests
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND created_at < $3
	`, approval.StatusExpired, approval.StatusPending, before)
	if err != nil {
		return 0, fmt.Errorf("failed to expire leave requests: %w", err)
	}

	return tag.RowsAffected(), nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/approval"
	"github.com/hrpulse/attendance-backend-go/internal/domain/workrequest"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workRequestRepository struct {
	db *database.DB
}

func NewWorkRequestRepository(db *database.DB) workrequest.Repository {
	return &workRequestRepository{db: db}
}

const workRequestColumns = `
	w.id, w.employee_id, w.kind, w.date, w.start_time, w.end_time, w.reason,
	w.latitude, w.longitude, w.location,
	w.status, w.approved_by, w.approved_at, w.rejection_reason, w.created_at, w.updated_at,
	e.full_name`

func scanWorkRequest(row pgx.Row) (workrequest.Request, error) {
	var r workrequest.Request
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.Kind, &r.Date, &r.StartTime, &r.EndTime, &r.Reason,
		&r.Latitude, &r.Longitude, &r.Location,
		&r.Status, &r.ApprovedBy, &r.ApprovedAt, &r.RejectionReason, &r.CreatedAt, &r.UpdatedAt,
		&r.EmployeeName,
	)
	return r, err
}

// Create implements workrequest.Repository.
func (repo *workRequestRepository) Create(ctx context.Context, request workrequest.Request) (workrequest.Request, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		INSERT INTO work_requests (
			employee_id, kind, date, start_time, end_time, reason,
			latitude, longitude, location, status, approved_by, approved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Kind, request.Date, request.StartTime, request.EndTime,
		request.Reason, request.Latitude, request.Longitude, request.Location,
		request.Status, request.ApprovedBy, request.ApprovedAt,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return workrequest.Request{}, fmt.Errorf("failed to create work request: %w", err)
	}

	return request, nil
}

// GetByID implements workrequest.Repository.
func (repo *workRequestRepository) GetByID(ctx context.Context, id string) (workrequest.Request, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		SELECT ` + workRequestColumns + `
		FROM work_requests w
		JOIN employees e ON e.id = w.employee_id
		WHERE w.id = $1
	`

	r, err := scanWorkRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workrequest.Request{}, workrequest.ErrRequestNotFound
		}
		return workrequest.Request{}, fmt.Errorf("failed to get work request: %w", err)
	}

	return r, nil
}

// List implements workrequest.Repository.
func (repo *workRequestRepository) List(ctx context.Context, filter workrequest.ListFilter) ([]workrequest.Request, int64, error) {
	q := GetQuerier(ctx, repo.db)

	where := "1=1"
	args := []interface{}{}
	idx := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND w.employee_id = $%d", idx)
		args = append(args, *filter.EmployeeID)
		idx++
	}
	if filter.Kind != nil {
		where += fmt.Sprintf(" AND w.kind = $%d", idx)
		args = append(args, *filter.Kind)
		idx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND w.status = $%d", idx)
		args = append(args, *filter.Status)
		idx++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM work_requests w WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work requests: %w", err)
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
		FROM work_requests w
		JOIN employees e ON e.id = w.employee_id
		WHERE %s
		ORDER BY w.created_at DESC
		LIMIT $%d OFFSET $%d
	`, workRequestColumns, where, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work requests: %w", err)
	}
	defer rows.Close()

	var result []workrequest.Request
	for rows.Next() {
		r, err := scanWorkRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan work request: %w", err)
		}
		result = append(result, r)
	}

	return result, total, rows.Err()
}

// Update implements workrequest.Repository.
func (repo *workRequestRepository) Update(ctx context.Context, request workrequest.Request) error {
	q := GetQuerier(ctx, repo.db)

	tag, err := q.Exec(ctx, `
		UPDATE work_requests
		SET status = $2, approved_by = $3, approved_at = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $1
	`, request.ID, request.Status, request.ApprovedBy, request.ApprovedAt, request.RejectionReason)
	if err != nil {
		return fmt.Errorf("failed to update work request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workrequest.ErrRequestNotFound
	}

	return nil
}

// ExistsForDate implements workrequest.Repository.
func (repo *workRequestRepository) ExistsForDate(ctx context.Context, employeeID, kind string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM work_requests
			WHERE employee_id = $1
			  AND kind = $2
			  AND date = $3
			  AND status NOT IN ($4, $5)
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, kind, date,
		approval.StatusRejected, approval.StatusExpired).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check work request existence: %w", err)
	}

	return exists, nil
}

// MarkExpiredBefore implements workrequest.Repository.
func (repo *workRequestRepository) MarkExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, repo.db)

	tag, err := q.Exec(ctx, `
		UPDATE work_requests
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND created_at < $3
	`, approval.StatusExpired, approval.StatusPending, before)
	if err != nil {
		return 0, fmt.Errorf("failed to expire work requests: %w", err)
	}

	return tag.RowsAffected(), nil
}

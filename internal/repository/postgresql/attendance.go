package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.clock_in, a.clock_out, a.work_minutes,
	a.clock_in_latitude, a.clock_in_longitude, a.clock_in_distance_m, a.clock_in_proof_url,
	a.clock_out_latitude, a.clock_out_longitude, a.clock_out_distance_m, a.clock_out_proof_url,
	a.status, a.late_minutes, a.overtime_minutes, a.note, a.created_at, a.updated_at,
	e.full_name`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.ClockIn, &a.ClockOut, &a.WorkMinutes,
		&a.ClockInLatitude, &a.ClockInLongitude, &a.ClockInDistanceM, &a.ClockInProofURL,
		&a.ClockOutLatitude, &a.ClockOutLongitude, &a.ClockOutDistanceM, &a.ClockOutProofURL,
		&a.Status, &a.LateMinutes, &a.OvertimeMinutes, &a.Note, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName,
	)
	return a, err
}

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, clock_in,
			clock_in_latitude, clock_in_longitude, clock_in_distance_m, clock_in_proof_url,
			status, late_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.ClockIn,
		att.ClockInLatitude,
		att.ClockInLongitude,
		att.ClockInDistanceM,
		att.ClockInProofURL,
		att.Status,
		att.LateMinutes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// Update implements attendance.Repository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendances
		SET clock_out = $2, work_minutes = $3,
			clock_out_latitude = $4, clock_out_longitude = $5,
			clock_out_distance_m = $6, clock_out_proof_url = $7,
			status = $8, late_minutes = $9, overtime_minutes = $10, note = $11,
			updated_at = NOW()
		WHERE id = $1
	`,
		att.ID, att.ClockOut, att.WorkMinutes,
		att.ClockOutLatitude, att.ClockOutLongitude,
		att.ClockOutDistanceM, att.ClockOutProofURL,
		att.Status, att.LateMinutes, att.OvertimeMinutes, att.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	idx := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND a.employee_id = $%d", idx)
		args = append(args, *filter.EmployeeID)
		idx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND a.status = $%d", idx)
		args = append(args, *filter.Status)
		idx++
	}
	if filter.DateFrom != nil {
		where += fmt.Sprintf(" AND a.date >= $%d", idx)
		args = append(args, *filter.DateFrom)
		idx++
	}
	if filter.DateTo != nil {
		where += fmt.Sprintf(" AND a.date <= $%d", idx)
		args = append(args, *filter.DateTo)
		idx++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances a WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
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
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, a.clock_in DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, where, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}

	return result, total, rows.Err()
}

// HasCheckedInToday implements attendance.Repository.
func (r *attendanceRepository) HasCheckedInToday(ctx context.Context, employeeID string, dateLocal string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM attendances
			WHERE employee_id = $1 AND date = $2
		)
	`, employeeID, dateLocal).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}

	return exists, nil
}

// GetOpenSession implements attendance.Repository.
func (r *attendanceRepository) GetOpenSession(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.clock_out IS NULL
		  AND a.clock_in IS NOT NULL
		ORDER BY a.clock_in DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return att, nil
}

// GetStaleOpenSessions implements attendance.Repository.
func (r *attendanceRepository) GetStaleOpenSessions(ctx context.Context, olderThan time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.clock_out IS NULL
		  AND a.clock_in IS NOT NULL
		  AND a.clock_in < $1
		ORDER BY a.clock_in
	`

	rows, err := q.Query(ctx, query, olderThan)
	if err != nil {
		return nil, fmt.Errorf("failed to get stale open sessions: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}

	return result, rows.Err()
}

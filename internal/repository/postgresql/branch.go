package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrpulse/attendance-backend-go/internal/domain/branch"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type branchRepository struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.Repository {
	return &branchRepository{db: db}
}

const branchColumns = `id, name, latitude, longitude, radius_meters, timezone, created_at, updated_at`

func scanBranch(row pgx.Row) (branch.Branch, error) {
	var b branch.Branch
	err := row.Scan(
		&b.ID, &b.Name, &b.Latitude, &b.Longitude, &b.RadiusMeters, &b.Timezone, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// GetByID implements branch.Repository.
func (r *branchRepository) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBranch(q.QueryRow(ctx,
		`SELECT `+branchColumns+` FROM branches WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return b, nil
}

// GetByEmployeeID implements branch.Repository.
func (r *branchRepository) GetByEmployeeID(ctx context.Context, employeeID string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.name, b.latitude, b.longitude, b.radius_meters, b.timezone, b.created_at, b.updated_at
		FROM branches b
		JOIN employees e ON e.branch_id = b.id
		WHERE e.id = $1
	`

	b, err := scanBranch(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch by employee ID: %w", err)
	}

	return b, nil
}

// List implements branch.Repository.
func (r *branchRepository) List(ctx context.Context) ([]branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+branchColumns+` FROM branches ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var result []branch.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		result = append(result, b)
	}

	return result, rows.Err()
}

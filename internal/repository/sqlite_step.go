package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tmorland/wayfare/internal/db"
	"github.com/tmorland/wayfare/internal/domain"
)

// stepColumns is the canonical SELECT column list for steps.
const stepColumns = `id, stage_id, name, status, order_index, created_at, updated_at`

// stepColumnsAliased is the same column list prefixed with "t." for join queries.
const stepColumnsAliased = `t.id, t.stage_id, t.name, t.status, t.order_index, t.created_at, t.updated_at`

// SQLiteStepRepo implements StepRepo using a SQLite database.
type SQLiteStepRepo struct {
	db db.DBTX
}

// NewSQLiteStepRepo creates a new SQLiteStepRepo.
func NewSQLiteStepRepo(db db.DBTX) *SQLiteStepRepo {
	return &SQLiteStepRepo{db: db}
}

func (r *SQLiteStepRepo) Create(ctx context.Context, s *domain.Step) error {
	query := `INSERT INTO steps (id, stage_id, name, status, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.StageID,
		s.Name,
		string(s.Status),
		s.OrderIndex,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting step: %w", err)
	}
	return nil
}

func (r *SQLiteStepRepo) GetByID(ctx context.Context, id string) (*domain.Step, error) {
	query := `SELECT ` + stepColumns + ` FROM steps WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanStep(row)
}

func (r *SQLiteStepRepo) ListByStage(ctx context.Context, stageID string) ([]*domain.Step, error) {
	query := `SELECT ` + stepColumns + ` FROM steps WHERE stage_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, stageID)
	if err != nil {
		return nil, fmt.Errorf("listing steps by stage: %w", err)
	}
	defer rows.Close()
	return r.scanSteps(rows)
}

// ListByJourney returns every step across all of a journey's stages, ordered
// by stage position then step position. The journey-level completion formula
// aggregates over this union rather than averaging stage percentages.
func (r *SQLiteStepRepo) ListByJourney(ctx context.Context, journeyID string) ([]*domain.Step, error) {
	query := `SELECT ` + stepColumnsAliased + ` FROM steps t
		JOIN stages s ON t.stage_id = s.id
		WHERE s.journey_id = ?
		ORDER BY s.order_index, t.order_index`
	rows, err := r.db.QueryContext(ctx, query, journeyID)
	if err != nil {
		return nil, fmt.Errorf("listing steps by journey: %w", err)
	}
	defer rows.Close()
	return r.scanSteps(rows)
}

// NextOrderIndex returns the next insertion position for a stage's steps,
// computed as MAX(order_index) + 1.
func (r *SQLiteStepRepo) NextOrderIndex(ctx context.Context, stageID string) (int, error) {
	query := `SELECT COALESCE(MAX(order_index), -1) + 1 FROM steps WHERE stage_id = ?`
	var next int
	if err := r.db.QueryRowContext(ctx, query, stageID).Scan(&next); err != nil {
		return 0, fmt.Errorf("computing next step order for stage %s: %w", stageID, err)
	}
	return next, nil
}

func (r *SQLiteStepRepo) Update(ctx context.Context, s *domain.Step) error {
	query := `UPDATE steps SET name = ?, status = ?, order_index = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		string(s.Status),
		s.OrderIndex,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating step: %w", err)
	}
	return requireAffected(res, "step")
}

func (r *SQLiteStepRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM steps WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting step: %w", err)
	}
	return requireAffected(res, "step")
}

// scanStep scans a single step from a *sql.Row.
func (r *SQLiteStepRepo) scanStep(row *sql.Row) (*domain.Step, error) {
	var s domain.Step
	var statusStr, createdAtStr, updatedAtStr string

	err := row.Scan(&s.ID, &s.StageID, &s.Name, &statusStr, &s.OrderIndex, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("step: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning step: %w", err)
	}

	s.Status = domain.StepStatus(statusStr)
	if err := parseTimestamps(&s.CreatedAt, &s.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}

// scanSteps scans multiple steps from *sql.Rows.
func (r *SQLiteStepRepo) scanSteps(rows *sql.Rows) ([]*domain.Step, error) {
	var steps []*domain.Step
	for rows.Next() {
		var s domain.Step
		var statusStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(&s.ID, &s.StageID, &s.Name, &statusStr, &s.OrderIndex, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning step row: %w", err)
		}
		s.Status = domain.StepStatus(statusStr)
		if err := parseTimestamps(&s.CreatedAt, &s.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		steps = append(steps, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating steps: %w", err)
	}
	return steps, nil
}

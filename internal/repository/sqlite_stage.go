package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tmorland/wayfare/internal/db"
	"github.com/tmorland/wayfare/internal/domain"
)

// stageColumns is the canonical SELECT column list for stages.
const stageColumns = `id, journey_id, name, order_index, created_at, updated_at`

// SQLiteStageRepo implements StageRepo using a SQLite database.
type SQLiteStageRepo struct {
	db db.DBTX
}

// NewSQLiteStageRepo creates a new SQLiteStageRepo.
func NewSQLiteStageRepo(db db.DBTX) *SQLiteStageRepo {
	return &SQLiteStageRepo{db: db}
}

func (r *SQLiteStageRepo) Create(ctx context.Context, s *domain.Stage) error {
	query := `INSERT INTO stages (id, journey_id, name, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.JourneyID,
		s.Name,
		s.OrderIndex,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting stage: %w", err)
	}
	return nil
}

func (r *SQLiteStageRepo) GetByID(ctx context.Context, id string) (*domain.Stage, error) {
	query := `SELECT ` + stageColumns + ` FROM stages WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Stage
	var createdAtStr, updatedAtStr string
	err := row.Scan(&s.ID, &s.JourneyID, &s.Name, &s.OrderIndex, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("stage: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning stage: %w", err)
	}

	if err := parseTimestamps(&s.CreatedAt, &s.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteStageRepo) ListByJourney(ctx context.Context, journeyID string) ([]*domain.Stage, error) {
	query := `SELECT ` + stageColumns + ` FROM stages WHERE journey_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, journeyID)
	if err != nil {
		return nil, fmt.Errorf("listing stages by journey: %w", err)
	}
	defer rows.Close()

	var stages []*domain.Stage
	for rows.Next() {
		var s domain.Stage
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&s.ID, &s.JourneyID, &s.Name, &s.OrderIndex, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning stage row: %w", err)
		}
		if err := parseTimestamps(&s.CreatedAt, &s.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		stages = append(stages, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stages: %w", err)
	}
	return stages, nil
}

// NextOrderIndex returns the next insertion position for a journey's stages,
// computed as MAX(order_index) + 1.
func (r *SQLiteStageRepo) NextOrderIndex(ctx context.Context, journeyID string) (int, error) {
	query := `SELECT COALESCE(MAX(order_index), -1) + 1 FROM stages WHERE journey_id = ?`
	var next int
	if err := r.db.QueryRowContext(ctx, query, journeyID).Scan(&next); err != nil {
		return 0, fmt.Errorf("computing next stage order for journey %s: %w", journeyID, err)
	}
	return next, nil
}

func (r *SQLiteStageRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting stage: %w", err)
	}
	return requireAffected(res, "stage")
}

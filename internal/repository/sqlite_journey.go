package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tmorland/wayfare/internal/db"
	"github.com/tmorland/wayfare/internal/domain"
)

// journeyColumns is the canonical SELECT column list for journeys.
const journeyColumns = `id, name, created_at, updated_at`

// SQLiteJourneyRepo implements JourneyRepo using a SQLite database.
type SQLiteJourneyRepo struct {
	db db.DBTX
}

// NewSQLiteJourneyRepo creates a new SQLiteJourneyRepo. It accepts either
// a *sql.DB or a transaction, so services can compose it inside a unit of work.
func NewSQLiteJourneyRepo(db db.DBTX) *SQLiteJourneyRepo {
	return &SQLiteJourneyRepo{db: db}
}

func (r *SQLiteJourneyRepo) Create(ctx context.Context, j *domain.Journey) error {
	query := `INSERT INTO journeys (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		j.ID,
		j.Name,
		j.CreatedAt.Format(time.RFC3339),
		j.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting journey: %w", err)
	}
	return nil
}

func (r *SQLiteJourneyRepo) GetByID(ctx context.Context, id string) (*domain.Journey, error) {
	query := `SELECT ` + journeyColumns + ` FROM journeys WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanJourney(row)
}

func (r *SQLiteJourneyRepo) List(ctx context.Context) ([]*domain.Journey, error) {
	query := `SELECT ` + journeyColumns + ` FROM journeys ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing journeys: %w", err)
	}
	defer rows.Close()

	var journeys []*domain.Journey
	for rows.Next() {
		var j domain.Journey
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&j.ID, &j.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning journey row: %w", err)
		}
		if err := parseTimestamps(&j.CreatedAt, &j.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		journeys = append(journeys, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journeys: %w", err)
	}
	return journeys, nil
}

func (r *SQLiteJourneyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM journeys WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting journey: %w", err)
	}
	return requireAffected(res, "journey")
}

func scanJourney(row *sql.Row) (*domain.Journey, error) {
	var j domain.Journey
	var createdAtStr, updatedAtStr string

	err := row.Scan(&j.ID, &j.Name, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("journey: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning journey: %w", err)
	}

	if err := parseTimestamps(&j.CreatedAt, &j.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &j, nil
}

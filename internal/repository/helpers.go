package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// parseTimestamps parses the created_at/updated_at columns stored as RFC3339.
func parseTimestamps(createdAt, updatedAt *time.Time, createdAtStr, updatedAtStr string) error {
	var err error
	*createdAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	*updatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}

// requireAffected converts a zero-row DELETE or UPDATE into ErrNotFound,
// so unknown ids surface the same way as missing reads.
func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}

package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/phytocure"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ phytocure.HistoryService = (*HistoryService)(nil)

// HistoryService implements phytocure.HistoryService using SQLite.
type HistoryService struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db, Now: time.Now}
}

// CreateEntry records a new lookup.
func (s *HistoryService) CreateEntry(ctx context.Context, entry *phytocure.HistoryEntry, compounds []*phytocure.Compound) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	diseases := entry.Diseases
	if diseases == nil {
		diseases = []string{}
	}
	encoded, err := json.Marshal(diseases)
	if err != nil {
		return fmt.Errorf("failed to encode diseases: %w", err)
	}

	entry.ID = uuid.New().String()
	entry.CreatedAt = s.Now().UTC()
	entry.CompoundsHash = hashCompounds(compounds)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO history (id, plant_name, compound_count, compounds_hash, diseases, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.PlantName, entry.CompoundCount, entry.CompoundsHash, string(encoded),
		entry.CreatedAt.Format(timeFormat))

	return err
}

// FindEntries retrieves entries matching the filter, newest first.
func (s *HistoryService) FindEntries(ctx context.Context, filter phytocure.HistoryFilter) ([]*phytocure.HistoryEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, plant_name, compound_count, compounds_hash, diseases, created_at FROM history WHERE 1=1")

	if filter.PlantName != nil {
		query.WriteString(" AND plant_name = ? COLLATE NOCASE")
		args = append(args, *filter.PlantName)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*phytocure.HistoryEntry{}
	for rows.Next() {
		var entry phytocure.HistoryEntry
		var diseases, createdAt string

		if err := rows.Scan(&entry.ID, &entry.PlantName, &entry.CompoundCount, &entry.CompoundsHash,
			&diseases, &createdAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(diseases), &entry.Diseases); err != nil {
			return nil, fmt.Errorf("failed to decode diseases: %w", err)
		}
		if entry.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// DeleteEntries removes entries matching the filter and returns the number
// removed. Pagination fields are ignored.
func (s *HistoryService) DeleteEntries(ctx context.Context, filter phytocure.HistoryFilter) (int, error) {
	var query strings.Builder
	var args []any

	query.WriteString("DELETE FROM history WHERE 1=1")

	if filter.PlantName != nil {
		query.WriteString(" AND plant_name = ? COLLATE NOCASE")
		args = append(args, *filter.PlantName)
	}

	result, err := s.db.ExecContext(ctx, query.String(), args...)
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

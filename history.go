package phytocure

import (
	"context"
	"time"
)

// HistoryEntry records a completed plant lookup.
type HistoryEntry struct {
	ID            string    `json:"id"`
	PlantName     string    `json:"plantName"`
	CompoundCount int       `json:"compoundCount"`
	CompoundsHash string    `json:"compoundsHash"`
	Diseases      []string  `json:"diseases"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *HistoryEntry) Validate() error {
	if e.PlantName == "" {
		return Errorf(EINVALID, "history entry plant name required")
	}
	if e.CompoundCount < 0 {
		return Errorf(EINVALID, "history entry compound count must not be negative")
	}
	return nil
}

// NewHistoryEntry builds a history entry from a report.
func NewHistoryEntry(r *Report) *HistoryEntry {
	return &HistoryEntry{
		PlantName:     r.PlantName,
		CompoundCount: len(r.Compounds),
		Diseases:      append([]string(nil), r.Diseases...),
	}
}

// HistoryService represents a service for managing lookup history.
type HistoryService interface {
	// CreateEntry records a new lookup. ID, hash and timestamp are assigned
	// by the implementation.
	CreateEntry(ctx context.Context, entry *HistoryEntry, compounds []*Compound) error

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter HistoryFilter) ([]*HistoryEntry, error)

	// DeleteEntries removes entries matching the filter and returns
	// the number removed.
	DeleteEntries(ctx context.Context, filter HistoryFilter) (int, error)
}

// HistoryFilter represents a filter for history queries.
type HistoryFilter struct {
	PlantName *string `json:"plantName"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

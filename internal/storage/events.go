package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventRow is one persisted analytics event.
type EventRow struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Path       string    `json:"path,omitempty"`
	SearchText string    `json:"searchText,omitempty"`
	ItemID     string    `json:"itemId,omitempty"`
	MethodID   string    `json:"methodId,omitempty"`
	Payload    string    `json:"payload,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EventStore persists analytics events.
type EventStore struct {
	db *DB
}

// NewEventStore creates an EventStore.
func NewEventStore(db *DB) *EventStore {
	return &EventStore{db: db}
}

// Insert writes one event. A zero ID gets a fresh uuid.
func (s *EventStore) Insert(row EventRow) error {
	if row.ID == "" {
		row.ID = uuid.New().String()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	_, err := s.db.conn.Exec(`
		INSERT INTO analytics_events (id, kind, path, search_text, item_id, method_id, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.Kind, row.Path, row.SearchText, row.ItemID, row.MethodID, row.Payload,
		row.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// ListRecent returns the newest events, newest first.
func (s *EventStore) ListRecent(limit int) ([]EventRow, error) {
	rows, err := s.db.conn.Query(`
		SELECT id, kind, path, search_text, item_id, method_id, COALESCE(payload, ''), created_at
		FROM analytics_events ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []EventRow
	for rows.Next() {
		var r EventRow
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Kind, &r.Path, &r.SearchText, &r.ItemID, &r.MethodID, &r.Payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		r.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountByKind returns how many events of a kind exist.
func (s *EventStore) CountByKind(kind string) (int, error) {
	var n int
	err := s.db.conn.QueryRow(`SELECT COUNT(*) FROM analytics_events WHERE kind = ?`, kind).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

// DeleteOlderThan removes events created before the cutoff and reports how
// many were deleted.
func (s *EventStore) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res, err := s.db.conn.Exec(`DELETE FROM analytics_events WHERE created_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("delete events: %w", err)
	}
	return res.RowsAffected()
}

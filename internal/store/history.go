package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/developerZohab/Roman-Numeral-Converter/internal/roman"
)

// timeLayout is RFC 3339 with fixed-width nanoseconds. RFC3339Nano trims
// trailing zeros, which breaks the lexicographic-equals-chronological
// property the recency ordering relies on.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// HistoryLimit bounds how many records readers ever see.
// ReadRecent clamps its limit to this value, and Prune discards everything
// older than the newest HistoryLimit records.
const HistoryLimit = 100

// Record is one persisted conversion.
type Record struct {
	ID         string          `json:"id"`
	Input      string          `json:"input"`
	Output     string          `json:"output"`
	Direction  roman.Direction `json:"direction"`
	Historical bool            `json:"historical"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewRecord builds a Record with a fresh UUIDv7 ID and the current UTC time.
// UUIDv7 IDs are time-ordered, which keeps the (created_at, id) recency
// ordering stable even for records created in the same nanosecond.
func NewRecord(input, output string, dir roman.Direction, historical bool) Record {
	return Record{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Input:      input,
		Output:     output,
		Direction:  dir,
		Historical: historical,
		CreatedAt:  time.Now().UTC(),
	}
}

// WriteRecord inserts a conversion record.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are
// silently ignored. Other constraint violations (e.g., CHECK on direction)
// still return errors.
func (s *Store) WriteRecord(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions
		(id, input, output, direction, historical, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.Input,
		rec.Output,
		string(rec.Direction),
		rec.Historical,
		rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	return nil
}

// ReadRecent returns conversion records most recent first.
// Ordering is deterministic: created_at DESC with id DESC as tiebreak.
// The limit is clamped to [1, HistoryLimit]; pass 0 for the full bounded
// history.
//
// Returns an empty slice (not nil) when no records exist.
func (s *Store) ReadRecent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 || limit > HistoryLimit {
		limit = HistoryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input, output, direction, historical, created_at
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var (
			rec       Record
			direction string
			createdAt string
		)
		if err := rows.Scan(&rec.ID, &rec.Input, &rec.Output, &direction, &rec.Historical, &createdAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Direction = roman.Direction(direction)
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

// Prune deletes every record older than the newest HistoryLimit records.
// Returns the number of records deleted.
func (s *Store) Prune(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM conversions
		WHERE id NOT IN (
			SELECT id FROM conversions
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		)
	`, HistoryLimit)
	if err != nil {
		return 0, fmt.Errorf("prune records: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune rows affected: %w", err)
	}
	return n, nil
}

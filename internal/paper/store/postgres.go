package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"paperflow/internal/paper/models"
	"paperflow/pkg/platform/sentinel"
)

// Schema creates the papers table. Slots live in a JSONB column because they
// have no identity outside their paper; the document is read and written
// whole, matching the engine's load-mutate-persist cycle.
const Schema = `
CREATE TABLE IF NOT EXISTS papers (
	id         UUID PRIMARY KEY,
	paper_id   TEXT NOT NULL UNIQUE,
	title      TEXT NOT NULL,
	domain     TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT 'pending',
	slots      JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

const uniqueViolation = "23505"

// Postgres persists papers in PostgreSQL via database/sql.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the papers table when absent. The server and the seed
// command call this at startup instead of shipping a migration tool.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure papers schema: %w", err)
	}
	return nil
}

func (s *Postgres) Create(ctx context.Context, p *models.Paper) (*models.Paper, error) {
	stored := p.Clone()
	stored.ID = uuid.NewString()

	slots, err := json.Marshal(stored.Slots)
	if err != nil {
		return nil, fmt.Errorf("marshal slots: %w", err)
	}

	now := time.Now()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO papers (id, paper_id, title, domain, status, slots, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		stored.ID, stored.PaperID, stored.Title, stored.Domain, string(stored.Status), slots, now,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, sentinel.ErrConflict
		}
		return nil, fmt.Errorf("insert paper: %w", err)
	}
	return stored, nil
}

func (s *Postgres) FindByID(ctx context.Context, id string) (*models.Paper, error) {
	return s.findOne(ctx, `WHERE id = $1`, id)
}

func (s *Postgres) FindByPaperID(ctx context.Context, paperID string) (*models.Paper, error) {
	return s.findOne(ctx, `WHERE paper_id = $1`, paperID)
}

func (s *Postgres) List(ctx context.Context) ([]*models.Paper, error) {
	return s.list(ctx, ``)
}

func (s *Postgres) ListFullySlotted(ctx context.Context) ([]*models.Paper, error) {
	// Non-empty slot sequence with no unfilled entries; the filter runs in
	// SQL so the tracking view never hauls the whole table into memory.
	return s.list(ctx, `
		WHERE jsonb_array_length(slots) > 0
		  AND NOT EXISTS (
			SELECT 1 FROM jsonb_array_elements(slots) AS slot
			WHERE NOT COALESCE((slot->>'isFilled')::boolean, false)
		  )`)
}

func (s *Postgres) Save(ctx context.Context, p *models.Paper) (*models.Paper, error) {
	slots, err := json.Marshal(p.Slots)
	if err != nil {
		return nil, fmt.Errorf("marshal slots: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE papers
		SET title = $2, domain = $3, status = $4, slots = $5, updated_at = $6
		WHERE id = $1`,
		p.ID, p.Title, p.Domain, string(p.Status), slots, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("update paper: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update paper: %w", err)
	}
	if affected == 0 {
		return nil, sentinel.ErrNotFound
	}
	return p.Clone(), nil
}

func (s *Postgres) findOne(ctx context.Context, where string, arg any) (*models.Paper, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, paper_id, title, domain, status, slots FROM papers `+where, arg)

	p, err := scanPaper(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find paper: %w", err)
	}
	return p, nil
}

func (s *Postgres) list(ctx context.Context, where string) ([]*models.Paper, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, paper_id, title, domain, status, slots FROM papers `+where+` ORDER BY paper_id`)
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}
	defer rows.Close()

	papers := make([]*models.Paper, 0)
	for rows.Next() {
		p, err := scanPaper(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan paper: %w", err)
		}
		papers = append(papers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}
	return papers, nil
}

func scanPaper(scan func(dest ...any) error) (*models.Paper, error) {
	var p models.Paper
	var status string
	var slots []byte
	if err := scan(&p.ID, &p.PaperID, &p.Title, &p.Domain, &status, &slots); err != nil {
		return nil, err
	}
	p.Status = models.Stage(status)
	if err := json.Unmarshal(slots, &p.Slots); err != nil {
		return nil, fmt.Errorf("unmarshal slots: %w", err)
	}
	if p.Slots == nil {
		p.Slots = []models.Slot{}
	}
	return &p, nil
}

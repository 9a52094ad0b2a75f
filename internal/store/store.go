// Package store keeps job postings and their match results in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/spigell/jobfit/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	company      TEXT NOT NULL DEFAULT '',
	location     TEXT NOT NULL DEFAULT '',
	description  TEXT NOT NULL,
	requirements TEXT NOT NULL DEFAULT '[]',
	nice_to_have TEXT NOT NULL DEFAULT '[]',
	status       TEXT NOT NULL DEFAULT 'new',
	created_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS jobs_status ON jobs(status);

CREATE TABLE IF NOT EXISTS match_results (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	job_id     TEXT NOT NULL,
	score      INTEGER NOT NULL,
	reasons    TEXT NOT NULL,
	strengths  TEXT NOT NULL,
	weaknesses TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS match_results_job ON match_results(job_id);
`

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("database path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// AddJobs inserts postings that are not stored yet and returns how many were
// added. Postings without an id get a generated one.
func (s *Store) AddJobs(ctx context.Context, jobs []*model.JobPosting) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	added := 0
	for _, job := range jobs {
		if job == nil {
			continue
		}
		if strings.TrimSpace(job.ID) == "" {
			job.ID = uuid.NewString()
		}

		res, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO jobs (id, title, company, location, description, requirements, nice_to_have, status, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, job.ID, job.JobTitle, job.Company, job.Location, job.Description,
			encodeList(job.Requirements), encodeList(job.NiceToHave), model.StatusNew, s.timestamp())
		if err != nil {
			return 0, fmt.Errorf("insert job %q: %w", job.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// JobsByStatus returns the newest postings with the status. limit <= 0 means all.
func (s *Store) JobsByStatus(ctx context.Context, status string, limit int) (*model.Jobs, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, company, location, description, requirements, nice_to_have
		FROM jobs
		WHERE status = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := &model.Jobs{}
	for rows.Next() {
		var (
			job          model.JobPosting
			requirements string
			niceToHave   string
		)
		if err := rows.Scan(&job.ID, &job.JobTitle, &job.Company, &job.Location, &job.Description, &requirements, &niceToHave); err != nil {
			return nil, err
		}
		job.Requirements = decodeList(requirements)
		job.NiceToHave = decodeList(niceToHave)
		jobs.Items = append(jobs.Items, &job)
	}
	return jobs, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, jobID, status string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE jobs SET status = ? WHERE id = ?`, status, jobID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("job %q not found", jobID)
	}
	return nil
}

// SaveResult appends a match result of a run.
func (s *Store) SaveResult(ctx context.Context, runID, jobID string, result *model.MatchResult) error {
	if result == nil {
		return errors.New("result is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO match_results (run_id, job_id, score, reasons, strengths, weaknesses, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID, jobID, result.Score, encodeList(result.Reasons), encodeList(result.Strengths),
		encodeList(result.Weaknesses), s.timestamp())
	return err
}

// LatestResult returns the most recent result for a job, reporting false when none exists.
func (s *Store) LatestResult(ctx context.Context, jobID string) (*model.MatchResult, bool, error) {
	var (
		result     model.MatchResult
		reasons    string
		strengths  string
		weaknesses string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT score, reasons, strengths, weaknesses
		FROM match_results
		WHERE job_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, jobID).Scan(&result.Score, &reasons, &strengths, &weaknesses)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	result.Reasons = decodeList(reasons)
	result.Strengths = decodeList(strengths)
	result.Weaknesses = decodeList(weaknesses)
	return &result, true, nil
}

// ScoredJobIDs lists every job id with at least one stored result.
func (s *Store) ScoredJobIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT job_id FROM match_results ORDER BY job_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// timeLayout keeps fractional seconds fixed width so stored values sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timeLayout)
}

func encodeList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeList(raw string) []string {
	items := []string{}
	_ = json.Unmarshal([]byte(raw), &items)
	return items
}

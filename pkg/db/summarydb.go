package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yumyai/bgctable/pkg/model"

	_ "modernc.org/sqlite"
)

var ErrNoPath = errors.New("sqlite path is required")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	tool       TEXT NOT NULL,
	input      TEXT NOT NULL,
	started_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS gene_entries (
	run_id           TEXT NOT NULL REFERENCES runs(run_id),
	ord              INTEGER NOT NULL,
	gene_id          TEXT NOT NULL,
	gene_kind        TEXT NOT NULL,
	cluster_category TEXT NOT NULL,
	pfam_domains     TEXT NOT NULL,
	PRIMARY KEY (run_id, ord)
);
CREATE TABLE IF NOT EXISTS feature_summaries (
	run_id         TEXT NOT NULL REFERENCES runs(run_id),
	kind           TEXT NOT NULL,
	ord            INTEGER NOT NULL,
	contig_id      TEXT NOT NULL,
	start_location INTEGER NOT NULL,
	end_location   INTEGER NOT NULL,
	length         INTEGER NOT NULL,
	num_cds        INTEGER NOT NULL,
	gc_content     REAL NOT NULL,
	product        TEXT NOT NULL,
	on_contig_edge INTEGER NOT NULL,
	name           TEXT NOT NULL,
	PRIMARY KEY (run_id, kind, ord)
);
`

// Run is one invocation of a pipeline.
type Run struct {
	ID        uuid.UUID
	Tool      string
	Input     string
	StartedAt time.Time
}

func NewRun(tool, input string) Run {
	return Run{
		ID:        uuid.New(),
		Tool:      tool,
		Input:     input,
		StartedAt: time.Now().UTC(),
	}
}

// SummaryDB keeps the tables of every run in one SQLite file.
type SummaryDB struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string) (*SummaryDB, error) {

	if path == "" {
		return nil, ErrNoPath
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &SummaryDB{db: db}, nil
}

func (s *SummaryDB) Close() error {
	return s.db.Close()
}

func (s *SummaryDB) SaveRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, tool, input, started_at) VALUES (?, ?, ?, ?)`,
		run.ID.String(), run.Tool, run.Input, run.StartedAt.Format(time.RFC3339Nano))
	return err
}

// withStatement runs fn with a prepared statement inside a single transaction.
func (s *SummaryDB) withStatement(ctx context.Context, qstring string, fn func(stm *sql.Stmt) error) error {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stm, err := tx.PrepareContext(ctx, qstring)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stm.Close()

	if err := fn(stm); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (s *SummaryDB) SaveGeneEntries(ctx context.Context, runID uuid.UUID, entries []model.GeneEntry) error {

	qstring := `INSERT INTO gene_entries (run_id, ord, gene_id, gene_kind, cluster_category, pfam_domains)
		VALUES (?, ?, ?, ?, ?, ?)`

	return s.withStatement(ctx, qstring, func(stm *sql.Stmt) error {
		for i, e := range entries {
			if _, err := stm.ExecContext(ctx, runID.String(), i, e.GeneID, e.GeneKind, e.ClusterCategory, e.PfamDomains); err != nil {
				return fmt.Errorf("insert gene %s: %w", e.GeneID, err)
			}
		}
		return nil
	})
}

func (s *SummaryDB) SaveFeatureSummaries(ctx context.Context, runID uuid.UUID, kind model.FeatureKind, summaries []model.FeatureSummary) error {

	qstring := `INSERT INTO feature_summaries (run_id, kind, ord, contig_id, start_location, end_location,
		length, num_cds, gc_content, product, on_contig_edge, name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return s.withStatement(ctx, qstring, func(stm *sql.Stmt) error {
		for i, f := range summaries {
			if _, err := stm.ExecContext(ctx, runID.String(), string(kind), i, f.ContigID, f.Start, f.End,
				f.Length, f.NumCDS, f.GCContent, f.Product, f.OnContigEdge, f.Name); err != nil {
				return fmt.Errorf("insert %s %s: %w", kind, f.Name, err)
			}
		}
		return nil
	})
}

// GetRun looks a run up by id.
func (s *SummaryDB) GetRun(ctx context.Context, runID uuid.UUID) (Run, error) {

	var run Run
	var id, started string

	row := s.db.QueryRowContext(ctx,
		`SELECT run_id, tool, input, started_at FROM runs WHERE run_id == ?`, runID.String())
	if err := row.Scan(&id, &run.Tool, &run.Input, &started); err != nil {
		return Run{}, err
	}

	var err error
	if run.ID, err = uuid.Parse(id); err != nil {
		return Run{}, err
	}
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return Run{}, err
	}

	return run, nil
}

// GeneEntries returns the gene rows of a run in insertion order.
func (s *SummaryDB) GeneEntries(ctx context.Context, runID uuid.UUID) ([]model.GeneEntry, error) {

	rows, err := s.db.QueryContext(ctx,
		`SELECT gene_id, gene_kind, cluster_category, pfam_domains
		FROM gene_entries WHERE run_id == ? ORDER BY ord`, runID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.GeneEntry

	for rows.Next() {
		var e model.GeneEntry
		if err := rows.Scan(&e.GeneID, &e.GeneKind, &e.ClusterCategory, &e.PfamDomains); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// FeatureSummaries returns the rows of one kind for a run in insertion order.
func (s *SummaryDB) FeatureSummaries(ctx context.Context, runID uuid.UUID, kind model.FeatureKind) ([]model.FeatureSummary, error) {

	rows, err := s.db.QueryContext(ctx,
		`SELECT contig_id, start_location, end_location, length, num_cds, gc_content, product, on_contig_edge, name
		FROM feature_summaries WHERE run_id == ? AND kind == ? ORDER BY ord`, runID.String(), string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.FeatureSummary

	for rows.Next() {
		var f model.FeatureSummary
		if err := rows.Scan(&f.ContigID, &f.Start, &f.End, &f.Length, &f.NumCDS,
			&f.GCContent, &f.Product, &f.OnContigEdge, &f.Name); err != nil {
			return nil, err
		}
		summaries = append(summaries, f)
	}

	return summaries, rows.Err()
}

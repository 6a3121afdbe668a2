// Package db provides PostgreSQL persistence for catalog snapshots,
// analysis runs and API user accounts.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ibero-edu/microcred-recommender/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateAnalysis creates a new analysis run record and returns its ID
func (db *DB) CreateAnalysis(ctx context.Context, documentName string, docChars int) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analysis_runs (document_name, document_chars, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		documentName, docChars,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create analysis run: %w", err)
	}
	return id, nil
}

// CompleteAnalysis marks an analysis run as completed or failed
func (db *DB) CompleteAnalysis(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE analysis_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete analysis run: %w", err)
	}
	return nil
}

// SaveRecommendations stores the full recommendation set for a run as JSONB
func (db *DB) SaveRecommendations(ctx context.Context, runID uuid.UUID, rec *types.Recommendations) error {
	jsonBytes, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO recommendations (run_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (run_id) DO UPDATE SET content = $2, created_at = NOW()`,
		runID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save recommendations: %w", err)
	}
	return nil
}

// GetRecommendations retrieves the stored recommendation set for a run.
// Returns nil without error when the run has no stored results.
func (db *DB) GetRecommendations(ctx context.Context, runID uuid.UUID) (*types.Recommendations, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM recommendations WHERE run_id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recommendations: %w", err)
	}

	var rec types.Recommendations
	if err := json.Unmarshal(content, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendations: %w", err)
	}
	return &rec, nil
}

// GetAnalysis retrieves an analysis run by ID
func (db *DB) GetAnalysis(ctx context.Context, runID uuid.UUID) (*Analysis, error) {
	var run Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, document_name, document_chars, status, created_at, completed_at
		 FROM analysis_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.DocumentName, &run.DocumentChars, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis run: %w", err)
	}
	return &run, nil
}

// AnalysisFilters holds optional filters for listing analysis runs
type AnalysisFilters struct {
	Status string
	Limit  int
}

// ListAnalyses retrieves recent analysis runs with optional filters
func (db *DB) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]Analysis, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, document_name, document_chars, status, created_at, completed_at
		FROM analysis_runs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis runs: %w", err)
	}
	defer rows.Close()

	var runs []Analysis
	for rows.Next() {
		var run Analysis
		if err := rows.Scan(&run.ID, &run.DocumentName, &run.DocumentChars, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteAnalysis deletes an analysis run and its recommendations (via cascade)
func (db *DB) DeleteAnalysis(ctx context.Context, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analysis_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete analysis run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis run not found: %s", runID)
	}
	return nil
}

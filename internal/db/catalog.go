package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ibero-edu/microcred-recommender/internal/types"
)

// ReplaceCourses swaps the stored course snapshot for a fresh catalog
// import. The whole replacement runs in one transaction so readers never
// see a half-imported catalog.
func (db *DB) ReplaceCourses(ctx context.Context, courses []types.Course) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin catalog import: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE courses`); err != nil {
		return fmt.Errorf("failed to clear course snapshot: %w", err)
	}

	batch := &pgx.Batch{}
	for i, c := range courses {
		batch.Queue(
			`INSERT INTO courses
			 (position, name, partner, description, skills, core_skills,
			  domain, subdomain, difficulty, language, hours, rating, url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			i, c.Name, c.Partner, c.Description, c.Skills, c.CoreSkills,
			c.Domain, c.Subdomain, c.Difficulty, c.Language, c.Hours, c.Rating, c.URL,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert course snapshot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit catalog import: %w", err)
	}
	return nil
}

// ReplaceSpecializations swaps the stored specialization snapshot.
func (db *DB) ReplaceSpecializations(ctx context.Context, specs []types.Specialization) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin catalog import: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE specializations`); err != nil {
		return fmt.Errorf("failed to clear specialization snapshot: %w", err)
	}

	batch := &pgx.Batch{}
	for i, s := range specs {
		batch.Queue(
			`INSERT INTO specializations
			 (position, name, partners, description, domain, subdomain,
			  difficulty, type, num_courses, url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			i, s.Name, s.Partners, s.Description, s.Domain, s.Subdomain,
			s.Difficulty, s.Type, s.NumCourses, s.URL,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert specialization snapshot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit catalog import: %w", err)
	}
	return nil
}

// LoadCourses reads back the stored course snapshot in import order.
// Combined texts are rebuilt by the caller before fitting an index.
func (db *DB) LoadCourses(ctx context.Context) ([]types.Course, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, partner, description, skills, core_skills,
		        domain, subdomain, difficulty, language, hours, rating, url
		 FROM courses ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load course snapshot: %w", err)
	}
	defer rows.Close()

	var courses []types.Course
	for rows.Next() {
		var c types.Course
		if err := rows.Scan(&c.Name, &c.Partner, &c.Description, &c.Skills, &c.CoreSkills,
			&c.Domain, &c.Subdomain, &c.Difficulty, &c.Language, &c.Hours, &c.Rating, &c.URL); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, nil
}

// LoadSpecializations reads back the stored specialization snapshot in
// import order.
func (db *DB) LoadSpecializations(ctx context.Context) ([]types.Specialization, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, partners, description, domain, subdomain,
		        difficulty, type, num_courses, url
		 FROM specializations ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load specialization snapshot: %w", err)
	}
	defer rows.Close()

	var specs []types.Specialization
	for rows.Next() {
		var s types.Specialization
		if err := rows.Scan(&s.Name, &s.Partners, &s.Description, &s.Domain, &s.Subdomain,
			&s.Difficulty, &s.Type, &s.NumCourses, &s.URL); err != nil {
			return nil, fmt.Errorf("failed to scan specialization: %w", err)
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// CountCourses returns the size of the stored course snapshot
func (db *DB) CountCourses(ctx context.Context) (int, error) {
	var n int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return n, nil
}

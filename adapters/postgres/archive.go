// Package postgres archives validation reports so score history survives
// across review cycles.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"goreview/domain/review"
	"goreview/internal/errors"
)

// ArchivedReport is one stored validation run.
type ArchivedReport struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	Owner         string          `db:"owner" json:"owner"`
	AverageScore  float64         `db:"average_score" json:"average_score"`
	OverallStatus string          `db:"overall_status" json:"overall_status"`
	Report        json.RawMessage `db:"report" json:"report"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// ReviewArchive persists validation reports in PostgreSQL.
type ReviewArchive struct {
	db *sqlx.DB
}

// NewReviewArchive wraps an existing database handle.
func NewReviewArchive(db *sqlx.DB) *ReviewArchive {
	return &ReviewArchive{db: db}
}

// Connect opens the archive database and ensures its schema exists.
func Connect(databaseURL string) (*ReviewArchive, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, errors.ArchiveError("connect", err)
	}
	archive := NewReviewArchive(db)
	if err := archive.EnsureSchema(context.Background()); err != nil {
		return nil, err
	}
	return archive, nil
}

// EnsureSchema creates the report table when it is missing.
func (a *ReviewArchive) EnsureSchema(ctx context.Context) error {
	_, err := a.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS review_reports (
			id UUID PRIMARY KEY,
			owner VARCHAR(255) NOT NULL,
			average_score DECIMAL(5,1) NOT NULL,
			overall_status VARCHAR(50) NOT NULL,
			report JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	if err != nil {
		return errors.ArchiveError("schema setup", err)
	}
	return nil
}

// SaveReport stores one validation report and returns its archive id.
func (a *ReviewArchive) SaveReport(ctx context.Context, owner string, rep *review.Report) (uuid.UUID, error) {
	// UUID v7 keeps archive ids time-ordered; v4 is the compatibility fallback.
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	payload, err := json.Marshal(rep)
	if err != nil {
		return uuid.Nil, errors.ArchiveError("encode report", err)
	}

	_, err = a.db.ExecContext(ctx, `
		INSERT INTO review_reports (id, owner, average_score, overall_status, report)
		VALUES ($1, $2, $3, $4, $5)
	`, id, owner, rep.Summary.AverageScore, string(rep.Summary.OverallStatus), string(payload))
	if err != nil {
		return uuid.Nil, errors.ArchiveError("save report", err)
	}
	return id, nil
}

// ListReports returns archived runs, newest first. A non-empty owner filters
// to that owner; limit defaults to 20 when non-positive.
func (a *ReviewArchive) ListReports(ctx context.Context, owner string, limit int) ([]ArchivedReport, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, owner, average_score, overall_status, report, created_at
		FROM review_reports
	`
	args := []interface{}{}
	if owner != "" {
		query += "WHERE owner = $1\n"
		args = append(args, owner)
	}
	query += fmt.Sprintf("ORDER BY created_at DESC LIMIT $%d", len(args)+1)
	args = append(args, limit)

	reports := []ArchivedReport{}
	if err := a.db.SelectContext(ctx, &reports, query, args...); err != nil {
		return nil, errors.ArchiveError("list reports", err)
	}
	return reports, nil
}

// GetReport loads one archived run by id.
func (a *ReviewArchive) GetReport(ctx context.Context, id uuid.UUID) (*ArchivedReport, error) {
	var record ArchivedReport
	err := a.db.GetContext(ctx, &record, `
		SELECT id, owner, average_score, overall_status, report, created_at
		FROM review_reports
		WHERE id = $1
	`, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("archived report")
	}
	if err != nil {
		return nil, errors.ArchiveError("get report", err)
	}
	return &record, nil
}

// Close releases the database handle.
func (a *ReviewArchive) Close() error {
	return a.db.Close()
}

package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mkale/jobshield/internal/types"
)

// StoredAssessment is an assessment row together with its full report.
type StoredAssessment struct {
	ID            uuid.UUID
	Verdict       string
	IsFake        bool
	Confidence    float64
	Severity      string
	QualityScore  int
	QualityGrade  string
	RedFlagScore  int
	JobTitle      string
	Company       string
	CompanyDomain string
	JobPortal     string
	URL           string
	Report        types.Report
	CreatedAt     time.Time
}

// SaveAssessment stores an assessment and its flattened report.
func (db *DB) SaveAssessment(ctx context.Context, a *types.RiskAssessment, report types.Report) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO assessments
			(id, verdict, is_fake, confidence, severity, quality_score, quality_grade,
			 red_flag_score, job_title, company, company_domain, job_portal, url, report, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		a.ID, string(a.Verdict), a.IsFake, a.Confidence, string(a.Severity),
		a.QualityScore, a.QualityGrade, a.RedFlagScore,
		report.JobTitle, report.Company, report.CompanyDomain, report.JobPortal, report.URL,
		reportJSON, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}
	return nil
}

// GetAssessment retrieves one assessment by ID. Returns nil when not found.
func (db *DB) GetAssessment(ctx context.Context, id uuid.UUID) (*StoredAssessment, error) {
	var (
		s          StoredAssessment
		reportJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, verdict, is_fake, confidence, severity, quality_score, quality_grade,
		        red_flag_score, job_title, company, company_domain, job_portal, url, report, created_at
		 FROM assessments WHERE id = $1`, id,
	).Scan(&s.ID, &s.Verdict, &s.IsFake, &s.Confidence, &s.Severity, &s.QualityScore,
		&s.QualityGrade, &s.RedFlagScore, &s.JobTitle, &s.Company, &s.CompanyDomain,
		&s.JobPortal, &s.URL, &reportJSON, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	if err := json.Unmarshal(reportJSON, &s.Report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &s, nil
}

// ListAssessments returns the most recent assessments, newest first.
func (db *DB) ListAssessments(ctx context.Context, limit int) ([]*StoredAssessment, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, verdict, is_fake, confidence, severity, quality_score, quality_grade,
		        red_flag_score, job_title, company, company_domain, job_portal, url, report, created_at
		 FROM assessments ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var out []*StoredAssessment
	for rows.Next() {
		var (
			s          StoredAssessment
			reportJSON []byte
		)
		if err := rows.Scan(&s.ID, &s.Verdict, &s.IsFake, &s.Confidence, &s.Severity,
			&s.QualityScore, &s.QualityGrade, &s.RedFlagScore, &s.JobTitle, &s.Company,
			&s.CompanyDomain, &s.JobPortal, &s.URL, &reportJSON, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		if err := json.Unmarshal(reportJSON, &s.Report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assessments: %w", err)
	}
	return out, nil
}

// DeleteAssessment removes an assessment. Reports whether a row existed.
func (db *DB) DeleteAssessment(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM assessments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete assessment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

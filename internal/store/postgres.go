package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jobfit-ai/jobfit-server/internal/types"
)

// PostgresStore is a Store backed by a PostgreSQL connection pool. Parsed
// resumes, improvements and activity metadata are stored as jsonb.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the tables used by the store if they do not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			original_file_name TEXT NOT NULL,
			file_type TEXT NOT NULL,
			raw_content TEXT NOT NULL DEFAULT '',
			parsed_data JSONB,
			ats_score INTEGER NOT NULL DEFAULT 0,
			processing_status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS role_recommendations (
			id UUID PRIMARY KEY,
			resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			required_skills JSONB NOT NULL,
			fit_score INTEGER NOT NULL,
			semantic_score INTEGER NOT NULL,
			keyword_score INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tailored_resumes (
			id UUID PRIMARY KEY,
			original_resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			job_description TEXT NOT NULL,
			tailored_content JSONB NOT NULL,
			improvements JSONB NOT NULL,
			ats_score INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS activities (
			id UUID PRIMARY KEY,
			activity_type TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			metadata JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// CreateResume inserts a new resume record.
func (s *PostgresStore) CreateResume(ctx context.Context, resume *Resume) error {
	parsedJSON, err := marshalOrNil(resume.ParsedData)
	if err != nil {
		return fmt.Errorf("failed to marshal parsed data: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO resumes (id, original_file_name, file_type, raw_content, parsed_data, ats_score, processing_status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		resume.ID, resume.OriginalFileName, resume.FileType, resume.RawContent,
		parsedJSON, resume.ATSScore, resume.ProcessingStatus, resume.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

// GetResume returns the resume, or (nil, nil) when it does not exist.
func (s *PostgresStore) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, original_file_name, file_type, raw_content, parsed_data, ats_score, processing_status, created_at
		 FROM resumes WHERE id = $1`, id)

	resume, err := scanResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return resume, nil
}

// ListResumes returns all resumes, newest first.
func (s *PostgresStore) ListResumes(ctx context.Context) ([]*Resume, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, original_file_name, file_type, raw_content, parsed_data, ats_score, processing_status, created_at
		 FROM resumes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []*Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

// SetResumeStatus updates the processing status of a resume.
func (s *PostgresStore) SetResumeStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE resumes SET processing_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update resume status: %w", err)
	}
	return nil
}

// SetResumeParsed stores parsing results alongside a status transition.
func (s *PostgresStore) SetResumeParsed(ctx context.Context, id uuid.UUID, parsed *types.ParsedResume, atsScore int, status string) error {
	parsedJSON, err := marshalOrNil(parsed)
	if err != nil {
		return fmt.Errorf("failed to marshal parsed data: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`UPDATE resumes SET parsed_data = $1, ats_score = $2, processing_status = $3 WHERE id = $4`,
		parsedJSON, atsScore, status, id)
	if err != nil {
		return fmt.Errorf("failed to update parsed resume: %w", err)
	}
	return nil
}

// SetResumeScore updates the ATS score alongside a status transition.
func (s *PostgresStore) SetResumeScore(ctx context.Context, id uuid.UUID, atsScore int, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE resumes SET ats_score = $1, processing_status = $2 WHERE id = $3`,
		atsScore, status, id)
	if err != nil {
		return fmt.Errorf("failed to update resume score: %w", err)
	}
	return nil
}

// DeleteResume removes the resume. Derived rows go with it via ON DELETE
// CASCADE. Returns false when the resume did not exist.
func (s *PostgresStore) DeleteResume(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ReplaceRecommendations swaps the full recommendation set for a resume.
func (s *PostgresStore) ReplaceRecommendations(ctx context.Context, resumeID uuid.UUID, recs []types.RoleRecommendation) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM role_recommendations WHERE resume_id = $1`, resumeID); err != nil {
		return fmt.Errorf("failed to clear recommendations: %w", err)
	}
	for _, rec := range recs {
		skillsJSON, err := json.Marshal(rec.RequiredSkills)
		if err != nil {
			return fmt.Errorf("failed to marshal required skills: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO role_recommendations (id, resume_id, title, description, required_skills, fit_score, semantic_score, keyword_score)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), resumeID, rec.Title, rec.Description, skillsJSON,
			rec.FitScore, rec.SemanticScore, rec.KeywordScore,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recommendation: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// GetRecommendations returns stored recommendations ordered by fit score.
func (s *PostgresStore) GetRecommendations(ctx context.Context, resumeID uuid.UUID) ([]*RecommendationRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, resume_id, title, description, required_skills, fit_score, semantic_score, keyword_score
		 FROM role_recommendations WHERE resume_id = $1 ORDER BY fit_score DESC`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	defer rows.Close()

	var records []*RecommendationRecord
	for rows.Next() {
		var rec RecommendationRecord
		var skillsJSON []byte
		if err := rows.Scan(&rec.ID, &rec.ResumeID, &rec.Title, &rec.Description,
			&skillsJSON, &rec.FitScore, &rec.SemanticScore, &rec.KeywordScore); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		if err := json.Unmarshal(skillsJSON, &rec.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal required skills: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// CreateTailoredResume inserts a new tailoring result.
func (s *PostgresStore) CreateTailoredResume(ctx context.Context, tailored *TailoredResume) error {
	contentJSON, err := json.Marshal(tailored.TailoredContent)
	if err != nil {
		return fmt.Errorf("failed to marshal tailored content: %w", err)
	}
	improvementsJSON, err := json.Marshal(tailored.Improvements)
	if err != nil {
		return fmt.Errorf("failed to marshal improvements: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO tailored_resumes (id, original_resume_id, job_description, tailored_content, improvements, ats_score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		tailored.ID, tailored.OriginalResumeID, tailored.JobDescription,
		contentJSON, improvementsJSON, tailored.ATSScore, tailored.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create tailored resume: %w", err)
	}
	return nil
}

// GetTailoredResume returns the tailored resume, or (nil, nil) when missing.
func (s *PostgresStore) GetTailoredResume(ctx context.Context, id uuid.UUID) (*TailoredResume, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, original_resume_id, job_description, tailored_content, improvements, ats_score, created_at
		 FROM tailored_resumes WHERE id = $1`, id)

	tailored, err := scanTailoredResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tailored resume: %w", err)
	}
	return tailored, nil
}

// ListTailoredResumes returns tailoring results for a resume, newest first.
func (s *PostgresStore) ListTailoredResumes(ctx context.Context, resumeID uuid.UUID) ([]*TailoredResume, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, original_resume_id, job_description, tailored_content, improvements, ats_score, created_at
		 FROM tailored_resumes WHERE original_resume_id = $1 ORDER BY created_at DESC`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tailored resumes: %w", err)
	}
	defer rows.Close()

	var results []*TailoredResume
	for rows.Next() {
		tailored, err := scanTailoredResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tailored resume: %w", err)
		}
		results = append(results, tailored)
	}
	return results, rows.Err()
}

// CreateActivity appends an entry to the activity log.
func (s *PostgresStore) CreateActivity(ctx context.Context, activity *Activity) error {
	metadataJSON, err := marshalOrNil(activity.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal activity metadata: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO activities (id, activity_type, title, description, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		activity.ID, activity.Type, activity.Title, activity.Description,
		metadataJSON, activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// ListActivities returns the most recent activities, newest first.
func (s *PostgresStore) ListActivities(ctx context.Context, limit int) ([]*Activity, error) {
	query := `SELECT id, activity_type, title, description, metadata, created_at
		 FROM activities ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*Activity
	for rows.Next() {
		var activity Activity
		var metadataJSON []byte
		if err := rows.Scan(&activity.ID, &activity.Type, &activity.Title,
			&activity.Description, &metadataJSON, &activity.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &activity.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal activity metadata: %w", err)
			}
		}
		activities = append(activities, &activity)
	}
	return activities, rows.Err()
}

func scanResume(row pgx.Row) (*Resume, error) {
	var resume Resume
	var parsedJSON []byte
	err := row.Scan(&resume.ID, &resume.OriginalFileName, &resume.FileType,
		&resume.RawContent, &parsedJSON, &resume.ATSScore,
		&resume.ProcessingStatus, &resume.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(parsedJSON) > 0 {
		if err := json.Unmarshal(parsedJSON, &resume.ParsedData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal parsed data: %w", err)
		}
	}
	return &resume, nil
}

func scanTailoredResume(row pgx.Row) (*TailoredResume, error) {
	var tailored TailoredResume
	var contentJSON, improvementsJSON []byte
	err := row.Scan(&tailored.ID, &tailored.OriginalResumeID, &tailored.JobDescription,
		&contentJSON, &improvementsJSON, &tailored.ATSScore, &tailored.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(contentJSON, &tailored.TailoredContent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tailored content: %w", err)
	}
	if err := json.Unmarshal(improvementsJSON, &tailored.Improvements); err != nil {
		return nil, fmt.Errorf("failed to unmarshal improvements: %w", err)
	}
	return &tailored, nil
}

// marshalOrNil marshals v to JSON, mapping nil values to SQL NULL.
func marshalOrNil(v any) ([]byte, error) {
	switch val := v.(type) {
	case *types.ParsedResume:
		if val == nil {
			return nil, nil
		}
	case map[string]any:
		if val == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

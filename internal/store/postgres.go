package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/resume-targeter/internal/types"
)

// Postgres is the pgx-backed Store implementation.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ Store = (*Postgres)(nil)

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool
func (s *Postgres) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveProfile stores a canonical profile and returns its record ID.
func (s *Postgres) SaveProfile(ctx context.Context, profile *types.CanonicalProfile) (uuid.UUID, error) {
	content, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO profiles (content)
		 VALUES ($1)
		 RETURNING id`,
		content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return id, nil
}

// GetProfile retrieves a canonical profile by record ID.
func (s *Postgres) GetProfile(ctx context.Context, id uuid.UUID) (*types.CanonicalProfile, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM profiles WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}

	var profile types.CanonicalProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", id, err)
	}
	return &profile, nil
}

// SaveSelectionRun stores a selection result for a profile and returns the
// run ID.
func (s *Postgres) SaveSelectionRun(ctx context.Context, profileID uuid.UUID, jobTitle string, result *types.TargetAwareProfile) (uuid.UUID, error) {
	content, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal selection result: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO selection_runs (profile_id, job_title, content)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		profileID, jobTitle, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save selection run: %w", err)
	}
	return id, nil
}

// GetSelectionRun retrieves a selection run by ID.
func (s *Postgres) GetSelectionRun(ctx context.Context, id uuid.UUID) (*SelectionRun, error) {
	run := SelectionRun{ID: id}
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT profile_id, job_title, content, created_at
		 FROM selection_runs WHERE id = $1`,
		id,
	).Scan(&run.ProfileID, &run.JobTitle, &content, &run.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get selection run %s: %w", id, err)
	}

	if err := json.Unmarshal(content, &run.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal selection run %s: %w", id, err)
	}
	return &run, nil
}

// ListSelectionRuns retrieves all selection runs for a profile, newest first.
func (s *Postgres) ListSelectionRuns(ctx context.Context, profileID uuid.UUID) ([]SelectionRun, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, job_title, content, created_at
		 FROM selection_runs WHERE profile_id = $1
		 ORDER BY created_at DESC`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list selection runs: %w", err)
	}
	defer rows.Close()

	var runs []SelectionRun
	for rows.Next() {
		run := SelectionRun{ProfileID: profileID}
		var content []byte
		if err := rows.Scan(&run.ID, &run.JobTitle, &content, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan selection run: %w", err)
		}
		if err := json.Unmarshal(content, &run.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal selection run %s: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate selection runs: %w", err)
	}
	return runs, nil
}

package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/goprofile/internal/domain"
)

// ErrProfileNotFound is returned when no stored profile matches.
var ErrProfileNotFound = errors.New("profile not found")

// defaultListLimit caps List when no limit is given.
const defaultListLimit = 50

// StoredProfile is one persisted profiling run.
type StoredProfile struct {
	ID           string          `db:"id"            json:"id"`
	SeedURL      string          `db:"seed_url"      json:"seed_url"`
	CompanyName  string          `db:"company_name"  json:"company_name"`
	PagesCrawled int             `db:"pages_crawled" json:"pages_crawled"`
	Profile      json.RawMessage `db:"profile"       json:"profile"`
	CreatedAt    time.Time       `db:"created_at"    json:"created_at"`
}

// ProfileRepository handles database operations for stored profiles.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// EnsureSchema creates the profiles table when it does not exist yet.
func (r *ProfileRepository) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS company_profiles (
			id            UUID PRIMARY KEY,
			seed_url      TEXT NOT NULL,
			company_name  TEXT NOT NULL,
			pages_crawled INT  NOT NULL,
			profile       JSONB NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_company_profiles_seed_url
			ON company_profiles (seed_url);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure profiles schema: %w", err)
	}

	return nil
}

// Save stores one profiling result. The run ID is reused as row ID so
// re-saving the same run is idempotent.
func (r *ProfileRepository) Save(ctx context.Context, result *domain.Result) error {
	id := result.Metadata.RunID
	if id == "" {
		id = uuid.New().String()
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	query := `
		INSERT INTO company_profiles (id, seed_url, company_name, pages_crawled, profile)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			company_name  = EXCLUDED.company_name,
			pages_crawled = EXCLUDED.pages_crawled,
			profile       = EXCLUDED.profile
	`

	_, err = r.db.ExecContext(ctx, query,
		id,
		result.Identity.Website,
		result.Identity.CompanyName,
		result.Metadata.PagesCrawled,
		payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// Get retrieves one stored profile by ID.
func (r *ProfileRepository) Get(ctx context.Context, id string) (*StoredProfile, error) {
	var stored StoredProfile

	query := `
		SELECT id, seed_url, company_name, pages_crawled, profile, created_at
		FROM company_profiles
		WHERE id = $1
	`

	if err := r.db.GetContext(ctx, &stored, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &stored, nil
}

// List retrieves stored profiles, newest first.
func (r *ProfileRepository) List(ctx context.Context, limit, offset int) ([]*StoredProfile, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var profiles []*StoredProfile

	query := `
		SELECT id, seed_url, company_name, pages_crawled, profile, created_at
		FROM company_profiles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	if err := r.db.SelectContext(ctx, &profiles, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return profiles, nil
}

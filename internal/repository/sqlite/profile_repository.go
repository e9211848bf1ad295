package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"account-service/internal/domain"
	"account-service/internal/repository"
)

const createProfilesTable = `
CREATE TABLE IF NOT EXISTS profiles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	biography TEXT NOT NULL DEFAULT '',
	github TEXT NOT NULL DEFAULT '',
	linkedin TEXT NOT NULL DEFAULT '',
	users_id INTEGER NOT NULL UNIQUE REFERENCES users(id)
);
`

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProfilesTable); err != nil {
		return fmt.Errorf("create profiles table: %w", err)
	}
	return nil
}

func (r *ProfileRepository) CreateForUser(ctx context.Context, userID int64) (*domain.Profile, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO profiles (biography, github, linkedin, users_id)
VALUES ('', '', '', ?)`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("profile last insert id: %w", err)
	}
	return &domain.Profile{ID: id, UserID: userID}, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, biography, github, linkedin, users_id
FROM profiles
WHERE users_id = ?`,
		userID,
	)

	var profile domain.Profile
	if err := row.Scan(
		&profile.ID,
		&profile.Biography,
		&profile.Github,
		&profile.Linkedin,
		&profile.UserID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return &profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE profiles
SET biography = ?, github = ?, linkedin = ?
WHERE id = ?`,
		profile.Biography,
		profile.Github,
		profile.Linkedin,
		profile.ID,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profile update rows affected: %w", err)
	}
	if aff == 0 {
		return repository.ErrNotFound
	}
	return nil
}

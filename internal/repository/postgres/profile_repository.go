package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, bio, birth_date, gender, profile_picture, location,
			phone_number, preferred_gender, min_age_preference,
			max_age_preference, max_distance_km
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, is_verified, is_premium, last_active, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.Bio, profile.BirthDate, profile.Gender,
		profile.ProfilePicture, profile.Location, profile.PhoneNumber,
		profile.PreferredGender, profile.MinAgePreference,
		profile.MaxAgePreference, profile.MaxDistanceKm,
	).Scan(
		&profile.ID, &profile.IsVerified, &profile.IsPremium,
		&profile.LastActive, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrProfileAlreadyExists
	}
	return err
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Update writes every mutable field and bumps last_active: any profile
// mutation counts as activity.
func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET bio = $1, birth_date = $2, gender = $3, profile_picture = $4,
		    location = $5, phone_number = $6, preferred_gender = $7,
		    min_age_preference = $8, max_age_preference = $9,
		    max_distance_km = $10, is_premium = $11,
		    last_active = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $12
		RETURNING last_active, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.Bio, profile.BirthDate, profile.Gender, profile.ProfilePicture,
		profile.Location, profile.PhoneNumber, profile.PreferredGender,
		profile.MinAgePreference, profile.MaxAgePreference,
		profile.MaxDistanceKm, profile.IsPremium,
		profile.UserID,
	).Scan(&profile.LastActive, &profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *profileRepository) ListExcluding(ctx context.Context, userID int) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	query := `SELECT * FROM profiles WHERE user_id <> $1`
	err := r.db.SelectContext(ctx, &profiles, query, userID)
	return profiles, err
}

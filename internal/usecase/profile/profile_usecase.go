package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// CreateProfileRequest represents the onboarding payload.
type CreateProfileRequest struct {
	Bio              *string `json:"bio" binding:"omitempty,max=500"`
	BirthDate        *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Gender           string  `json:"gender" binding:"required,oneof=male female other"`
	ProfilePicture   *string `json:"profile_picture" binding:"omitempty,max=255"`
	Location         string  `json:"location" binding:"omitempty,max=100"`
	PhoneNumber      *string `json:"phone_number" binding:"omitempty,max=20"`
	PreferredGender  *string `json:"preferred_gender" binding:"omitempty,oneof=male female any"`
	MinAgePreference *int    `json:"min_age_preference" binding:"omitempty,min=18,max=100"`
	MaxAgePreference *int    `json:"max_age_preference" binding:"omitempty,min=18,max=100"`
	MaxDistanceKm    *int    `json:"max_distance_km" binding:"omitempty,min=1,max=1000"`
}

// UpdateProfileRequest represents a partial profile update.
type UpdateProfileRequest struct {
	Bio              *string `json:"bio" binding:"omitempty,max=500"`
	BirthDate        *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Gender           *string `json:"gender" binding:"omitempty,oneof=male female other"`
	ProfilePicture   *string `json:"profile_picture" binding:"omitempty,max=255"`
	Location         *string `json:"location" binding:"omitempty,max=100"`
	PhoneNumber      *string `json:"phone_number" binding:"omitempty,max=20"`
	PreferredGender  *string `json:"preferred_gender" binding:"omitempty,oneof=male female any"`
	MinAgePreference *int    `json:"min_age_preference" binding:"omitempty,min=18,max=100"`
	MaxAgePreference *int    `json:"max_age_preference" binding:"omitempty,min=18,max=100"`
	MaxDistanceKm    *int    `json:"max_distance_km" binding:"omitempty,min=1,max=1000"`
	IsPremium        *bool   `json:"is_premium"`
}

// ProfileResponse is a profile plus its completion metric.
type ProfileResponse struct {
	*domain.Profile
	CompletionPercentage float64 `json:"completion_percentage"`
}

// GetMyProfile returns the caller's own profile with its completion metric.
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID int) (*ProfileResponse, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{Profile: p, CompletionPercentage: p.CompletionPercentage()}, nil
}

// GetProfileByUserID returns another user's profile.
func (uc *ProfileUseCase) GetProfileByUserID(ctx context.Context, targetUserID int) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, targetUserID)
}

// CreateProfile creates the caller's profile during onboarding.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, userID int, req *CreateProfileRequest) (*domain.Profile, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	p := &domain.Profile{
		UserID:           userID,
		Bio:              req.Bio,
		BirthDate:        birthDate,
		Gender:           domain.Gender(req.Gender),
		ProfilePicture:   req.ProfilePicture,
		Location:         req.Location,
		PhoneNumber:      req.PhoneNumber,
		PreferredGender:  domain.PreferAny,
		MinAgePreference: 18,
		MaxAgePreference: 100,
		MaxDistanceKm:    50,
	}
	if req.PreferredGender != nil {
		p.PreferredGender = domain.GenderPreference(*req.PreferredGender)
	}
	if req.MinAgePreference != nil {
		p.MinAgePreference = *req.MinAgePreference
	}
	if req.MaxAgePreference != nil {
		p.MaxAgePreference = *req.MaxAgePreference
	}
	if req.MaxDistanceKm != nil {
		p.MaxDistanceKm = *req.MaxDistanceKm
	}

	if err := uc.profileRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProfile applies the provided fields to the caller's profile. The
// store bumps last_active on every update.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*domain.Profile, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		p.Bio = req.Bio
	}
	if req.BirthDate != nil {
		birthDate, err := parseBirthDate(req.BirthDate)
		if err != nil {
			return nil, err
		}
		p.BirthDate = birthDate
	}
	if req.Gender != nil {
		p.Gender = domain.Gender(*req.Gender)
	}
	if req.ProfilePicture != nil {
		p.ProfilePicture = req.ProfilePicture
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.PhoneNumber != nil {
		p.PhoneNumber = req.PhoneNumber
	}
	if req.PreferredGender != nil {
		p.PreferredGender = domain.GenderPreference(*req.PreferredGender)
	}
	if req.MinAgePreference != nil {
		p.MinAgePreference = *req.MinAgePreference
	}
	if req.MaxAgePreference != nil {
		p.MaxAgePreference = *req.MaxAgePreference
	}
	if req.MaxDistanceKm != nil {
		p.MaxDistanceKm = *req.MaxDistanceKm
	}
	if req.IsPremium != nil {
		p.IsPremium = *req.IsPremium
	}

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

func parseBirthDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("parse birth_date: %w", err)
	}
	return &t, nil
}

package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// GenderPreference is a filter value, not an identity: "any" disables the
// gender step of the visibility filter.
type GenderPreference string

const (
	PreferMale   GenderPreference = "male"
	PreferFemale GenderPreference = "female"
	PreferAny    GenderPreference = "any"
)

func (p GenderPreference) Valid() bool {
	switch p {
	case PreferMale, PreferFemale, PreferAny:
		return true
	}
	return false
}

// Matches reports whether a profile of the given gender passes this preference.
func (p GenderPreference) Matches(g Gender) bool {
	return p == PreferAny || string(p) == string(g)
}

type Profile struct {
	ID               int              `json:"id" db:"id"`
	UserID           int              `json:"user_id" db:"user_id"`
	Bio              *string          `json:"bio" db:"bio"`
	BirthDate        *time.Time       `json:"birth_date" db:"birth_date"`
	Gender           Gender           `json:"gender" db:"gender"`
	ProfilePicture   *string          `json:"profile_picture" db:"profile_picture"`
	Location         string           `json:"location" db:"location"`
	PhoneNumber      *string          `json:"phone_number" db:"phone_number"`
	IsVerified       bool             `json:"is_verified" db:"is_verified"`
	PreferredGender  GenderPreference `json:"preferred_gender" db:"preferred_gender"`
	MinAgePreference int              `json:"min_age_preference" db:"min_age_preference"`
	MaxAgePreference int              `json:"max_age_preference" db:"max_age_preference"`
	MaxDistanceKm    int              `json:"max_distance_km" db:"max_distance_km"`
	IsPremium        bool             `json:"is_premium" db:"is_premium"`
	LastActive       time.Time        `json:"last_active" db:"last_active"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// completionFields is the size of the fixed field set tracked by
// CompletionPercentage: bio, birth_date, gender, profile_picture, location,
// phone_number, preferred_gender.
const completionFields = 7

// CompletionPercentage returns how much of the profile is filled in, 0-100.
// Enum fields count as filled whenever they hold a valid value, so the
// defaulted preferred_gender always counts.
func (p *Profile) CompletionPercentage() float64 {
	filled := 0
	if p.Bio != nil && *p.Bio != "" {
		filled++
	}
	if p.BirthDate != nil {
		filled++
	}
	if p.Gender.Valid() {
		filled++
	}
	if p.ProfilePicture != nil && *p.ProfilePicture != "" {
		filled++
	}
	if p.Location != "" {
		filled++
	}
	if p.PhoneNumber != nil && *p.PhoneNumber != "" {
		filled++
	}
	if p.PreferredGender.Valid() {
		filled++
	}
	return float64(filled) / completionFields * 100
}

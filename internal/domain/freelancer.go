package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type FreelancerProfile struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	AvatarURL      string   `json:"avatarUrl"`
	Skills         []string `json:"skills"`
	Bio            string   `json:"bio"`
	WorkHistory    string   `json:"workHistory"`
	JobPreferences string   `json:"jobPreferences"`
	Rate           float64  `json:"rate"`
	VideoResumeURL string   `json:"videoResumeUrl,omitempty"`
}

// ProfileUpdate carries the fields an update may change. Nil pointers leave
// the stored value untouched; the update is merged into the existing document.
type ProfileUpdate struct {
	Name           *string  `json:"name,omitempty"`
	Title          *string  `json:"title,omitempty"`
	Bio            *string  `json:"bio,omitempty"`
	WorkHistory    *string  `json:"workHistory,omitempty"`
	JobPreferences *string  `json:"jobPreferences,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Rate           *float64 `json:"rate,omitempty"`
	VideoResumeURL *string  `json:"videoResumeUrl,omitempty"`
}

// Apply merges the update into the profile in place.
func (u *ProfileUpdate) Apply(p *FreelancerProfile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.WorkHistory != nil {
		p.WorkHistory = *u.WorkHistory
	}
	if u.JobPreferences != nil {
		p.JobPreferences = *u.JobPreferences
	}
	if u.Skills != nil {
		p.Skills = u.Skills
	}
	if u.Rate != nil {
		p.Rate = *u.Rate
	}
	if u.VideoResumeURL != nil {
		p.VideoResumeURL = *u.VideoResumeURL
	}
}

type FreelancerRepository interface {
	// GetByID seeds the profile from the bundled dataset on first read and
	// falls back to the bundled default when the store is unreachable.
	GetByID(ctx context.Context, id string) (*FreelancerProfile, error)
	Fetch(ctx context.Context) ([]FreelancerProfile, error)
	Update(ctx context.Context, id string, update *ProfileUpdate) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*FreelancerProfile, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*FreelancerProfile, error)
	ListFreelancers(ctx context.Context) ([]FreelancerProfile, error)
	GetFreelancer(ctx context.Context, id string) (*FreelancerProfile, error)
}

// UpdateProfileInput is the settings-form payload. Skills arrive as a single
// comma-separated string and are split into individual entries before
// persisting.
type UpdateProfileInput struct {
	Name           string  `json:"name" validate:"required,min=2"`
	Title          string  `json:"title" validate:"required,min=5"`
	Bio            string  `json:"bio" validate:"required,min=20,max=300"`
	WorkHistory    string  `json:"work_history" validate:"required,min=20"`
	JobPreferences string  `json:"job_preferences" validate:"required,min=20"`
	Skills         string  `json:"skills" validate:"required,min=2"`
	Rate           float64 `json:"rate" validate:"required,gt=0"`
	VideoResumeURL string  `json:"video_resume_url" validate:"omitempty,url"`
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	freelancerRepo domain.FreelancerRepository
	validate       *validator.Validate
}

func NewProfileUsecase(freelancerRepo domain.FreelancerRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		freelancerRepo: freelancerRepo,
		validate:       validate,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.FreelancerProfile, error) {
	return u.getByID(ctx, userID)
}

func (u *profileUsecase) GetFreelancer(ctx context.Context, id string) (*domain.FreelancerProfile, error) {
	return u.getByID(ctx, id)
}

func (u *profileUsecase) ListFreelancers(ctx context.Context) ([]domain.FreelancerProfile, error) {
	return u.freelancerRepo.Fetch(ctx)
}

// UpdateProfile validates the settings-form input, splits the comma-separated
// skills string into individual entries, merges the update into the stored
// document, and returns the freshly persisted profile.
func (u *profileUsecase) UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileInput) (*domain.FreelancerProfile, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	update := &domain.ProfileUpdate{
		Name:           &input.Name,
		Title:          &input.Title,
		Bio:            &input.Bio,
		WorkHistory:    &input.WorkHistory,
		JobPreferences: &input.JobPreferences,
		Skills:         splitSkills(input.Skills),
		Rate:           &input.Rate,
	}
	if input.VideoResumeURL != "" {
		update.VideoResumeURL = &input.VideoResumeURL
	}

	if err := u.freelancerRepo.Update(ctx, userID, update); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.StoreUnavailable(err)
	}

	return u.getByID(ctx, userID)
}

func (u *profileUsecase) getByID(ctx context.Context, id string) (*domain.FreelancerProfile, error) {
	profile, err := u.freelancerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Freelancer not found")
		}
		return nil, err
	}
	return profile, nil
}

// splitSkills turns "Go, Rust, SQL" into ["Go","Rust","SQL"], dropping empty
// entries.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

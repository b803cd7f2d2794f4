package memory

import (
	"context"
	"strings"

	"skillsync-backend/internal/domain"
	"skillsync-backend/internal/repository/seed"
)

// jobRepository serves the read-only job catalog from memory. The catalog is
// reference data; nothing in this system creates or deletes postings.
type jobRepository struct {
	jobs []domain.JobPosting
}

func NewJobRepository() domain.JobRepository {
	return &jobRepository{jobs: seed.Jobs()}
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	for _, job := range r.jobs {
		if job.ID == id {
			j := job
			return &j, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *jobRepository) Fetch(ctx context.Context) ([]domain.JobPosting, error) {
	jobs := make([]domain.JobPosting, len(r.jobs))
	copy(jobs, r.jobs)
	return jobs, nil
}

// Search filters by title, company, or any required skill, case-insensitive.
func (r *jobRepository) Search(ctx context.Context, term string) ([]domain.JobPosting, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return r.Fetch(ctx)
	}

	var matched []domain.JobPosting
	for _, job := range r.jobs {
		if strings.Contains(strings.ToLower(job.Title), term) ||
			strings.Contains(strings.ToLower(job.Company), term) ||
			anySkillContains(job.RequiredSkills, term) {
			matched = append(matched, job)
		}
	}
	return matched, nil
}

func anySkillContains(skills []string, term string) bool {
	for _, skill := range skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}

package usecase

import (
	"context"
	"sort"
	"strings"

	"skillsync-backend/internal/domain"
)

type jobUsecase struct {
	jobRepo        domain.JobRepository
	freelancerRepo domain.FreelancerRepository
	gen            domain.Generator
}

func NewJobUsecase(jobRepo domain.JobRepository, freelancerRepo domain.FreelancerRepository, gen domain.Generator) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:        jobRepo,
		freelancerRepo: freelancerRepo,
		gen:            gen,
	}
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.JobPosting, error) {
	return u.jobRepo.Fetch(ctx)
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.JobPosting, error) {
	return u.jobRepo.GetByID(ctx, id)
}

func (u *jobUsecase) SearchJobs(ctx context.Context, term string) ([]domain.JobPosting, error) {
	return u.jobRepo.Search(ctx, term)
}

// GenerateDescription drafts a posting with the model. Drafts are never
// persisted; a human re-submits them through the posting form if wanted.
func (u *jobUsecase) GenerateDescription(ctx context.Context, input domain.JobDescriptionInput) (*domain.JobDescriptionOutput, error) {
	return u.gen.GenerateJobDescription(ctx, input)
}

// RecommendJobs is the non-AI recommendation path: case-insensitive overlap
// between the freelancer's skills and each posting's required skills, ranked
// by overlap size. Postings with no shared skill are excluded.
func (u *jobUsecase) RecommendJobs(ctx context.Context, userID string) ([]domain.RecommendedJob, error) {
	freelancer, err := u.freelancerRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs, err := u.jobRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool, len(freelancer.Skills))
	for _, skill := range freelancer.Skills {
		owned[strings.ToLower(skill)] = true
	}

	var recommended []domain.RecommendedJob
	for _, job := range jobs {
		var matching []string
		for _, required := range job.RequiredSkills {
			if owned[strings.ToLower(required)] {
				matching = append(matching, required)
			}
		}
		if len(matching) > 0 {
			recommended = append(recommended, domain.RecommendedJob{Job: job, MatchingSkill: matching})
		}
	}

	sort.SliceStable(recommended, func(i, j int) bool {
		return len(recommended[i].MatchingSkill) > len(recommended[j].MatchingSkill)
	})
	return recommended, nil
}

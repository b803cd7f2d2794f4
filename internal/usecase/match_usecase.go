package usecase

import (
	"context"
	"errors"

	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"
	"skillsync-backend/pkg/logger"
)

type matchUsecase struct {
	freelancerRepo domain.FreelancerRepository
	jobRepo        domain.JobRepository
	gen            domain.Generator
}

func NewMatchUsecase(freelancerRepo domain.FreelancerRepository, jobRepo domain.JobRepository, gen domain.Generator) domain.MatchUsecase {
	return &matchUsecase{
		freelancerRepo: freelancerRepo,
		jobRepo:        jobRepo,
		gen:            gen,
	}
}

// MatchJobs asks the model for the top 3-5 postings for a freelancer, then
// cross-references every returned jobId against the catalog. Matches whose
// posting no longer exists are dropped before reaching the caller; surviving
// matches keep the model's order.
func (u *matchUsecase) MatchJobs(ctx context.Context, freelancerID string) ([]domain.MatchResult, error) {
	freelancer, err := u.freelancerRepo.GetByID(ctx, freelancerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Freelancer not found")
		}
		return nil, err
	}

	jobs, err := u.jobRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	out, err := u.gen.MatchJobs(ctx, freelancer, jobs)
	if err != nil {
		return nil, err
	}

	results := make([]domain.MatchResult, 0, len(out.MatchedJobs))
	for _, match := range out.MatchedJobs {
		job, err := u.jobRepo.GetByID(ctx, match.JobID)
		if err != nil {
			logger.Log.Warn("dropping match with unresolvable job", "jobId", match.JobID)
			continue
		}
		results = append(results, domain.MatchResult{
			JobID:  match.JobID,
			Reason: match.Reason,
			Job:    *job,
		})
	}
	return results, nil
}

package domain

import "context"

type JobPosting struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	LogoURL        string   `json:"logoUrl"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
	Budget         float64  `json:"budget"`
}

// JobRepository serves the read-only job catalog. Postings are reference
// data: new postings are only AI-drafted, never persisted.
type JobRepository interface {
	GetByID(ctx context.Context, id string) (*JobPosting, error)
	Fetch(ctx context.Context) ([]JobPosting, error)
	Search(ctx context.Context, term string) ([]JobPosting, error)
}

// RecommendedJob pairs a posting with its skill-overlap score, the non-AI
// recommendation path.
type RecommendedJob struct {
	Job           JobPosting `json:"job"`
	MatchingSkill []string   `json:"matchingSkills"`
}

type JobUsecase interface {
	ListJobs(ctx context.Context) ([]JobPosting, error)
	GetJob(ctx context.Context, id string) (*JobPosting, error)
	SearchJobs(ctx context.Context, term string) ([]JobPosting, error)
	RecommendJobs(ctx context.Context, userID string) ([]RecommendedJob, error)
	GenerateDescription(ctx context.Context, input JobDescriptionInput) (*JobDescriptionOutput, error)
}

package usecase

import (
	"context"

	"skillsync-backend/internal/domain"
)

type skillUsecase struct {
	gen domain.Generator
}

func NewSkillUsecase(gen domain.Generator) domain.SkillUsecase {
	return &skillUsecase{gen: gen}
}

// SuggestSkills is a single-shot transform with no cross-referencing step.
func (u *skillUsecase) SuggestSkills(ctx context.Context, input domain.SuggestSkillsInput) (*domain.SuggestSkillsOutput, error) {
	return u.gen.SuggestSkills(ctx, input)
}

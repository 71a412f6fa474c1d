package usecase

import (
	"context"
	"log"

	"jobboard/internal/domain/recommend"
	"jobboard/internal/repository"
)

const (
	defaultSkillSuggestLimit = 10
	maxSkillSuggestLimit     = 50
)

type SkillUsecase interface {
	Suggest(ctx context.Context, prefix string, limit int) ([]string, error)
}

// SkillSuggest completes skill names from the shared catalog. The prefix goes
// through the same normalization as stored names so "  Go" finds "go".
type SkillSuggest struct {
	skills repository.SkillCatalogRepository
	logger *log.Logger
}

func NewSkillUsecase(skills repository.SkillCatalogRepository, logger *log.Logger) *SkillSuggest {
	return &SkillSuggest{skills: skills, logger: logger}
}

func (s *SkillSuggest) Suggest(ctx context.Context, prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = defaultSkillSuggestLimit
	}
	if limit > maxSkillSuggestLimit {
		limit = maxSkillSuggestLimit
	}

	names, err := s.skills.ListSkillNames(ctx, recommend.NormalizeSkill(prefix), limit)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Skills] suggest failed prefix=%q err=%v", prefix, err)
		}
		return nil, ErrInternal
	}
	return names, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSkillCatalog struct {
	names      []string
	err        error
	lastPrefix string
	lastLimit  int
}

func (f *fakeSkillCatalog) ListSkillNames(_ context.Context, prefix string, limit int) ([]string, error) {
	f.lastPrefix = prefix
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.names, nil
}

func TestSkillSuggest_NormalizesPrefixAndClampsLimit(t *testing.T) {
	repo := &fakeSkillCatalog{names: []string{"go", "graphql"}}
	uc := NewSkillUsecase(repo, nil)

	got, err := uc.Suggest(context.Background(), "  G ", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "graphql"}, got)
	assert.Equal(t, "g", repo.lastPrefix)
	assert.Equal(t, defaultSkillSuggestLimit, repo.lastLimit)

	_, err = uc.Suggest(context.Background(), "", 500)
	require.NoError(t, err)
	assert.Equal(t, maxSkillSuggestLimit, repo.lastLimit)
}

func TestSkillSuggest_RepositoryError(t *testing.T) {
	uc := NewSkillUsecase(&fakeSkillCatalog{err: errors.New("down")}, nil)

	_, err := uc.Suggest(context.Background(), "py", 5)
	assert.ErrorIs(t, err, ErrInternal)
}

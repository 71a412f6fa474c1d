package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_SeekerProfileForMissing(t *testing.T) {
	uc := NewProfileUsecase(newFakeProfileRepo(), newFakeProfileRepo(), nil, nil)

	_, ok, err := uc.SeekerProfileFor(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProfile_SeekerProfileForError(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.err = errors.New("db down")
	uc := NewProfileUsecase(repo, repo, nil, nil)

	_, ok, err := uc.SeekerProfileFor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, ok)
}

func TestProfile_UpsertSeekerNormalizesSkills(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewProfileUsecase(repo, repo, nil, nil)
	userID := uuid.New()
	ctx := context.Background()

	saved, err := uc.UpsertSeekerProfile(ctx, userID, SeekerProfileInput{
		Location: " Jakarta ",
		Skills:   "Python,  React , python, , SQL",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jakarta", saved.Location)
	assert.Equal(t, []string{"python", "react", "sql"}, saved.Skills)

	again, err := uc.UpsertSeekerProfile(ctx, userID, SeekerProfileInput{Skills: "Go"})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)
	assert.Equal(t, []string{"go"}, again.Skills)

	p, ok, err := uc.SeekerProfileFor(ctx, userID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"go"}, p.Skills)
}

func TestProfile_UpsertEmployer(t *testing.T) {
	repo := newFakeProfileRepo()
	inv := &fakeInvalidator{}
	uc := NewProfileUsecase(repo, repo, inv, nil)
	userID := uuid.New()

	_, err := uc.UpsertEmployerProfile(context.Background(), userID, EmployerProfileInput{CompanyName: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	saved, err := uc.UpsertEmployerProfile(context.Background(), userID, EmployerProfileInput{CompanyName: " Acme "})
	require.NoError(t, err)
	assert.Equal(t, "Acme", saved.CompanyName)
	assert.Equal(t, 1, inv.calls)

	p, ok, err := uc.EmployerProfileFor(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved.ID, p.ID)
}

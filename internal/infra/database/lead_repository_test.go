package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/mini-crm/internal/entity"
)

// memStore é uma implementação em memória da porta de armazenamento, só para testes.
type memStore struct {
	slots map[string]string
}

func newMemStore() *memStore {
	return &memStore{slots: map[string]string{}}
}

func (s *memStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok := s.slots[key]
	return value, ok, nil
}

func (s *memStore) Set(ctx context.Context, key, value string) error {
	s.slots[key] = value
	return nil
}

func (s *memStore) Remove(ctx context.Context, key string) error {
	delete(s.slots, key)
	return nil
}

func newTestRepo() *LeadRepository {
	return NewLeadRepository(newMemStore(), 0)
}

func validInput() entity.LeadInput {
	return entity.LeadInput{
		LegalName: "Delta Servicos LTDA",
		CNPJ:      "11222333000181",
		City:      "Curitiba",
		State:     "PR",
		Score:     50,
		Stage:     entity.StageNew,
	}
}

func TestListSeedsWhenStoreIsEmpty(t *testing.T) {
	repo := newTestRepo()

	leads, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, leads, 3)
	// Ordenado por updatedAt decrescente: Beta (10/10) > Gamma (07/10) > Alpha (01/10).
	assert.Equal(t, "lead-beta-foods", leads[0].ID)
	assert.Equal(t, "lead-gammalog", leads[1].ID)
	assert.Equal(t, "lead-alpha-tech", leads[2].ID)
}

func TestFindByIDAbsentIsNotAnError(t *testing.T) {
	repo := newTestRepo()

	lead, err := repo.FindByID(context.Background(), "does-not-exist")

	require.NoError(t, err)
	assert.Nil(t, lead)
}

func TestCreateStampsAndPrepends(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	lead, err := repo.Create(ctx, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, lead.CreatedAt, lead.UpdatedAt)
	for _, existing := range before {
		assert.NotEqual(t, existing.ID, lead.ID)
	}

	// Recém-criado tem o updatedAt mais novo, então lidera a listagem.
	after, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, 4)
	assert.Equal(t, lead.ID, after[0].ID)
}

func TestUpdatePreservesIdentityAndMerges(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, validInput())
	require.NoError(t, err)

	newScore := 91
	newStage := entity.StageQualified
	updated, err := repo.Update(ctx, created.ID, entity.LeadPatch{
		Score: &newScore,
		Stage: &newStage,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	assert.Equal(t, 91, updated.Score)
	assert.Equal(t, entity.StageQualified, updated.Stage)
	// Campos fora do patch ficam como estavam.
	assert.Equal(t, created.LegalName, updated.LegalName)
	assert.Equal(t, created.CNPJ, updated.CNPJ)
	assert.Equal(t, created.City, updated.City)
}

func TestUpdateUnknownIDFailsAndLeavesStoreUntouched(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	score := 10
	_, err = repo.Update(ctx, "ghost", entity.LeadPatch{Score: &score})
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestResetRestoresSeed(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, validInput())
	require.NoError(t, err)

	leads, err := repo.Reset(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 3)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}

func TestCreatePersistsThroughTheStore(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	first := NewLeadRepository(store, 0)
	created, err := first.Create(ctx, validInput())
	require.NoError(t, err)

	// Outro repositório sobre o mesmo store enxerga a escrita.
	second := NewLeadRepository(store, 0)
	found, err := second.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.LegalName, found.LegalName)
}

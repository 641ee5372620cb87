package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/sbilibin2017/tcg-trading-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSetRepo struct {
	sets        map[int64]models.Set
	nextID      int64
	updatedName *string
	updatedDate *models.Date
}

func newFakeSetRepo() *fakeSetRepo {
	return &fakeSetRepo{sets: map[int64]models.Set{}, nextID: 1}
}

func (f *fakeSetRepo) List(ctx context.Context) ([]models.Set, error) {
	var out []models.Set
	for _, s := range f.sets {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSetRepo) GetByID(ctx context.Context, id int64) (*models.Set, error) {
	s, ok := f.sets[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &s, nil
}

func (f *fakeSetRepo) Create(ctx context.Context, name string, releaseDate models.Date) (int64, error) {
	id := f.nextID
	f.nextID++
	f.sets[id] = models.Set{ID: id, SetName: name, ReleaseDate: releaseDate}
	return id, nil
}

func (f *fakeSetRepo) Update(ctx context.Context, id int64, name *string, releaseDate *models.Date) error {
	s, ok := f.sets[id]
	if !ok {
		return sql.ErrNoRows
	}
	f.updatedName, f.updatedDate = name, releaseDate
	if name != nil {
		s.SetName = *name
	}
	if releaseDate != nil {
		s.ReleaseDate = *releaseDate
	}
	f.sets[id] = s
	return nil
}

func (f *fakeSetRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.sets[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.sets, id)
	return nil
}

func TestSetService(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSetRepo()
	svc := services.NewSetService(repo)

	set, err := svc.Create(ctx, models.SetCreateRequest{SetName: "Base Set", ReleaseDate: "1999-01-09"})
	require.NoError(t, err)
	assert.Equal(t, "Base Set", set.SetName)
	assert.Equal(t, "1999-01-09", set.ReleaseDate.String())

	_, err = svc.Create(ctx, models.SetCreateRequest{SetName: "Jungle", ReleaseDate: "16/06/1999"})
	assert.ErrorIs(t, err, services.ErrInvalidDate)

	t.Run("update keeps absent fields", func(t *testing.T) {
		updated, err := svc.Update(ctx, set.ID, models.SetUpdateRequest{SetName: strPtr("Base Set 2")})
		require.NoError(t, err)
		assert.Equal(t, "Base Set 2", updated.SetName)
		assert.Equal(t, "1999-01-09", updated.ReleaseDate.String())
		assert.Nil(t, repo.updatedDate)
	})

	t.Run("update parses the release date", func(t *testing.T) {
		updated, err := svc.Update(ctx, set.ID, models.SetUpdateRequest{ReleaseDate: strPtr("2000-02-24")})
		require.NoError(t, err)
		assert.Equal(t, "2000-02-24", updated.ReleaseDate.String())

		_, err = svc.Update(ctx, set.ID, models.SetUpdateRequest{ReleaseDate: strPtr("tomorrow")})
		assert.ErrorIs(t, err, services.ErrInvalidDate)
	})

	t.Run("missing set", func(t *testing.T) {
		_, err := svc.Get(ctx, 77)
		assert.EqualError(t, err, "Set with ID 77 does not exist")
		assert.ErrorIs(t, svc.Delete(ctx, 77), services.ErrNotFound)
	})

	require.NoError(t, svc.Delete(ctx, set.ID))
	sets, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sets)
}

type fakeRarityRepo struct {
	rows map[int64]string
	next int64
}

func (f *fakeRarityRepo) List(ctx context.Context) ([]models.Rarity, error) {
	var out []models.Rarity
	for id, name := range f.rows {
		out = append(out, models.Rarity{ID: id, RarityName: name})
	}
	return out, nil
}

func (f *fakeRarityRepo) GetByID(ctx context.Context, id int64) (*models.Rarity, error) {
	name, ok := f.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &models.Rarity{ID: id, RarityName: name}, nil
}

func (f *fakeRarityRepo) Create(ctx context.Context, name string) (int64, error) {
	f.next++
	f.rows[f.next] = name
	return f.next, nil
}

func (f *fakeRarityRepo) Update(ctx context.Context, id int64, name string) error {
	if _, ok := f.rows[id]; !ok {
		return sql.ErrNoRows
	}
	f.rows[id] = name
	return nil
}

func (f *fakeRarityRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.rows, id)
	return nil
}

func TestRarityService(t *testing.T) {
	ctx := context.Background()
	svc := services.NewRarityService(&fakeRarityRepo{rows: map[int64]string{}})

	rarity, err := svc.Create(ctx, "Common")
	require.NoError(t, err)
	assert.Equal(t, models.Rarity{ID: 1, RarityName: "Common"}, *rarity)

	rarity, err = svc.Update(ctx, 1, "Uncommon")
	require.NoError(t, err)
	assert.Equal(t, "Uncommon", rarity.RarityName)

	_, err = svc.Update(ctx, 2, "Rare")
	assert.EqualError(t, err, "Rarity with ID 2 does not exist")

	require.NoError(t, svc.Delete(ctx, 1))
	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

type fakeStatusRepo struct{}

func (fakeStatusRepo) List(ctx context.Context) ([]models.Status, error) {
	out := make([]models.Status, len(models.StatusNames))
	for i, name := range models.StatusNames {
		out[i] = models.Status{ID: int64(i + 1), StatusName: name}
	}
	return out, nil
}

func (fakeStatusRepo) GetByID(ctx context.Context, id int64) (*models.Status, error) {
	if id < 1 || int(id) > len(models.StatusNames) {
		return nil, sql.ErrNoRows
	}
	return &models.Status{ID: id, StatusName: models.StatusNames[id-1]}, nil
}

func (fakeStatusRepo) GetByName(ctx context.Context, name string) (*models.Status, error) {
	return nil, sql.ErrNoRows
}

func TestStatusService(t *testing.T) {
	ctx := context.Background()
	svc := services.NewStatusService(fakeStatusRepo{})

	statuses, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, statuses, 4)

	status, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, status.StatusName)

	_, err = svc.Get(ctx, 9)
	assert.EqualError(t, err, "Status with ID 9 does not exist")
}

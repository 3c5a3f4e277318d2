package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seasafety-api/internal/domain"
	"github.com/jhoicas/seasafety-api/internal/infrastructure/sqlite"
)

func newRepo(t *testing.T) *sqlite.KVRepo {
	t.Helper()
	db, err := sqlite.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	return sqlite.NewKVRepository(db)
}

func TestKVRepo_GetClaveInexistente(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.Get(context.Background(), "seasafety_inv")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKVRepo_PutSobrescribe(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Put(ctx, map[string]string{"seasafety_inv": "[]", "seasafety_mov": "[]"}))
	require.NoError(t, repo.Put(ctx, map[string]string{"seasafety_inv": `[{"id":"1"}]`}))

	inv, err := repo.Get(ctx, "seasafety_inv")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, inv)

	mov, err := repo.Get(ctx, "seasafety_mov")
	require.NoError(t, err)
	assert.Equal(t, "[]", mov)

	assert.NoError(t, repo.Ping(ctx))
}

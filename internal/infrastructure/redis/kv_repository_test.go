package redis

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seasafety-api/internal/domain"
)

// fakeStore cmdable en memoria.
type fakeStore struct {
	data  map[string]string
	msets int
}

func newFakeStore() *fakeStore { return &fakeStore{data: map[string]string{}} }

func (f *fakeStore) Ping(ctx context.Context) *goredis.StatusCmd {
	cmd := goredis.NewStatusCmd(ctx)
	cmd.SetVal("PONG")
	return cmd
}

func (f *fakeStore) Get(ctx context.Context, key string) *goredis.StringCmd {
	cmd := goredis.NewStringCmd(ctx)
	v, ok := f.data[key]
	if !ok {
		cmd.SetErr(goredis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (f *fakeStore) MSet(ctx context.Context, values ...any) *goredis.StatusCmd {
	f.msets++
	for i := 0; i+1 < len(values); i += 2 {
		f.data[values[i].(string)] = values[i+1].(string)
	}
	cmd := goredis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func TestKVRepo_ClavesConNamespace(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	repo := NewKVRepository(store)

	require.NoError(t, repo.Put(ctx, map[string]string{"seasafety_inv": "[]", "seasafety_mov": "[]"}))
	assert.Equal(t, 1, store.msets, "ambas claves se escriben en un solo MSET")
	assert.Contains(t, store.data, "seasafety:seasafety_inv")

	v, err := repo.Get(ctx, "seasafety_mov")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	_, err = repo.Get(ctx, "otra")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, repo.Ping(ctx))
}

func TestKVRepo_PutVacioNoEscribe(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, NewKVRepository(store).Put(context.Background(), nil))
	assert.Zero(t, store.msets)
}

package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aymenhafsi/electroshop/internal/models"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.SessionEntry{}))
	return NewGormStore(db)
}

func TestStoreReadYourWrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "sid", "cart")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set(ctx, "sid", "cart", []byte(`{"1":2}`)))

	value, ok, err := store.Get(ctx, "sid", "cart")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`{"1":2}`), value)
}

func TestStoreSetOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sid", "cart", []byte("old")))
	require.NoError(t, store.Set(ctx, "sid", "cart", []byte("new")))

	value, ok, err := store.Get(ctx, "sid", "cart")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("new"), value)
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sid", "cart", []byte("x")))
	require.NoError(t, store.Delete(ctx, "sid", "cart"))
	// Deleting again is a no-op.
	require.NoError(t, store.Delete(ctx, "sid", "cart"))

	_, ok, err := store.Get(ctx, "sid", "cart")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStoreKeysAreSessionScoped(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sid-a", "cart", []byte("a")))
	require.NoError(t, store.Set(ctx, "sid-b", "cart", []byte("b")))

	value, ok, err := store.Get(ctx, "sid-a", "cart")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("a"), value)

	require.NoError(t, store.Delete(ctx, "sid-a", "cart"))
	_, ok, err = store.Get(ctx, "sid-b", "cart")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	buf := []byte("hello")
	require.NoError(t, store.Set(ctx, "sid", "k", buf))
	buf[0] = 'X'

	value, ok, err := store.Get(ctx, "sid", "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("hello"), value)
}

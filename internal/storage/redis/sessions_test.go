package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/lunaroj/auth-service/internal/storage"
)

func newStorage(t *testing.T) (*Storage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	st, err := New(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st, mr
}

func TestNew_BadURL(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestNew_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := New(ctx, "redis://127.0.0.1:1")
	require.Error(t, err)
}

func TestSaveRefreshSession_SetsValueAndTTL(t *testing.T) {
	t.Parallel()

	st, mr := newStorage(t)
	ctx := context.Background()

	require.NoError(t, st.SaveRefreshSession(ctx, 42, "jti1", "alice", time.Hour))

	key := "auth:refresh:42:jti1"
	require.True(t, mr.Exists(key))

	got, err := mr.Get(key)
	require.NoError(t, err)
	require.Equal(t, "alice", got)
	require.Equal(t, time.Hour, mr.TTL(key))
}

func TestConsumeRefreshSession_GetDel(t *testing.T) {
	t.Parallel()

	st, mr := newStorage(t)
	ctx := context.Background()

	require.NoError(t, st.SaveRefreshSession(ctx, 42, "jti1", "alice", time.Hour))

	username, err := st.ConsumeRefreshSession(ctx, 42, "jti1")
	require.NoError(t, err)
	require.Equal(t, "alice", username)
	require.False(t, mr.Exists("auth:refresh:42:jti1"))

	// Повторное потребление — ErrNotFound.
	_, err = st.ConsumeRefreshSession(ctx, 42, "jti1")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestConsumeRefreshSession_Missing(t *testing.T) {
	t.Parallel()

	st, _ := newStorage(t)

	_, err := st.ConsumeRefreshSession(context.Background(), 42, "never-existed")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRefreshSession_ExpiresByTTL(t *testing.T) {
	t.Parallel()

	st, mr := newStorage(t)
	ctx := context.Background()

	require.NoError(t, st.SaveRefreshSession(ctx, 42, "jti1", "alice", time.Minute))

	mr.FastForward(time.Minute + time.Second)

	_, err := st.ConsumeRefreshSession(ctx, 42, "jti1")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteRefreshSession_Idempotent(t *testing.T) {
	t.Parallel()

	st, mr := newStorage(t)
	ctx := context.Background()

	require.NoError(t, st.SaveRefreshSession(ctx, 42, "jti1", "alice", time.Hour))
	require.NoError(t, st.DeleteRefreshSession(ctx, 42, "jti1"))
	require.False(t, mr.Exists("auth:refresh:42:jti1"))

	require.NoError(t, st.DeleteRefreshSession(ctx, 42, "jti1"))
}

func TestIndex_AddRemoveMembersExpire(t *testing.T) {
	t.Parallel()

	st, mr := newStorage(t)
	ctx := context.Background()

	require.NoError(t, st.AddToIndex(ctx, 42, "jti1"))
	require.NoError(t, st.AddToIndex(ctx, 42, "jti2"))
	require.NoError(t, st.ExpireIndex(ctx, 42, time.Hour))

	require.Equal(t, time.Hour, mr.TTL("auth:refresh:index:42"))

	members, err := st.IndexMembers(ctx, 42)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"jti1", "jti2"}, members)

	require.NoError(t, st.RemoveFromIndex(ctx, 42, "jti1"))

	members, err = st.IndexMembers(ctx, 42)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"jti2"}, members)

	// Удаление отсутствующего элемента — не ошибка.
	require.NoError(t, st.RemoveFromIndex(ctx, 42, "jti1"))
}

func TestIndexMembers_Empty(t *testing.T) {
	t.Parallel()

	st, _ := newStorage(t)

	members, err := st.IndexMembers(context.Background(), 42)
	require.NoError(t, err)
	require.Empty(t, members)
}

func TestDeleteRefreshSessions_RemovesSessionsAndIndex(t *testing.T) {
	t.Parallel()

	st, mr := newStorage(t)
	ctx := context.Background()

	for _, jti := range []string{"jti1", "jti2", "jti3"} {
		require.NoError(t, st.SaveRefreshSession(ctx, 42, jti, "alice", time.Hour))
		require.NoError(t, st.AddToIndex(ctx, 42, jti))
	}

	require.NoError(t, st.DeleteRefreshSessions(ctx, 42, []string{"jti1", "jti2", "jti3"}))

	for _, jti := range []string{"jti1", "jti2", "jti3"} {
		require.False(t, mr.Exists("auth:refresh:42:"+jti))
	}
	require.False(t, mr.Exists("auth:refresh:index:42"))
}

func TestDeleteRefreshSessions_EmptyList_StillDropsIndex(t *testing.T) {
	t.Parallel()

	st, mr := newStorage(t)
	ctx := context.Background()

	require.NoError(t, st.AddToIndex(ctx, 42, "stale"))
	require.NoError(t, st.DeleteRefreshSessions(ctx, 42, nil))
	require.False(t, mr.Exists("auth:refresh:index:42"))
}

func TestBlacklist_SetAndExpire(t *testing.T) {
	t.Parallel()

	st, mr := newStorage(t)
	ctx := context.Background()

	blacklisted, err := st.IsBlacklisted(ctx, "jti1")
	require.NoError(t, err)
	require.False(t, blacklisted)

	require.NoError(t, st.BlacklistAccess(ctx, "jti1", time.Minute))
	require.Equal(t, time.Minute, mr.TTL("auth:blacklist:jti1"))

	blacklisted, err = st.IsBlacklisted(ctx, "jti1")
	require.NoError(t, err)
	require.True(t, blacklisted)

	mr.FastForward(time.Minute + time.Second)

	blacklisted, err = st.IsBlacklisted(ctx, "jti1")
	require.NoError(t, err)
	require.False(t, blacklisted)
}

func TestSessionKeys_IsolatedPerUser(t *testing.T) {
	t.Parallel()

	st, _ := newStorage(t)
	ctx := context.Background()

	require.NoError(t, st.SaveRefreshSession(ctx, 1, "jti", "alice", time.Hour))
	require.NoError(t, st.SaveRefreshSession(ctx, 2, "jti", "bob", time.Hour))

	username, err := st.ConsumeRefreshSession(ctx, 1, "jti")
	require.NoError(t, err)
	require.Equal(t, "alice", username)

	// Сессия второго пользователя с тем же jti не затронута.
	username, err = st.ConsumeRefreshSession(ctx, 2, "jti")
	require.NoError(t, err)
	require.Equal(t, "bob", username)
}

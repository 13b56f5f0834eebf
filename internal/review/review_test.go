package review

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellbeing/internal/account"
	"wellbeing/internal/storage"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestAdd_Validation(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	_, err := s.Add(ctx, "Sam", 0, "nice site")
	require.ErrorIs(t, err, account.ErrValidation)

	_, err = s.Add(ctx, "Sam", 6, "nice site")
	require.ErrorIs(t, err, account.ErrValidation)

	_, err = s.Add(ctx, "Sam", 4, "   ")
	require.ErrorIs(t, err, account.ErrValidation)
}

func TestAdd_DefaultsAnonymous(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	r, err := s.Add(ctx, "", 5, "helped me cut my screen time")
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", r.Name)
	assert.NotEmpty(t, r.ID)
	assert.NotZero(t, r.At)
}

func TestList_NewestFirstCapped(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	for i := 1; i <= ListLimit+3; i++ {
		_, err := s.Add(ctx, fmt.Sprintf("user-%d", i), 1+(i%5), fmt.Sprintf("review #%d", i))
		require.NoError(t, err)
	}

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, ListLimit)

	// Most recent first, the oldest three dropped.
	assert.Equal(t, fmt.Sprintf("review #%d", ListLimit+3), got[0].Text)
	assert.Equal(t, "review #4", got[len(got)-1].Text)
}

func TestList_EmptyCollection(t *testing.T) {
	s := NewStore(setupDB(t))

	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

package pledge

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

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

func testAccount() *account.Account {
	return &account.Account{Name: "Sam", Email: "sam@example.com"}
}

func TestCommit_UnknownPledgeRejected(t *testing.T) {
	s := NewStore(setupDB(t))

	_, err := s.Commit(context.Background(), testAccount(), []string{"pledge-1", "pledge-99"})
	require.ErrorIs(t, err, account.ErrValidation)
}

func TestCommit_SkipsAlreadyHeld(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()
	acct := testAccount()

	created, err := s.Commit(ctx, acct, []string{"pledge-1", "pledge-2"})
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = s.Commit(ctx, acct, []string{"pledge-1", "pledge-3"})
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	mine, err := s.Mine(ctx, acct.Email)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
}

func TestCommit_IDCarriesUserPledgeAndTimestamp(t *testing.T) {
	s := NewStore(setupDB(t))
	at := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }
	ctx := context.Background()
	acct := testAccount()

	_, err := s.Commit(ctx, acct, []string{"pledge-4"})
	require.NoError(t, err)

	mine, err := s.Mine(ctx, acct.Email)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	c := mine[0]
	assert.Equal(t, "sam@example.com-pledge-4-"+strconv.FormatInt(at.UnixMilli(), 10), c.ID)
	assert.Equal(t, acct.Email, c.UserID)
	assert.Equal(t, "Sam", c.UserName)
	assert.Equal(t, StatusActive, c.Status)
	assert.NotEmpty(t, c.Title)
	assert.NotEmpty(t, c.Icon)
}

func TestMine_ActiveFirstThenNewest(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()
	acct := testAccount()

	base := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	commitAt := func(offsetHours int, id string) {
		s.now = func() time.Time { return base.Add(time.Duration(offsetHours) * time.Hour) }
		_, err := s.Commit(ctx, acct, []string{id})
		require.NoError(t, err)
	}
	commitAt(0, "pledge-1")
	commitAt(1, "pledge-2")
	commitAt(2, "pledge-3")

	mine, err := s.Mine(ctx, acct.Email)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	require.NoError(t, s.Complete(ctx, acct.Email, mine[0].ID)) // pledge-3, the newest

	mine, err = s.Mine(ctx, acct.Email)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "pledge-2", mine[0].PledgeID)
	assert.Equal(t, "pledge-1", mine[1].PledgeID)
	assert.Equal(t, "pledge-3", mine[2].PledgeID)
	assert.Equal(t, StatusCompleted, mine[2].Status)
	assert.NotNil(t, mine[2].CompletedAt)
}

func TestArchive_FreesThePledgeAndHidesIt(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()
	acct := testAccount()

	_, err := s.Commit(ctx, acct, []string{"pledge-5"})
	require.NoError(t, err)
	mine, err := s.Mine(ctx, acct.Email)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, s.Archive(ctx, acct.Email, mine[0].ID))

	mine, err = s.Mine(ctx, acct.Email)
	require.NoError(t, err)
	assert.Empty(t, mine)

	// Archiving freed the catalog pledge for a fresh commitment.
	created, err := s.Commit(ctx, acct, []string{"pledge-5"})
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestSetStatus_UnknownCommitment(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	err := s.Complete(ctx, "sam@example.com", "no-such-id")
	require.ErrorIs(t, err, account.ErrValidation)
}

func TestMine_ScopedToUser(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	_, err := s.Commit(ctx, testAccount(), []string{"pledge-1"})
	require.NoError(t, err)
	other := &account.Account{Name: "Ana", Email: "ana@example.com"}
	_, err = s.Commit(ctx, other, []string{"pledge-1", "pledge-2"})
	require.NoError(t, err)

	mine, err := s.Mine(ctx, other.Email)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, c := range mine {
		assert.Equal(t, "ana@example.com", c.UserID)
	}
}

func TestActiveDays_OneBased(t *testing.T) {
	start := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	c := Commitment{CommittedAt: start.UnixMilli()}

	assert.Equal(t, 1, c.ActiveDays(start))
	assert.Equal(t, 1, c.ActiveDays(start.Add(6*time.Hour)))
	assert.Equal(t, 2, c.ActiveDays(start.AddDate(0, 0, 1)))
	assert.Equal(t, 4, c.ActiveDays(start.AddDate(0, 0, 3)))
}

func TestAddPhoto_Validation(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	_, err := s.AddPhoto(ctx, "Sam", "", "photo.png")
	require.ErrorIs(t, err, account.ErrValidation)

	_, err = s.AddPhoto(ctx, "Sam", strings.Repeat("x", MaxPledgeTextLen+1), "photo.png")
	require.ErrorIs(t, err, account.ErrValidation)

	_, err = s.AddPhoto(ctx, "Sam", "no more doomscrolling", "notes.txt")
	require.ErrorIs(t, err, account.ErrValidation)
}

func TestAddPhoto_EncodesDataURI(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "me.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o600))

	entry, err := s.AddPhoto(ctx, "Sam", "one hour outside every day", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(entry.Photo, "data:image/png;base64,"), entry.Photo)
	assert.Equal(t, "Sam", entry.Name)

	gallery, err := s.Gallery(ctx)
	require.NoError(t, err)
	require.Len(t, gallery, 1)
	assert.Equal(t, entry.Photo, gallery[0].Photo)
}

func TestGallery_NewestFirst(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	dir := t.TempDir()
	for _, name := range []string{"a", "b"} {
		p := filepath.Join(dir, name+".jpg")
		require.NoError(t, os.WriteFile(p, []byte(name), 0o600))
		_, err := s.AddPhoto(ctx, name, "pledge by "+name, p)
		require.NoError(t, err)
	}

	gallery, err := s.Gallery(ctx)
	require.NoError(t, err)
	require.Len(t, gallery, 2)
	assert.Equal(t, "b", gallery[0].Name)
	assert.Equal(t, "a", gallery[1].Name)
}

package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yack-order/toyo-discord-bot/model"
)

func testArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func testEntry() *model.ArchiveEntry {
	return &model.ArchiveEntry{
		CardID:       "3VUr0",
		URL:          "https://yoto.io/3VUr0?g4K9YqFNigES=9ZW5Heb3yOdx0",
		Title:        "Nine Princes in Amber",
		Author:       "Roger Zelazny",
		UserID:       "auth0|6613444a01d2da29fa60312f",
		CreatorEmail: "someone@example.com",
		CreatedAt:    "2024-04-08T10:00:00Z",
	}
}

func TestOpenUnconfigured(t *testing.T) {
	_, err := Open("")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNilArchiveFailsClosed(t *testing.T) {
	var a *Archive

	_, err := a.LookupByID("3VUr0")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = a.UpsertByContentID(testEntry())
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.ErrorIs(t, a.AppendLink("u", "https://example.com"), ErrNotConfigured)
	assert.ErrorIs(t, a.AppendEmail("u", "user@example.com"), ErrNotConfigured)

	// Search is the exception: it degrades to an empty result.
	entries, err := a.SearchByText("amber")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpsertByContentIDDeduplicates(t *testing.T) {
	a := testArchive(t)

	count, err := a.UpsertByContentID(testEntry())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = a.UpsertByContentID(testEntry())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Still a single row, with the incremented count.
	entry, err := a.LookupByID("3VUr0")
	require.NoError(t, err)
	assert.Equal(t, int64(2), entry.SubmitCount)

	entries, err := a.SearchByText("amber")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpsertKeepsDescriptiveFields(t *testing.T) {
	a := testArchive(t)

	_, err := a.UpsertByContentID(testEntry())
	require.NoError(t, err)

	changed := testEntry()
	changed.Title = "Some Other Title"
	_, err = a.UpsertByContentID(changed)
	require.NoError(t, err)

	entry, err := a.LookupByID("3VUr0")
	require.NoError(t, err)
	assert.Equal(t, "Nine Princes in Amber", entry.Title)
}

func TestLookupByIDNotFound(t *testing.T) {
	a := testArchive(t)

	_, err := a.LookupByID("zzzzz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = a.LookupByID("   ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupByIDTrimsAndMatchesExactly(t *testing.T) {
	a := testArchive(t)
	_, err := a.UpsertByContentID(testEntry())
	require.NoError(t, err)

	entry, err := a.LookupByID("  3VUr0  ")
	require.NoError(t, err)
	assert.Equal(t, "Nine Princes in Amber", entry.Title)

	// Exact match only: case matters after the trim.
	_, err = a.LookupByID("3vur0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupByIDMultipleMatches(t *testing.T) {
	a := testArchive(t)

	// Rebuild the table without the primary key, mimicking an archive seeded
	// from an external dump where uniqueness was never enforced.
	_, err := a.db.Exec(`DROP TABLE myo_archive`)
	require.NoError(t, err)
	_, err = a.db.Exec(`CREATE TABLE myo_archive (
		cardId TEXT,
		url TEXT NOT NULL,
		title TEXT,
		author TEXT,
		description TEXT,
		category TEXT,
		userId TEXT,
		creatorEmail TEXT,
		duration INTEGER NOT NULL DEFAULT 0,
		fileSize INTEGER NOT NULL DEFAULT 0,
		createdAt TEXT,
		updatedAt TEXT,
		submitCount INTEGER NOT NULL DEFAULT 1,
		firstSubmittedAt INTEGER NOT NULL,
		lastSubmittedAt INTEGER NOT NULL
	)`)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = a.db.Exec(
			`INSERT INTO myo_archive (cardId, url, firstSubmittedAt, lastSubmittedAt)
			 VALUES (?, ?, 0, 0)`,
			"3VUr0", "https://yoto.io/3VUr0",
		)
		require.NoError(t, err)
	}

	_, err = a.LookupByID("3VUr0")
	assert.ErrorIs(t, err, ErrMultipleMatches)
}

func TestSearchByTextCaseInsensitive(t *testing.T) {
	a := testArchive(t)
	_, err := a.UpsertByContentID(testEntry())
	require.NoError(t, err)

	second := testEntry()
	second.CardID = "4VUr0"
	second.Title = "The Guns of Avalon"
	_, err = a.UpsertByContentID(second)
	require.NoError(t, err)

	entries, err := a.SearchByText("AMBER")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "3VUr0", entries[0].CardID)

	entries, err = a.SearchByText("")
	assert.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = a.SearchByText("no such title")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppendLinkAndEmail(t *testing.T) {
	a := testArchive(t)

	require.NoError(t, a.AppendLink("user1", "https://example.com"))
	// No de-duplication on the append path.
	require.NoError(t, a.AppendLink("user1", "https://example.com"))
	require.NoError(t, a.AppendEmail("user1", "user@example.com"))
}

func TestApplicationStatus(t *testing.T) {
	a := testArchive(t)

	_, err := a.ApplicationStatus("user1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, a.SetApplicationStatus("user1", "approved"))
	status, err := a.ApplicationStatus("user1")
	require.NoError(t, err)
	assert.Equal(t, "approved", status)

	require.NoError(t, a.SetApplicationStatus("user1", "rejected"))
	status, err = a.ApplicationStatus("user1")
	require.NoError(t, err)
	assert.Equal(t, "rejected", status)
}

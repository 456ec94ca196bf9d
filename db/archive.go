package db

import (
	"database/sql"
	"strings"
	"time"

	"github.com/yack-order/toyo-discord-bot/model"
)

// rowScanner is an interface that can be satisfied by *sql.Row or *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

const entryColumns = `cardId, url, title, author, description, category, userId, creatorEmail,
	duration, fileSize, createdAt, updatedAt, submitCount, firstSubmittedAt, lastSubmittedAt`

func scanEntry(scanner rowScanner) (*model.ArchiveEntry, error) {
	var e model.ArchiveEntry
	err := scanner.Scan(
		&e.CardID, &e.URL, &e.Title, &e.Author, &e.Description, &e.Category,
		&e.UserID, &e.CreatorEmail, &e.Duration, &e.FileSize,
		&e.CreatedAt, &e.UpdatedAt, &e.SubmitCount, &e.FirstSubmittedAt, &e.LastSubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// LookupByID returns the archive entry whose cardId exactly matches the
// trimmed id. More than one row for the same id is a data-integrity problem
// and is surfaced as ErrMultipleMatches rather than silently picking one.
func (a *Archive) LookupByID(id string) (*model.ArchiveEntry, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	rows, err := a.db.Query(`SELECT `+entryColumns+` FROM myo_archive WHERE cardId = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.ArchiveEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(entries) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return entries[0], nil
	default:
		return nil, ErrMultipleMatches
	}
}

// SearchByText returns entries whose title contains term, case-insensitively,
// newest first. An empty term or an unconfigured archive yields an empty
// result, never an error.
func (a *Archive) SearchByText(term string) ([]*model.ArchiveEntry, error) {
	if a == nil || a.db == nil {
		return nil, nil
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}

	rows, err := a.db.Query(
		`SELECT `+entryColumns+` FROM myo_archive
		 WHERE title LIKE ?
		 ORDER BY createdAt DESC LIMIT 100`,
		"%"+term+"%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.ArchiveEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UpsertByContentID inserts the entry or, when a row with the same cardId
// already exists, bumps its submitCount and lastSubmittedAt without touching
// the descriptive fields. The primary key on cardId is what makes concurrent
// submissions of the same card resolve to one insert plus increments.
// The returned count is the row's submitCount after the write: 1 means the
// entry is new.
func (a *Archive) UpsertByContentID(e *model.ArchiveEntry) (int64, error) {
	if err := a.ready(); err != nil {
		return 0, err
	}

	now := time.Now().Unix()
	var count int64
	err := a.db.QueryRow(
		`INSERT INTO myo_archive (`+entryColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
		 ON CONFLICT(cardId) DO UPDATE SET
			submitCount = submitCount + 1,
			lastSubmittedAt = excluded.lastSubmittedAt
		 RETURNING submitCount`,
		e.CardID, e.URL, e.Title, e.Author, e.Description, e.Category,
		e.UserID, e.CreatorEmail, e.Duration, e.FileSize,
		e.CreatedAt, e.UpdatedAt, now, now,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ApplicationStatus returns the archived application status for a user.
func (a *Archive) ApplicationStatus(userID string) (string, error) {
	if err := a.ready(); err != nil {
		return "", err
	}
	var status string
	err := a.db.QueryRow(`SELECT status FROM applications WHERE userId = ?`, userID).Scan(&status)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return status, nil
}

// SetApplicationStatus records or replaces a user's application status.
func (a *Archive) SetApplicationStatus(userID, status string) error {
	if err := a.ready(); err != nil {
		return err
	}
	_, err := a.db.Exec(
		`INSERT OR REPLACE INTO applications(userId, status, updatedAt) VALUES(?, ?, ?)`,
		userID, status, time.Now().Unix(),
	)
	return err
}

package db

import (
	"time"

	"github.com/google/uuid"
)

// AppendLink records a submitted URL against a user. Plain append: the same
// user may submit the same URL any number of times.
func (a *Archive) AppendLink(userID, url string) error {
	if err := a.ready(); err != nil {
		return err
	}
	_, err := a.db.Exec(
		`INSERT INTO links(id, userId, url, createdAt) VALUES(?, ?, ?, ?)`,
		uuid.NewString(), userID, url, time.Now().Unix(),
	)
	return err
}

// AppendEmail records a linked email address against a user.
func (a *Archive) AppendEmail(userID, email string) error {
	if err := a.ready(); err != nil {
		return err
	}
	_, err := a.db.Exec(
		`INSERT INTO emails(id, userId, email, createdAt) VALUES(?, ?, ?, ?)`,
		uuid.NewString(), userID, email, time.Now().Unix(),
	)
	return err
}

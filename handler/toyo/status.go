package toyo

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yack-order/toyo-discord-bot/db"
	"github.com/yack-order/toyo-discord-bot/handler"
)

const notConfiguredMsg = "The archive backend is not configured, so this command is unavailable."

// StatusHandler looks up the invoker's archive application status.
func StatusHandler(req *handler.Request) *handler.Response {
	user := handler.InvokingUser(req.Interaction)
	if user == nil {
		return handler.TextResponse("No user information on this interaction.", true)
	}

	status, err := req.Archive.ApplicationStatus(user.ID)
	switch {
	case errors.Is(err, db.ErrNotConfigured):
		return handler.TextResponse(notConfiguredMsg, true)
	case errors.Is(err, db.ErrNotFound):
		return handler.TextResponse(fmt.Sprintf("No application status found for user ID: %s", user.ID), true)
	case err != nil:
		log.Printf("status lookup failed for %s: %v", user.ID, err)
		return handler.TextResponse("There was an error querying the archive.", true)
	}
	return handler.TextResponse(fmt.Sprintf("Application Status for User ID %s: %s", user.ID, status), true)
}

// LinkEmailHandler records an email address against the invoker.
func LinkEmailHandler(req *handler.Request) *handler.Response {
	email := handler.OptionString(req.Interaction, "email")
	if email == "" || !strings.Contains(email, "@") {
		return handler.TextResponse("Please provide a valid email address. Example: `/link-email email: user@example.com`", true)
	}

	user := handler.InvokingUser(req.Interaction)
	if user == nil {
		return handler.TextResponse("No user information on this interaction.", true)
	}

	if err := req.Archive.AppendEmail(user.ID, email); err != nil {
		if errors.Is(err, db.ErrNotConfigured) {
			return handler.TextResponse(notConfiguredMsg, true)
		}
		log.Printf("error storing email for %s: %v", user.ID, err)
		return handler.TextResponse("There was an error storing the email and Discord ID.", true)
	}
	return handler.TextResponse(fmt.Sprintf("Successfully linked email: %s with Discord ID: %s", email, user.ID), true)
}

// SubmitCardHandler records a submitted card link against the invoker.
func SubmitCardHandler(req *handler.Request) *handler.Response {
	url := handler.OptionString(req.Interaction, "url")
	if url == "" || !strings.HasPrefix(url, "http") {
		return handler.TextResponse("Please provide a valid URL. Example: `/submit-card url: https://example.com`", true)
	}

	user := handler.InvokingUser(req.Interaction)
	if user == nil {
		return handler.TextResponse("No user information on this interaction.", true)
	}

	if err := req.Archive.AppendLink(user.ID, url); err != nil {
		if errors.Is(err, db.ErrNotConfigured) {
			return handler.TextResponse(notConfiguredMsg, true)
		}
		log.Printf("error storing link for %s: %v", user.ID, err)
		return handler.TextResponse("There was an error submitting the URL.", true)
	}
	return handler.TextResponse(fmt.Sprintf("Successfully submitted the URL: %s", url), true)
}

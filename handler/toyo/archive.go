package toyo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/yack-order/toyo-discord-bot/db"
	"github.com/yack-order/toyo-discord-bot/handler"
	"github.com/yack-order/toyo-discord-bot/model"
	"github.com/yack-order/toyo-discord-bot/utils"
	"github.com/yack-order/toyo-discord-bot/yoto"
)

// cardIDRe matches the 5-character alphanumeric content identifiers used as
// the archive's unique key.
var cardIDRe = regexp.MustCompile(`^[A-Za-z0-9]{5}$`)

// ArchiveLookupHandler resolves a single archive entry by exact ID.
func ArchiveLookupHandler(req *handler.Request) *handler.Response {
	id := handler.OptionString(req.Interaction, "id")
	if id == "" {
		return handler.TextResponse("Please provide an ID. Example: `/archive-lookup id: aWYV9`", true)
	}
	return lookupByID(req, id)
}

// CheckCardHandler accepts either a 5-character card ID or free text matched
// against titles.
func CheckCardHandler(req *handler.Request) *handler.Response {
	term := strings.TrimSpace(handler.OptionString(req.Interaction, "term"))
	if term == "" {
		return handler.TextResponse("Please provide a search term. Example: `/check-card term: aWYV9` or `/check-card term: MyCardTitle`", true)
	}

	if cardIDRe.MatchString(term) {
		return lookupByID(req, term)
	}
	return searchByTitle(req, term, true)
}

// MYOSearchHandler searches archived playlist titles. Results are public.
func MYOSearchHandler(req *handler.Request) *handler.Response {
	query := handler.OptionString(req.Interaction, "query")
	if query == "" {
		return handler.TextResponse("Please provide a query. Example: `/myo-search query: roger zelazny`", true)
	}
	return searchByTitle(req, query, false)
}

func lookupByID(req *handler.Request, id string) *handler.Response {
	entry, err := req.Archive.LookupByID(id)
	switch {
	case errors.Is(err, db.ErrNotConfigured):
		return handler.TextResponse(notConfiguredMsg, true)
	case errors.Is(err, db.ErrNotFound):
		return handler.TextResponse(fmt.Sprintf("No card found with ID: %s", id), true)
	case errors.Is(err, db.ErrMultipleMatches):
		return handler.TextResponse(fmt.Sprintf("Error: Multiple entries found for ID: %s. Please check the database for duplicates.", id), true)
	case err != nil:
		log.Printf("archive lookup failed for %q: %v", id, err)
		return handler.TextResponse("There was an error checking the card.", true)
	}
	return handler.TextResponse(utils.FormatMarkdown(entry.Record()), true)
}

func searchByTitle(req *handler.Request, term string, ephemeral bool) *handler.Response {
	entries, err := req.Archive.SearchByText(term)
	if err != nil {
		log.Printf("archive search failed for %q: %v", term, err)
		return handler.TextResponse("An error occurred while searching.", true)
	}

	switch len(entries) {
	case 0:
		return handler.TextResponse(fmt.Sprintf("No cards found with the title containing: %q", term), ephemeral)
	case 1:
		return handler.TextResponse(utils.FormatMarkdown(entries[0].Record()), ephemeral)
	default:
		ids := make([]string, len(entries))
		for i, e := range entries {
			ids[i] = e.CardID
		}
		content := fmt.Sprintf(
			"Multiple cards found with the title containing %q. Matching IDs:\n%s\nPlease search for one of these IDs to get detailed information.",
			term, strings.Join(ids, ", "),
		)
		return handler.TextResponse(content, ephemeral)
	}
}

// MYOSubmitHandler fetches a playlist URL and upserts it into the archive,
// keyed by its content identifier.
func MYOSubmitHandler(req *handler.Request) *handler.Response {
	submitURL := handler.OptionString(req.Interaction, "url")
	if submitURL == "" || !strings.HasPrefix(submitURL, "http") {
		return handler.TextResponse("Please provide a valid URL. Example: `/myo-submit url: https://yoto.io/hMkni?84brH2BNuhyl=e79sopPfwKnBL`", true)
	}

	card, err := yoto.FetchCard(context.Background(), nil, submitURL)
	if err != nil {
		log.Printf("error fetching card for submit %q: %v", submitURL, err)
		return handler.TextResponse("There was an error fetching the playlist page.", true)
	}

	user := handler.InvokingUser(req.Interaction)
	entry := entryFromCard(submitURL, card)
	count, err := req.Archive.UpsertByContentID(entry)
	switch {
	case errors.Is(err, db.ErrNotConfigured):
		return handler.TextResponse(notConfiguredMsg, true)
	case err != nil:
		log.Printf("error upserting card %q for %v: %v", entry.CardID, user, err)
		return handler.TextResponse("There was an error submitting the playlist.", true)
	}

	rec := model.Record{
		{Label: "Status", Value: "Added"},
		{Label: "Card_ID", Value: entry.CardID},
		{Label: "Title", Value: entry.Title},
		{Label: "Submit_Count", Value: count},
	}
	if count > 1 {
		rec[0].Value = "Duplicate"
	}
	return handler.TextResponse(utils.FormatMarkdown(rec), true)
}

// entryFromCard projects a fetched card into an archive row.
func entryFromCard(sourceURL string, card *model.Card) *model.ArchiveEntry {
	id := card.CardID
	if id == "" {
		id = cardIDFromURL(sourceURL)
	}
	return &model.ArchiveEntry{
		CardID:       id,
		URL:          sourceURL,
		Title:        card.Title,
		Author:       card.Metadata.Author,
		Description:  card.Metadata.Description,
		Category:     card.Metadata.Category,
		UserID:       card.UserID,
		CreatorEmail: card.CreatorEmail,
		Duration:     card.Metadata.Media.Duration,
		FileSize:     card.Metadata.Media.FileSize,
		CreatedAt:    card.CreatedAt,
		UpdatedAt:    card.UpdatedAt,
	}
}

// cardIDFromURL pulls the content identifier out of a share URL like
// https://yoto.io/3VUr0?g4K9YqFNigES=9ZW5Heb3yOdx0.
func cardIDFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.Trim(u.Path, "/")
}

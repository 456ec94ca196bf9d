package toyo

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yack-order/toyo-discord-bot/handler"
	"github.com/yack-order/toyo-discord-bot/model"
)

func commandRequest(name string, options map[string]interface{}) *handler.Request {
	var opts []*discordgo.ApplicationCommandInteractionDataOption
	for optName, value := range options {
		opts = append(opts, &discordgo.ApplicationCommandInteractionDataOption{Name: optName, Value: value})
	}
	return &handler.Request{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: name, Options: opts},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "42", Username: "tester"},
			},
		},
	}
}

func content(t *testing.T, resp *handler.Response) string {
	t.Helper()
	require.NotNil(t, resp)
	require.NotNil(t, resp.Reply)
	require.NotNil(t, resp.Reply.Data)
	return resp.Reply.Data.Content
}

func TestCheckCardRequiresTerm(t *testing.T) {
	resp := CheckCardHandler(commandRequest("check-card", nil))
	assert.Contains(t, content(t, resp), "Please provide a search term")
}

func TestCheckCardUnconfiguredArchiveFailsClosed(t *testing.T) {
	// Five alphanumeric characters route to the exact-ID lookup, which needs
	// the archive backend.
	resp := CheckCardHandler(commandRequest("check-card", map[string]interface{}{"term": "aWYV9"}))
	assert.Contains(t, content(t, resp), "not configured")
}

func TestCheckCardTitleSearchWithoutBackendIsEmptyResult(t *testing.T) {
	resp := CheckCardHandler(commandRequest("check-card", map[string]interface{}{"term": "frog and toad"}))
	assert.Contains(t, content(t, resp), "No cards found with the title containing")
}

func TestArchiveLookupRequiresID(t *testing.T) {
	resp := ArchiveLookupHandler(commandRequest("archive-lookup", nil))
	assert.Contains(t, content(t, resp), "Please provide an ID")
}

func TestMYOSubmitRejectsBadURL(t *testing.T) {
	resp := MYOSubmitHandler(commandRequest("myo-submit", map[string]interface{}{"url": "not-a-url"}))
	assert.Contains(t, content(t, resp), "Please provide a valid URL")
}

func TestLinkEmailValidation(t *testing.T) {
	resp := LinkEmailHandler(commandRequest("link-email", map[string]interface{}{"email": "nope"}))
	assert.Contains(t, content(t, resp), "valid email address")
}

func TestSubmitCardValidation(t *testing.T) {
	resp := SubmitCardHandler(commandRequest("submit-card", map[string]interface{}{"url": "ftp://x"}))
	assert.Contains(t, content(t, resp), "valid URL")
}

func TestEntryFromCard(t *testing.T) {
	card := &model.Card{
		CardID:       "3VUr0",
		Title:        "Nine Princes in Amber",
		UserID:       "auth0|abc",
		CreatorEmail: "someone@example.com",
		Metadata: model.CardMetadata{
			Author: "Roger Zelazny",
			Media:  model.CardMedia{Duration: 3725, FileSize: 1048576},
		},
	}

	entry := entryFromCard("https://yoto.io/3VUr0?g4K9YqFNigES=9ZW5Heb3yOdx0", card)

	assert.Equal(t, "3VUr0", entry.CardID)
	assert.Equal(t, "Roger Zelazny", entry.Author)
	assert.Equal(t, int64(3725), entry.Duration)
}

func TestEntryFromCardDerivesIDFromURL(t *testing.T) {
	entry := entryFromCard("https://yoto.io/hMkni?84brH2BNuhyl=e79sopPfwKnBL", &model.Card{Title: "Untitled"})
	assert.Equal(t, "hMkni", entry.CardID)
}

func TestStatusWithoutBackend(t *testing.T) {
	resp := StatusHandler(commandRequest("status", nil))
	assert.Contains(t, content(t, resp), "not configured")
}

package yoto

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/yack-order/toyo-discord-bot/model"
)

// cardEnvelope is the shape yoto.io serves when asked for JSON directly.
type cardEnvelope struct {
	Card *model.Card `json:"card"`
}

// FetchCard retrieves the card behind a playlist URL. The endpoint serves the
// card JSON directly under content negotiation; older snapshots embed it in
// the page's __NEXT_DATA__ block instead, so both shapes are accepted. When
// neither works the latest Wayback snapshot is tried exactly once before
// giving up.
func FetchCard(ctx context.Context, client *http.Client, url string) (*model.Card, error) {
	if client == nil {
		client = http.DefaultClient
	}

	target := url
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt == 1 {
			snapshot, err := WaybackURL(ctx, client, url)
			if err != nil {
				return nil, lastErr
			}
			target = snapshot
		}

		card, err := fetchCardOnce(ctx, client, target)
		if err == nil {
			return card, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func fetchCardOnce(ctx context.Context, client *http.Client, url string) (*model.Card, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope cardEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Card != nil {
		return envelope.Card, nil
	}

	data, err := extractNextData(body)
	if err != nil {
		return nil, err
	}
	if data.Props.PageProps.Card == nil {
		return nil, ErrNoJSON
	}
	return data.Props.PageProps.Card, nil
}

// ReadPlaylistMetadata fetches a playlist URL and projects the card into an
// ordered display record.
func ReadPlaylistMetadata(ctx context.Context, client *http.Client, url string) (model.Record, error) {
	card, err := FetchCard(ctx, client, url)
	if err != nil {
		return nil, err
	}
	return PlaylistRecord(url, card), nil
}

// PlaylistRecord projects a card into the fields the playlist command shows.
func PlaylistRecord(url string, card *model.Card) model.Record {
	return model.Record{
		{Label: "Title", Value: fmt.Sprintf("[%s](%s) ", card.Title, card.Metadata.Cover.ImageL)},
		{Label: "Author", Value: orDash(card.Metadata.Author)},
		{Label: "Category", Value: orDash(card.Metadata.Category)},
		{Label: "Officiality", Value: Officiality(url, card)},
		{Label: "Is_MYO_Card", Value: IsMYOCard(card)},
		{Label: "Created_At", Value: orDash(card.CreatedAt)},
		{Label: "Updated_At", Value: orDash(card.UpdatedAt)},
		{Label: "File_Size", Value: FormatFileSize(card.Metadata.Media.FileSize)},
		{Label: "Duration", Value: FormatDuration(card.Metadata.Media.Duration)},
		{Label: "Share_Link_Created_At", Value: orDash(card.Sharing.ShareLinkCreatedAt)},
		{Label: "Share_Count", Value: orDashInt(card.Sharing.ShareCount)},
		{Label: "Share_Limit", Value: orDashInt(card.Sharing.ShareLimit)},
		{Label: "Description", Value: orDash(card.Metadata.Description)},
	}
}

// TrackURLs lists every track link as "chapter-track: [get](url)".
func TrackURLs(card *model.Card) []string {
	var lines []string
	for ci, chapter := range card.Content.Chapters {
		for ti, track := range chapter.Tracks {
			if track.TrackURL == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("%d-%d: [get](%s)", ci, ti, track.TrackURL))
		}
	}
	if len(lines) == 0 {
		return []string{"No track URLs found"}
	}
	return lines
}

// IconURLs lists every track icon, falling back to the chapter icon when a
// track has none of its own.
func IconURLs(card *model.Card) []string {
	var lines []string
	for ci, chapter := range card.Content.Chapters {
		if chapter.Display == nil {
			continue
		}
		for ti, track := range chapter.Tracks {
			icon := chapter.Display.Icon16x16
			if track.Display != nil && track.Display.Icon16x16 != "" {
				icon = track.Display.Icon16x16
			}
			lines = append(lines, fmt.Sprintf("%d-%d: <%s>", ci, ti, icon))
		}
	}
	if len(lines) == 0 {
		return []string{"No track URLs found"}
	}
	return lines
}

// FormatDuration renders seconds as H:MM:SS, or M:SS under an hour. Zero and
// absent are indistinguishable upstream, so both render as "Not found".
func FormatDuration(seconds int64) string {
	if seconds == 0 {
		return "Not found"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// FormatFileSize renders bytes as MB with two decimals; zero or absent is
// "0 MB".
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 MB"
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func orDashInt(n int64) interface{} {
	if n == 0 {
		return "-"
	}
	return n
}

package toyo

import (
	"context"
	"log"
	"strings"

	"github.com/yack-order/toyo-discord-bot/handler"
	"github.com/yack-order/toyo-discord-bot/utils"
	"github.com/yack-order/toyo-discord-bot/yoto"
)

const playlistUsage = "Please provide a valid URL. Example: `/yoto-playlist url: https://yoto.io/hMkni?84brH2BNuhyl=e79sopPfwKnBL`"

// YotoPlaylistHandler fetches playlist metadata. Replies are ephemeral unless
// the caller passes show:true, since the share URL itself is a secret.
func YotoPlaylistHandler(req *handler.Request) *handler.Response {
	url := handler.OptionString(req.Interaction, "url")
	if url == "" || !strings.HasPrefix(url, "http") {
		return handler.TextResponse(playlistUsage, true)
	}

	show, _ := handler.OptionBool(req.Interaction, "show")

	rec, err := yoto.ReadPlaylistMetadata(context.Background(), nil, url)
	if err != nil {
		log.Printf("error reading playlist %q: %v", url, err)
		return handler.TextResponse("There was an error fetching data from the playlist page.", true)
	}
	return handler.TextResponse(utils.FormatMarkdown(rec), !show)
}

// ExtractAudioHandler lists the track links of a playlist.
func ExtractAudioHandler(req *handler.Request) *handler.Response {
	url := handler.OptionString(req.Interaction, "url")
	if url == "" || !strings.HasPrefix(url, "http") {
		return handler.TextResponse(playlistUsage, true)
	}

	card, err := yoto.FetchCard(context.Background(), nil, url)
	if err != nil {
		log.Printf("error reading playlist %q: %v", url, err)
		return handler.TextResponse("There was an error fetching data from the playlist page.", true)
	}
	return handler.TextResponse(utils.FormatLines(yoto.TrackURLs(card)), true)
}

// ExtractIconsHandler lists the icon links of a playlist.
func ExtractIconsHandler(req *handler.Request) *handler.Response {
	url := handler.OptionString(req.Interaction, "url")
	if url == "" || !strings.HasPrefix(url, "http") {
		return handler.TextResponse(playlistUsage, true)
	}

	card, err := yoto.FetchCard(context.Background(), nil, url)
	if err != nil {
		log.Printf("error reading playlist %q: %v", url, err)
		return handler.TextResponse("There was an error fetching data from the playlist page.", true)
	}
	return handler.TextResponse(utils.FormatLines(yoto.IconURLs(card)), true)
}

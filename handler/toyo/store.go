package toyo

import (
	"context"
	"log"
	"strings"

	"github.com/yack-order/toyo-discord-bot/handler"
	"github.com/yack-order/toyo-discord-bot/utils"
	"github.com/yack-order/toyo-discord-bot/yoto"
)

// YotoStoreHandler fetches a storefront product page. The fetch can take two
// sequential round trips (live page, then the Wayback fallback), which can
// blow Discord's synchronous reply budget, so the reply is deferred and the
// content arrives as a follow-up.
func YotoStoreHandler(req *handler.Request) *handler.Response {
	url := handler.OptionString(req.Interaction, "url")
	if url == "" || !strings.HasPrefix(url, "http") {
		return handler.TextResponse("Please provide a valid URL. Example: `/yoto-store url: https://us.yotoplay.com/products/frog-and-toad-audio-collection`", true)
	}
	// Follow-up delivery needs the bot token. Without it a deferred reply
	// would acknowledge and then never arrive, so fail up front instead.
	if req.Cfg == nil || req.Cfg.BotToken == "" {
		return handler.TextResponse("The bot token is not configured, so this command is unavailable.", true)
	}

	return handler.DeferredResponse(false, func() string {
		rec, err := yoto.ReadStoreData(context.Background(), nil, url)
		if err != nil {
			log.Printf("error reading store page %q: %v", url, err)
			return "There was an error fetching data from the store page."
		}

		markdown := utils.FormatMarkdown(rec)
		first, rest := utils.SplitMarkdown(markdown)
		if rest != "" {
			// Only one message fits in the follow-up; flag the cut.
			first += "\n***ERR: Truncated message***"
		}
		return first
	})
}

package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// handleDev mirrors a slash command over unauthenticated GET for manual
// testing: query parameters become command options and the reply JSON is
// returned directly. Deferred handlers run synchronously here so the output
// is visible in the browser. Not meant for production traffic.
func (rt *Router) handleDev(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(r.PathValue("command"))
	rec, ok := commandHandlers[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Unknown command: " + name})
		return
	}

	interaction := syntheticInteraction(rec.Definition, r.URL.Query())
	resp := Dispatch(&Request{Cfg: rt.cfg, Archive: rt.archive, Interaction: interaction})

	if resp.Followup != nil {
		writeJSON(w, http.StatusOK, map[string]string{"content": resp.Followup()})
		return
	}
	writeJSON(w, http.StatusOK, resp.Reply)
}

// syntheticInteraction builds a fake command invocation from query
// parameters, typed according to the command's option schema.
func syntheticInteraction(definition *discordgo.ApplicationCommand, query url.Values) *discordgo.Interaction {
	var options []*discordgo.ApplicationCommandInteractionDataOption
	for _, opt := range definition.Options {
		raw := query.Get(opt.Name)
		if raw == "" {
			continue
		}
		value := interface{}(raw)
		if opt.Type == discordgo.ApplicationCommandOptionBoolean {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				continue
			}
			value = b
		}
		options = append(options, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  opt.Name,
			Type:  opt.Type,
			Value: value,
		})
	}

	userID := query.Get("user")
	if userID == "" {
		userID = "dev"
	}

	return &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    definition.Name,
			Options: options,
		},
		Member: &discordgo.Member{
			User: &discordgo.User{ID: userID, Username: "dev"},
		},
	}
}

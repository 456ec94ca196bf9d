package toyo

import (
	"fmt"
	"strings"

	"github.com/yack-order/toyo-discord-bot/handler"
)

// PingHandler handles the /ping command.
func PingHandler(_ *handler.Request) *handler.Response {
	return handler.TextResponse("Pong!", false)
}

// UserHandler replies with the invoker's identity.
func UserHandler(req *handler.Request) *handler.Response {
	user := handler.InvokingUser(req.Interaction)
	if user == nil {
		return handler.TextResponse("No user information on this interaction.", true)
	}
	nick := ""
	if req.Interaction.Member != nil {
		nick = req.Interaction.Member.Nick
	}
	content := fmt.Sprintf("username: %s\nid: %s\nnickname: %s", user.Username, user.ID, nick)
	return handler.TextResponse(content, false)
}

// InviteHandler replies with the OAuth URL that adds the bot to a server.
func InviteHandler(req *handler.Request) *handler.Response {
	appID := ""
	if req.Cfg != nil {
		appID = req.Cfg.ApplicationID
	}
	url := fmt.Sprintf("https://discord.com/oauth2/authorize?client_id=%s&scope=applications.commands", appID)
	return handler.TextResponse(url, true)
}

// HelpHandler lists every registered command with its options.
func HelpHandler(_ *handler.Request) *handler.Response {
	var b strings.Builder
	b.WriteString("## Available Commands:\n\n")

	for _, definition := range handler.Commands() {
		fmt.Fprintf(&b, "**/%s**\n", definition.Name)
		fmt.Fprintf(&b, "  *Description*: %s\n", definition.Description)
		if len(definition.Options) > 0 {
			b.WriteString("  *Options*:\n")
			for _, opt := range definition.Options {
				required := "No"
				if opt.Required {
					required = "Yes"
				}
				fmt.Fprintf(&b, "    - `%s`: %s (Required: %s)\n", opt.Name, opt.Description, required)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Notes:\n")
	b.WriteString("- Commands are generally ephemeral by default, meaning only you see the response, unless specified otherwise (e.g., `show: true` option).\n")

	return handler.TextResponse(b.String(), true)
}

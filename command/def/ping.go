package def

import "github.com/bwmarrin/discordgo"

var PingCommand = &discordgo.ApplicationCommand{
	Name:        "ping",
	Description: "Replies with Pong!",
}

var UserCommand = &discordgo.ApplicationCommand{
	Name:        "user",
	Description: "Replies with user info.",
}

var InviteCommand = &discordgo.ApplicationCommand{
	Name:        "invite",
	Description: "Get an invite link to add the bot to your server",
}

var HelpCommand = &discordgo.ApplicationCommand{
	Name:        "help",
	Description: "Displays information about all available commands.",
}

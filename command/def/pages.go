package def

import "github.com/bwmarrin/discordgo"

var YotoStoreCommand = &discordgo.ApplicationCommand{
	Name:        "yoto-store",
	Description: "Get info from the store page. Note: May have geo limits.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "url",
			Description: "URL of the store page. e.g.: https://us.yotoplay.com/products/frog-and-toad-audio-collection",
			Required:    true,
		},
	},
}

var YotoPlaylistCommand = &discordgo.ApplicationCommand{
	Name:        "yoto-playlist",
	Description: "Get info from a playlist URL.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "url",
			Description: "URL of the playlist page. e.g.: https://yoto.io/hMkni?84brH2BNuhyl=e79sopPfwKnBL",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "show",
			Description: "Share response with the channel? Note: This means the URL is public.",
			Required:    false,
		},
	},
}

var ExtractAudioCommand = &discordgo.ApplicationCommand{
	Name:        "extract-audio",
	Description: "Get track links from a playlist URL.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "url",
			Description: "URL of the playlist page. e.g.: https://yoto.io/hMkni?84brH2BNuhyl=e79sopPfwKnBL",
			Required:    true,
		},
	},
}

var ExtractIconsCommand = &discordgo.ApplicationCommand{
	Name:        "extract-icons",
	Description: "Get icon files from a playlist URL.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "url",
			Description: "URL of the playlist page. e.g.: https://yoto.io/hMkni?84brH2BNuhyl=e79sopPfwKnBL",
			Required:    true,
		},
	},
}

package def

import "github.com/bwmarrin/discordgo"

var ArchiveLookupCommand = &discordgo.ApplicationCommand{
	Name:        "archive-lookup",
	Description: "Query the TOYO Card DB for a specific ID and return known metadata about it.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID of the card or store item. e.g.: 12345 or aWYV9",
			Required:    true,
		},
	},
}

var CheckCardCommand = &discordgo.ApplicationCommand{
	Name:        "check-card",
	Description: "Check the Card DB by 5-character ID or by words from the title.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "term",
			Description: "Card ID (e.g. aWYV9) or part of a title.",
			Required:    true,
		},
	},
}

var MYOSearchCommand = &discordgo.ApplicationCommand{
	Name:        "myo-search",
	Description: "Search the archive of MYO playlists.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "query",
			Description: "Part of a playlist title to search for. e.g.: \"roger zelazny\"",
			Required:    true,
		},
	},
}

var MYOSubmitCommand = &discordgo.ApplicationCommand{
	Name:        "myo-submit",
	Description: "Submit a new MYO playlist to the archive.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "url",
			Description: "URL of the playlist page. e.g.: https://yoto.io/hMkni?84brH2BNuhyl=e79sopPfwKnBL",
			Required:    true,
		},
	},
}

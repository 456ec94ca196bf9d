package def

import "github.com/bwmarrin/discordgo"

var StatusCommand = &discordgo.ApplicationCommand{
	Name:        "status",
	Description: "Look up your archive application status.",
}

var LinkEmailCommand = &discordgo.ApplicationCommand{
	Name:        "link-email",
	Description: "Link an email address to your Discord account.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "email",
			Description: "Email address to link. e.g.: user@example.com",
			Required:    true,
		},
	},
}

var SubmitCardCommand = &discordgo.ApplicationCommand{
	Name:        "submit-card",
	Description: "Submit a card link for archival.",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "url",
			Description: "URL of the card. e.g.: https://yoto.io/hMkni?84brH2BNuhyl=e79sopPfwKnBL",
			Required:    true,
		},
	},
}

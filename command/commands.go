package command

import (
	"github.com/yack-order/toyo-discord-bot/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.PingCommand,
	def.UserCommand,
	def.InviteCommand,
	def.HelpCommand,
	def.StatusCommand,
	def.LinkEmailCommand,
	def.SubmitCardCommand,
	def.ArchiveLookupCommand,
	def.CheckCardCommand,
	def.MYOSearchCommand,
	def.MYOSubmitCommand,
	def.YotoStoreCommand,
	def.YotoPlaylistCommand,
	def.ExtractAudioCommand,
	def.ExtractIconsCommand,
}

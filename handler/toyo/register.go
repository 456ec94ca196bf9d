package toyo

import (
	"github.com/yack-order/toyo-discord-bot/command/def"
	"github.com/yack-order/toyo-discord-bot/handler"
)

// RegisterHandlers wires every command definition to its handler. Call once
// at startup, before the router starts serving.
func RegisterHandlers() {
	handler.AddCommandHandler(def.PingCommand, PingHandler)
	handler.AddCommandHandler(def.UserCommand, UserHandler)
	handler.AddCommandHandler(def.InviteCommand, InviteHandler)
	handler.AddCommandHandler(def.HelpCommand, HelpHandler)
	handler.AddCommandHandler(def.StatusCommand, StatusHandler)
	handler.AddCommandHandler(def.LinkEmailCommand, LinkEmailHandler)
	handler.AddCommandHandler(def.SubmitCardCommand, SubmitCardHandler)
	handler.AddCommandHandler(def.ArchiveLookupCommand, ArchiveLookupHandler)
	handler.AddCommandHandler(def.CheckCardCommand, CheckCardHandler)
	handler.AddCommandHandler(def.MYOSearchCommand, MYOSearchHandler)
	handler.AddCommandHandler(def.MYOSubmitCommand, MYOSubmitHandler)
	handler.AddCommandHandler(def.YotoStoreCommand, YotoStoreHandler)
	handler.AddCommandHandler(def.YotoPlaylistCommand, YotoPlaylistHandler)
	handler.AddCommandHandler(def.ExtractAudioCommand, ExtractAudioHandler)
	handler.AddCommandHandler(def.ExtractIconsCommand, ExtractIconsHandler)
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/yack-order/toyo-discord-bot/command"
	"github.com/yack-order/toyo-discord-bot/config"
	"github.com/yack-order/toyo-discord-bot/db"
	"github.com/yack-order/toyo-discord-bot/handler"
	"github.com/yack-order/toyo-discord-bot/handler/toyo"
)

func main() {
	register := flag.Bool("register", false, "register the global command set with Discord and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	if *register {
		if err := registerCommands(cfg); err != nil {
			log.Fatalf("Cannot register commands: %v", err)
		}
		fmt.Printf("Registered %d commands.\n", len(command.AllCommands))
		return
	}

	archive, err := db.Open(cfg.ArchivePath)
	if err != nil {
		if errors.Is(err, db.ErrNotConfigured) {
			// Archive commands fail closed with an explanation instead.
			log.Println("Warning: ARCHIVE_DB_PATH not set; archive commands are disabled")
		} else {
			log.Fatalf("Failed to open archive database: %v", err)
		}
	}
	defer archive.Close()

	toyo.RegisterHandlers()

	router := handler.New(cfg, archive)
	fmt.Printf("Bot is listening on %s with %d commands.\n", cfg.ListenAddr, len(handler.Commands()))
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, router))
}

// registerCommands bulk-overwrites the application's global command set.
// Registration can take minutes to propagate, so it runs as a one-shot flag
// rather than on every boot.
func registerCommands(cfg *config.Config) error {
	if cfg.BotToken == "" {
		return errors.New("the DISCORD_TOKEN configuration value is required")
	}
	if cfg.ApplicationID == "" {
		return errors.New("the DISCORD_APPLICATION_ID configuration value is required")
	}

	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return err
	}
	_, err = session.ApplicationCommandBulkOverwrite(cfg.ApplicationID, "", command.AllCommands)
	return err
}

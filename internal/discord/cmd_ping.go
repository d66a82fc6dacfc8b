package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/resetbot/internal/dailies"
)

// PingCommand returns the ping command definition and handler
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot is alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, _ dailies.Service) error {
		return respond(s, i, MsgPong)
	}

	return cmd, handler
}

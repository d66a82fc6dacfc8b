package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Presence shows the reset countdown as the bot's "playing" activity.
type Presence struct {
	session *discordgo.Session
}

// NewPresence creates a Presence bound to session.
func NewPresence(session *discordgo.Session) *Presence {
	return &Presence{session: session}
}

// Publish replaces the bot's activity with text. It fails when the gateway
// is not connected.
func (p *Presence) Publish(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := p.session.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: presenceStatus,
		Activities: []*discordgo.Activity{
			{Name: text, Type: discordgo.ActivityTypeGame},
		},
	})
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

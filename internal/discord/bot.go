package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/resetbot/internal/dailies"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	GuildID  string
	Registry *CommandRegistry
	tracker  dailies.Service
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string
}

// New creates a new Discord bot. Slash commands are dispatched to tracker,
// which may also be set later with SetTracker, before Start.
func New(cfg Config, tracker dailies.Service) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages

	return &Bot{
		Session:  s,
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: NewCommandRegistry(),
		tracker:  tracker,
	}, nil
}

// SetTracker sets the tracker commands are dispatched to. It must be called
// before Start.
func (b *Bot) SetTracker(tracker dailies.Service) {
	b.tracker = tracker
}

// Start opens the gateway connection. The tracker is started from the first
// READY event, once presence updates can be sent.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() error {
	if err := b.Session.Close(); err != nil {
		return fmt.Errorf("error closing connection: %w", err)
	}
	return nil
}

// Connected reports whether the gateway session has received READY.
func (b *Bot) Connected() bool {
	b.Session.RLock()
	defer b.Session.RUnlock()
	return b.Session.DataReady
}

// CheckHealth satisfies handler.HealthChecker.
func (b *Bot) CheckHealth(_ context.Context) error {
	if !b.Connected() {
		return ErrNotConnected
	}
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username, "guilds", len(r.Guilds))
	if b.tracker == nil {
		return
	}

	// Reconnects deliver READY again; Start is a no-op after the first call.
	if err := b.tracker.Start(context.Background()); err != nil {
		slog.Error(LogMsgTrackerStartFailed, "error", err)
	}
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.tracker)
	}
}

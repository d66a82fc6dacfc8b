package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/resetbot/internal/dailies"
	"github.com/osse101/resetbot/internal/metrics"
)

// CommandHandler handles a slash command. It returns the error from sending
// the reply, if any, so the registry can count failures.
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, tracker dailies.Service) error

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterAliases registers the same handler under several command names.
func (r *CommandRegistry) RegisterAliases(names []string, description string, handler CommandHandler) {
	for _, name := range names {
		r.Register(&discordgo.ApplicationCommand{
			Name:        name,
			Description: description,
		}, handler)
	}
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, tracker dailies.Service) {
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		return
	}

	RecordCommand()
	user := getInteractionUser(i)
	slog.Debug(LogMsgCommandReceived, "command", name, "user_id", user.ID)

	err := h(s, i, tracker)
	metrics.CommandsTotal.WithLabelValues(name, metrics.ResultLabel(err)).Inc()
	if err != nil {
		slog.Error(LogMsgRespondFailed, "command", name, "error", err)
	}
}

// RegisterDefaultCommands adds every command the bot serves.
func RegisterDefaultCommands(r *CommandRegistry) {
	r.Register(PingCommand())
	r.Register(ResetTimeCommand())
	r.Register(DailyStatusCommand())
	RegisterReminderCommands(r)
}

// RegisterCommands registers the commands with Discord, guild scoped when
// GuildID is set. Only performs updates if commands have changed to avoid
// rate limits.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info(LogMsgCheckingCommands, "guild_id", b.GuildID)

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if !forceUpdate && commandsEqual(existingCmds, desiredCmds) {
		slog.Info(LogMsgCommandsUnchanged, "count", len(existingCmds))
		return nil
	}

	if forceUpdate {
		slog.Info(LogMsgCommandsForced, "count", len(desiredCmds))
	} else {
		slog.Info(LogMsgCommandsChanged,
			"existing", len(existingCmds),
			"desired", len(desiredCmds))
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := existingMap[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

// commandEqual compares the fields this bot sets on its commands.
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	return a.Name == b.Name &&
		a.Description == b.Description &&
		len(a.Options) == len(b.Options)
}

// respond sends a plain message reply to the interaction.
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	ctx, cancel := context.WithTimeout(context.Background(), respondTimeout)
	defer cancel()

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	}, discordgo.WithContext(ctx))
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

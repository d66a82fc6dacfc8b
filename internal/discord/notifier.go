package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// Notifier sends direct and channel messages through the bot session.
// Direct message channel ids are cached per user, and every outgoing message
// waits on a shared rate limiter so a large reminder round stays under the
// Discord rate limits.
type Notifier struct {
	session  *discordgo.Session
	channels *lru.Cache[string, string]
	limiter  *rate.Limiter
}

// NewNotifier creates a Notifier. Non-positive sizes fall back to defaults.
func NewNotifier(session *discordgo.Session, cacheSize int, perSecond float64) (*Notifier, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultDMChannelCacheSize
	}
	if perSecond <= 0 {
		perSecond = DefaultDMRatePerSecond
	}

	channels, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create DM channel cache: %w", err)
	}

	return &Notifier{
		session:  session,
		channels: channels,
		limiter:  rate.NewLimiter(rate.Limit(perSecond), dmBurst),
	}, nil
}

// SendDirect sends text to the user's private channel.
func (n *Notifier) SendDirect(ctx context.Context, userID, text string) error {
	channelID, err := n.dmChannel(ctx, userID)
	if err != nil {
		return err
	}

	if err := n.send(ctx, channelID, text); err != nil {
		// The cached channel may be stale, open a fresh one next time.
		n.channels.Remove(userID)
		return fmt.Errorf("user %s: %w", userID, err)
	}
	return nil
}

// SendChannel posts text to a guild channel.
func (n *Notifier) SendChannel(ctx context.Context, channelID, text string) error {
	return n.send(ctx, channelID, text)
}

func (n *Notifier) send(ctx context.Context, channelID, text string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSendMessage, err)
	}
	if _, err := n.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%w: channel %s: %w", ErrSendMessage, channelID, err)
	}
	return nil
}

func (n *Notifier) dmChannel(ctx context.Context, userID string) (string, error) {
	if id, ok := n.channels.Get(userID); ok {
		return id, nil
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDMChannel, err)
	}
	ch, err := n.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("%w: user %s: %w", ErrDMChannel, userID, err)
	}

	n.channels.Add(userID, ch.ID)
	slog.Debug(LogMsgDMChannelCached, "user_id", userID, "channel_id", ch.ID)
	return ch.ID, nil
}

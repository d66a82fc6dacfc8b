package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/resetbot/internal/dailies"
)

// ResetTimeCommand answers how long until the next server reset.
func ResetTimeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "rtime",
		Description: "Shows how long until the daily server reset",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, tracker dailies.Service) error {
		return respond(s, i, dailies.CountdownText(tracker.Countdown()))
	}

	return cmd, handler
}

// DailyStatusCommand shows the caller's own standing for today.
func DailyStatusCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "dailystatus",
		Description: "Shows whether you get reminders and whether you finished today",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, tracker dailies.Service) error {
		user := getInteractionUser(i)
		return respond(s, i, formatStatus(tracker.Status(user.ID)))
	}

	return cmd, handler
}

func formatStatus(st dailies.UserStatus) string {
	var sb strings.Builder
	if st.Subscribed {
		sb.WriteString(MsgStatusSubscribed)
	} else {
		sb.WriteString(MsgStatusNotSubscribed)
	}
	sb.WriteString("\n")
	if st.Done {
		sb.WriteString(MsgStatusDone)
	} else {
		sb.WriteString(MsgStatusNotDone)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, msgStatusResetFormat,
		st.Countdown.Hours, st.Countdown.Minutes, st.Countdown.RelativeTimestamp())
	return sb.String()
}

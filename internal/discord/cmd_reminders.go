package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/resetbot/internal/dailies"
	"github.com/osse101/resetbot/internal/reminder"
)

// Command names, the first of each group is the primary one.
var (
	subscribeNames   = []string{"reminders", "remindme"}
	unsubscribeNames = []string{"shutup", "stop", "quiet"}
	doneNames        = []string{"done", "finished", "completed"}
)

// RegisterReminderCommands registers the reminder pool commands and their aliases.
func RegisterReminderCommands(r *CommandRegistry) {
	r.RegisterAliases(subscribeNames, "Get a private reminder every hour until you finish your dailies", subscribeHandler)
	r.RegisterAliases(unsubscribeNames, "Stop getting daily reminders", unsubscribeHandler)
	r.RegisterAliases(doneNames, "Mark your dailies as finished until the next reset", doneHandler)
}

func subscribeHandler(s *discordgo.Session, i *discordgo.InteractionCreate, tracker dailies.Service) error {
	user := getInteractionUser(i)
	msg := MsgSubscribed
	if tracker.Subscribe(user.ID) == reminder.AlreadySubscribed {
		msg = MsgAlreadySubscribed
	}
	return respond(s, i, msg)
}

func unsubscribeHandler(s *discordgo.Session, i *discordgo.InteractionCreate, tracker dailies.Service) error {
	user := getInteractionUser(i)
	msg := MsgUnsubscribed
	if tracker.Unsubscribe(user.ID) == reminder.NotSubscribed {
		msg = MsgNotSubscribed
	}
	return respond(s, i, msg)
}

func doneHandler(s *discordgo.Session, i *discordgo.InteractionCreate, tracker dailies.Service) error {
	user := getInteractionUser(i)
	msg := MsgMarkedDone
	if tracker.MarkDone(user.ID) == reminder.AlreadyDone {
		msg = MsgAlreadyDone
	}
	return respond(s, i, msg)
}

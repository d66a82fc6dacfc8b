package discord

import "errors"

var (
	ErrNotConnected = errors.New("discord gateway not connected")
	ErrDMChannel    = errors.New("failed to open direct message channel")
	ErrSendMessage  = errors.New("failed to send message")
)

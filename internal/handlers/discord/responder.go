package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// Responder sends plain text messages through the gateway session. It is
// the delivery arm of the dispatcher.
type Responder struct {
	session *discordgo.Session
}

// NewResponder creates a new responder
func NewResponder(session *discordgo.Session) (*Responder, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &Responder{session: session}, nil
}

// Send delivers a message to a channel
func (r *Responder) Send(channelID, content string) error {
	_, err := r.session.ChannelMessageSend(channelID, content)
	return err
}

// ChannelNotifier posts housekeeping summaries to a fixed log channel
type ChannelNotifier struct {
	session   *discordgo.Session
	channelID string
}

// NewChannelNotifier creates a notifier bound to one channel
func NewChannelNotifier(session *discordgo.Session, channelID string) (*ChannelNotifier, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if channelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	return &ChannelNotifier{session: session, channelID: channelID}, nil
}

// Notify posts one summary embed to the log channel
func (n *ChannelNotifier) Notify(content string) error {
	_, err := n.session.ChannelMessageSendEmbed(n.channelID, &discordgo.MessageEmbed{
		Title:       "Blackjack Instance Cleanup",
		Description: content,
		Color:       embedColorNeutral,
	})
	return err
}

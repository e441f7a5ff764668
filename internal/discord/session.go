package discord

import (
	"github.com/bwmarrin/discordgo"
)

// SessionHandler defines the Discord session operations the reporter needs
type SessionHandler interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)

	// Session methods
	Open() error
	Close() error
}

// DiscordSession implements SessionHandler using discordgo.Session
type DiscordSession struct {
	*discordgo.Session
}

// NewSession creates a new DiscordSession for a bot token
func NewSession(token string) (*DiscordSession, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	return &DiscordSession{Session: s}, nil
}

// Ensure DiscordSession implements SessionHandler
var _ SessionHandler = (*DiscordSession)(nil)

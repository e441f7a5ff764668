package mock

import (
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

// SessionHandler is a mock implementation of discord.SessionHandler
type SessionHandler struct {
	mock.Mock
}

// ChannelMessageSend implements discord.SessionHandler
func (s *SessionHandler) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := s.Called(channelID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

// ChannelMessageSendEmbed implements discord.SessionHandler
func (s *SessionHandler) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := s.Called(channelID, embed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

// Open implements discord.SessionHandler
func (s *SessionHandler) Open() error {
	args := s.Called()
	return args.Error(0)
}

// Close implements discord.SessionHandler
func (s *SessionHandler) Close() error {
	args := s.Called()
	return args.Error(0)
}

package client

import (
	"fmt"
	"strconv"

	"clubdesk/config"
	"clubdesk/repository"

	"github.com/bwmarrin/discordgo"
)

// DiscordClient posts booking summaries to the club's staff channel.
type DiscordClient struct {
	session   *discordgo.Session
	channelId string
}

func NewDiscordClient() (*DiscordClient, error) {
	cfg := config.Env()
	if cfg.DiscordBotToken == "" || cfg.DiscordChannelId == "" {
		return nil, fmt.Errorf("discord bot token or channel id not configured")
	}
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, err
	}
	return &DiscordClient{session: session, channelId: cfg.DiscordChannelId}, nil
}

func (c *DiscordClient) NotifyBooking(booking *repository.Booking, event *repository.Event, category *repository.Category) error {
	embed := &discordgo.MessageEmbed{
		Title: "New event booking",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Event", Value: event.Name, Inline: true},
			{Name: "Category", Value: category.Name, Inline: true},
			{Name: "Amount", Value: strconv.Itoa(booking.AmountPaid), Inline: true},
			{Name: "Status", Value: string(booking.Status), Inline: true},
			{Name: "Booking Id", Value: strconv.Itoa(booking.Id), Inline: true},
		},
	}
	_, err := c.session.ChannelMessageSendEmbed(c.channelId, embed)
	return err
}

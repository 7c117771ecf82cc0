package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/tour-api/internal/models"
)

type Notifier interface {
	NotifyBooking(booking models.Booking) error
	NotifyStatusChange(booking models.Booking) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

// NewDiscordNotifierFromToken opens a bot session for token.
func NewDiscordNotifierFromToken(token, channelID string) (*DiscordNotifier, error) {
	if token == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	return NewDiscordNotifier(session, channelID), nil
}

func bookingMessage(b models.Booking) string {
	return fmt.Sprintf("🧳 **New Booking**\n**Guest:** %s\n**Contact:** %s • %s\n**Party:** %d adults, %d children\n**Amount:** ₹%d\n**Package:** %s\n**Status:** %s",
		b.FullName,
		b.Mobile,
		b.Email,
		b.Adults,
		b.Children,
		b.TotalAmount,
		b.ItineraryID,
		b.Status,
	)
}

func statusMessage(b models.Booking) string {
	icon := "⏳"
	switch b.Status {
	case models.StatusVerified:
		icon = "✅"
	case models.StatusRejected:
		icon = "❌"
	}
	return fmt.Sprintf("%s **Booking %s**\n**Guest:** %s\n**Amount:** ₹%d\n**Booking ID:** %s",
		icon,
		b.Status,
		b.FullName,
		b.TotalAmount,
		b.ID,
	)
}

func (n *DiscordNotifier) send(message string) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}
	return nil
}

func (n *DiscordNotifier) NotifyBooking(booking models.Booking) error {
	return n.send(bookingMessage(booking))
}

func (n *DiscordNotifier) NotifyStatusChange(booking models.Booking) error {
	return n.send(statusMessage(booking))
}

package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/PitchBot_Go/internal/utils"
)

// Notifier delivers human-readable events to an operator channel.
// Delivery failures are logged by the caller and never stop a worker.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Noop discards every message
type Noop struct{}

func (Noop) Notify(context.Context, string) error { return nil }

// messageSender is the part of *discordgo.Session the notifier uses
type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord posts messages to a single channel with a bot token
type Discord struct {
	session   messageSender
	channelID string
}

// NewDiscord creates a Discord notifier. No gateway connection is opened;
// messages go through the REST API only.
func NewDiscord(token, channelID string) (*Discord, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &Discord{session: session, channelID: channelID}, nil
}

// Notify sends message to the configured channel
func (d *Discord) Notify(ctx context.Context, message string) error {
	if runes := []rune(message); len(runes) > MaxMessageLength {
		message = string(runes[:MaxMessageLength])
	}
	if _, err := d.session.ChannelMessageSend(d.channelID, message, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send discord message: %w", err)
	}
	return nil
}

// Recorder keeps messages in memory for tests
type Recorder struct {
	mu       sync.Mutex
	Messages []string
}

func (r *Recorder) Notify(_ context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, message)
	return nil
}

// All returns a copy of the recorded messages
func (r *Recorder) All() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Messages...)
}

// Send notifies and logs a delivery failure instead of returning it
func Send(ctx context.Context, n Notifier, message string) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, message); err != nil {
		slog.Warn(LogMsgNotifyFailed, "error", err)
	}
}

// FarmingClaimed formats a successful farming claim
func FarmingClaimed(identity string, balance int64) string {
	return fmt.Sprintf(MsgFarmingClaimed, identity, utils.FormatCoins(balance))
}

// ReferralClaimed formats a successful referral claim
func ReferralClaimed(identity string, count int, balance int64) string {
	return fmt.Sprintf(MsgReferralClaimed, identity, count, utils.FormatCoins(balance))
}

// WorkerStopped formats a farming loop termination
func WorkerStopped(identity string, err error) string {
	return fmt.Sprintf(MsgWorkerFailed, identity, err)
}

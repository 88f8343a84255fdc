package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/staffloop/identity/internal/pkg/constants"
	"github.com/staffloop/identity/internal/pkg/models"
)

// Send publishes a delivery job for one channel. A duplicate publish is
// tolerable downstream; the OTP session is the idempotency boundary.
func (g *NotifierGW) Send(ctx context.Context, channel models.OtpChannel, destination, code string) error {
	var topic string
	switch channel {
	case models.ChannelEmail:
		topic = constants.TopicNotifyEmail
	case models.ChannelMobile:
		topic = constants.TopicNotifyMobile
	default:
		return fmt.Errorf("unknown notification channel: %s", channel)
	}

	event := models.NotificationEvent{
		Channel:     channel,
		Destination: destination,
		Code:        code,
		IssuedAt:    time.Now(),
	}

	if err := g.producer.Publish(topic, event); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

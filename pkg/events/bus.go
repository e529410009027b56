package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// NewBus builds the in-process pub/sub channel shared by publisher and
// consumer. Buffered so a slow consumer does not block request handling.
func NewBus() *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NopLogger{},
	)
}

// Publish marshals v as JSON and publishes it on topic.
func Publish(ctx context.Context, pub message.Publisher, topic string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return pub.Publish(topic, msg)
}

package gateway

import (
	"context"

	"github.com/abhinav/pull-reminder/entity"
)

// Chat is a gateway to a team chat service.
type Chat interface {
	// Posts the message to the given channel. Fails if the chat service
	// rejects the message.
	PostMessage(ctx context.Context, channel string, msg *entity.Message) error
}

package slack

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhinav/pull-reminder/entity"
	"github.com/abhinav/pull-reminder/gateway"

	"github.com/slack-go/slack"
)

// PublishError is returned when Slack refuses to post a message.
type PublishError struct {
	Channel string

	// Error reported by Slack, e.g. "channel_not_found".
	Err error

	// Explanations Slack attached to the error, if any. Slack uses these
	// to say which block was rejected.
	Messages []string
}

func (e *PublishError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("failed to post to %v: %v", e.Channel, e.Err)
	}
	return fmt.Sprintf("failed to post to %v: %v (%v)",
		e.Channel, e.Err, strings.Join(e.Messages, "; "))
}

// Unwrap returns the error reported by Slack.
func (e *PublishError) Unwrap() error { return e.Err }

// chatService is the Slack chat API.
type chatService interface {
	PostMessageContext(
		ctx context.Context, channelID string, options ...slack.MsgOption,
	) (string, string, error)
}

var _ chatService = (*slack.Client)(nil)

// Gateway is a chat gateway that posts messages to Slack.
type Gateway struct {
	chat chatService
}

var _ gateway.Chat = (*Gateway)(nil)

// NewGateway builds a new Slack gateway using the given client.
func NewGateway(client *slack.Client) *Gateway {
	return &Gateway{chat: client}
}

// PostMessage posts the message to the given channel. Clients built with
// NewClient post as the app rather than as the user who owns the token.
func (g *Gateway) PostMessage(ctx context.Context, channel string, msg *entity.Message) error {
	_, _, err := g.chat.PostMessageContext(ctx, channel,
		slack.MsgOptionBlocks(Blocks(msg).BlockSet...),
		slack.MsgOptionText(FallbackText(msg), false),
	)
	if err == nil {
		return nil
	}

	perr := PublishError{Channel: channel, Err: err}
	var serr slack.SlackErrorResponse
	if errors.As(err, &serr) {
		perr.Messages = serr.ResponseMetadata.Messages
	}
	return &perr
}

package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhinav/pull-reminder/entity"
	"github.com/abhinav/pull-reminder/gateway"

	"github.com/slack-go/slack"
)

// Printer is a chat gateway that writes the blocks it would have posted to
// a writer instead of sending them to Slack.
type Printer struct {
	W io.Writer
}

var _ gateway.Chat = (*Printer)(nil)

type printedMessage struct {
	Channel string       `json:"channel"`
	Text    string       `json:"text"`
	Blocks  slack.Blocks `json:"blocks"`
}

// PostMessage writes the message as indented JSON.
func (p *Printer) PostMessage(_ context.Context, channel string, msg *entity.Message) error {
	out, err := json.MarshalIndent(printedMessage{
		Channel: channel,
		Text:    FallbackText(msg),
		Blocks:  Blocks(msg),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render message for %v: %v", channel, err)
	}

	_, err = fmt.Fprintf(p.W, "%s\n", out)
	return err
}

package slack

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhinav/pull-reminder/entity"

	"github.com/slack-go/slack"
)

// Slack rejects section blocks with more text than this.
const _maxSectionText = 3000

func mrkdwn(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

// Blocks renders a message as Slack blocks.
//
// The header is preceded by two blank sections so that it stands apart
// from whatever was posted before it. Each section is introduced by a
// divider. Sections too long for one Slack block continue in the blocks
// that follow.
func Blocks(msg *entity.Message) slack.Blocks {
	blocks := []slack.Block{
		mrkdwn("\n"),
		mrkdwn("\n"),
		mrkdwn(fmt.Sprintf("🚧 *%v* 🚧", msg.Header)),
	}

	for _, s := range msg.Sections {
		blocks = append(blocks, slack.NewDividerBlock())
		for _, text := range sectionTexts(s) {
			blocks = append(blocks, mrkdwn(text))
		}
	}

	return slack.Blocks{BlockSet: blocks}
}

// sectionTexts renders a section as one or more texts, none longer than
// _maxSectionText bytes. Only the first carries the title.
func sectionTexts(s *entity.Section) []string {
	var (
		texts []string
		text  strings.Builder
	)
	fmt.Fprintf(&text, "*%v:*", s.Title)
	for _, line := range s.Lines {
		line = truncate(line, _maxSectionText)
		if text.Len()+len("\n")+len(line) > _maxSectionText {
			texts = append(texts, text.String())
			text.Reset()
			text.WriteString(line)
			continue
		}
		text.WriteString("\n")
		text.WriteString(line)
	}
	return append(texts, text.String())
}

// truncate shortens s to at most n bytes, marking the cut with an
// ellipsis.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	const ellipsis = "…"
	cut := n - len(ellipsis)
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + ellipsis
}

// FallbackText is a plain summary of the message shown in notifications
// and by clients that cannot render blocks.
func FallbackText(msg *entity.Message) string {
	parts := make([]string, 0, len(msg.Sections))
	for _, s := range msg.Sections {
		parts = append(parts, fmt.Sprintf("%v: %d", s.Title, len(s.Lines)))
	}
	if len(parts) == 0 {
		return msg.Header
	}
	return fmt.Sprintf("%v (%v)", msg.Header, strings.Join(parts, ", "))
}

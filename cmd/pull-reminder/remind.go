package main

import (
	"context"
	"io"
	"strings"

	"github.com/abhinav/pull-reminder/cli"
	"github.com/abhinav/pull-reminder/gateway"
	"github.com/abhinav/pull-reminder/service"
	"github.com/abhinav/pull-reminder/slack"

	"github.com/jessevdk/go-flags"
	"go.uber.org/multierr"
)

// DefaultChannel is the Slack channel reminders go to unless told
// otherwise.
const DefaultChannel = "peya_automation"

type remindCmd struct {
	Organization string   `long:"organization" env:"ORGANIZATION" value-name:"ORG" description:"GitHub organization whose pull requests are summarized."`
	Repositories []string `long:"repositories" env:"REPOSITORIES" env-delim:"," value-name:"NAMES" description:"Comma-separated repositories to include. Defaults to all repositories of the organization."`
	Usernames    []string `long:"usernames" env:"USERNAMES" env-delim:"," value-name:"LOGINS" description:"Comma-separated authors whose pull requests are included. Defaults to everyone."`
	IgnoreWords  []string `long:"ignore-words" env:"IGNORE_WORDS" env-delim:"," value-name:"WORDS" description:"Comma-separated words. Pull requests with any of these in their title are left out."`
	Channel      string   `long:"channel" env:"SLACK_CHANNEL" default:"peya_automation" value-name:"CHANNEL" description:"Slack channel to post to."`
	MinReviews   int      `long:"min-reviews" env:"MIN_OF_REVIEW" default:"0" value-name:"N" description:"Approvals needed before a pull request is ready to merge."`
	Concurrency  int      `long:"concurrency" env:"PULL_REMINDER_CONCURRENCY" default:"1" value-name:"N" description:"Number of repositories to fetch at the same time."`
	SkipEmpty    bool     `long:"skip-empty" env:"PULL_REMINDER_SKIP_EMPTY" description:"Don't post anything if there are no open pull requests."`

	getConfig configBuilder
}

func newPostCommand(cbuild cli.ConfigBuilder) flags.Commander {
	return &remindCmd{
		getConfig: newConfigBuilder(cbuild, func(cfg cli.Config) gateway.Chat {
			return cfg.Chat()
		}),
	}
}

// newPreviewCommand builds a command that writes the message to w instead
// of posting it.
func newPreviewCommand(w io.Writer) func(cli.ConfigBuilder) flags.Commander {
	return func(cbuild cli.ConfigBuilder) flags.Commander {
		return &remindCmd{
			getConfig: newConfigBuilder(cbuild, func(cli.Config) gateway.Chat {
				return &slack.Printer{W: w}
			}),
		}
	}
}

func (r *remindCmd) validate() (err error) {
	if r.Organization == "" {
		err = multierr.Append(err, cli.MissingEnv("ORGANIZATION"))
	}
	return err
}

func (r *remindCmd) Execute([]string) error {
	// Report everything that is missing at once.
	cfg, err := r.getConfig()
	if err = multierr.Append(r.validate(), err); err != nil {
		return err
	}

	ctx := context.Background()
	if timeout := cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	channel := r.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	req := service.RemindRequest{
		Organization: r.Organization,
		Repositories: splitList(r.Repositories),
		Usernames:    splitList(r.Usernames),
		IgnoreWords:  splitList(r.IgnoreWords),
		MinApprovals: r.MinReviews,
		Channel:      channel,
		Concurrency:  r.Concurrency,
		SkipEmpty:    r.SkipEmpty,
	}

	log := cfg.Logger()
	log.Debugw("reminding", "organization", req.Organization, "channel", req.Channel)

	res, err := cfg.Service.Remind(ctx, &req)
	if err != nil {
		return err
	}

	if !res.Posted {
		log.Infow("nothing was posted", "channel", req.Channel)
	}
	return nil
}

// splitList normalizes a list given through flags or the environment. Items
// may themselves be comma-separated. Items are trimmed and lowercased, and
// blank items are dropped.
func splitList(values []string) []string {
	items := make([]string, 0, len(values))
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			item = strings.ToLower(strings.TrimSpace(item))
			if item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

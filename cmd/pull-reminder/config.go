package main

import (
	"github.com/abhinav/pull-reminder/cli"
	"github.com/abhinav/pull-reminder/gateway"
	"github.com/abhinav/pull-reminder/reminder"
	"github.com/abhinav/pull-reminder/service"
)

// Common config for pull-reminder commands.
type config struct {
	cli.Config

	Service service.Reminder
}

type configBuilder func() (config, error)

// newConfigBuilder builds a configBuilder. chatFor picks the chat gateway
// that the reminder is sent to.
func newConfigBuilder(cb cli.ConfigBuilder, chatFor func(cli.Config) gateway.Chat) configBuilder {
	return func() (config, error) {
		cfg, err := cb()
		if err != nil {
			return config{}, err
		}

		return config{
			Config: cfg,
			Service: reminder.NewService(reminder.ServiceConfig{
				GitHub: cfg.GitHub(),
				Chat:   chatFor(cfg),
				Log:    cfg.Logger(),
			}),
		}, nil
	}
}

package clitest

import (
	"time"

	"github.com/abhinav/pull-reminder/cli"
	"github.com/abhinav/pull-reminder/gateway"

	"go.uber.org/zap"
)

// ConfigBuilder may be used to build a cli.Config from static values.
type ConfigBuilder struct {
	GitHub  gateway.GitHub
	Chat    gateway.Chat
	Log     *zap.SugaredLogger
	Timeout time.Duration
}

// Build the cli.Config. This function may also be used as a
// cli.ConfigBuilder.
func (c *ConfigBuilder) Build() (cli.Config, error) {
	// We never return an error. It's used only to satisfy the
	// cli.ConfigBuilder signature.
	return &config{*c}, nil
}

type config struct{ data ConfigBuilder }

func (c *config) GitHub() gateway.GitHub {
	return c.data.GitHub
}

func (c *config) Chat() gateway.Chat {
	return c.data.Chat
}

func (c *config) Logger() *zap.SugaredLogger {
	if c.data.Log == nil {
		return zap.NewNop().Sugar()
	}
	return c.data.Log
}

func (c *config) Timeout() time.Duration {
	return c.data.Timeout
}

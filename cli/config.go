package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/abhinav/pull-reminder/gateway"
	githubgw "github.com/abhinav/pull-reminder/github"
	slackgw "github.com/abhinav/pull-reminder/slack"

	"github.com/google/go-github/v25/github"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// ErrMissingConfig is wrapped by errors for required configuration that was
// not provided.
var ErrMissingConfig = errors.New("missing required configuration")

// MissingEnv builds an error for a required environment variable that was
// not set.
func MissingEnv(name string) error {
	return fmt.Errorf("%w: please set the environment variable %v", ErrMissingConfig, name)
}

// Config is the common configuration for all programs in this package.
type Config interface {
	GitHub() gateway.GitHub
	Chat() gateway.Chat
	Logger() *zap.SugaredLogger

	// Upper bound on how long a single run may take, or zero for no limit.
	Timeout() time.Duration
}

// ConfigBuilder builds a configuration lazily.
type ConfigBuilder func() (Config, error)

type globalConfig struct {
	GitHubToken string        `long:"github-token" env:"GITHUB_API_TOKEN" value-name:"TOKEN" description:"GitHub token used to read repositories and pull requests."`
	GitHubURL   string        `long:"github-url" env:"GITHUB_API_URL" value-name:"URL" description:"Base URL of a GitHub Enterprise API. Defaults to github.com."`
	SlackToken  string        `long:"slack-token" env:"SLACK_API_TOKEN" value-name:"TOKEN" description:"Slack token used to post messages."`
	LogLevel    string        `long:"log-level" env:"LOG_LEVEL" default:"info" value-name:"LEVEL" description:"Minimum level of log messages. One of debug, info, warn, or error."`
	RunTimeout  time.Duration `long:"timeout" env:"PULL_REMINDER_TIMEOUT" default:"30s" value-name:"DURATION" description:"Abort if a run takes longer than this."`

	log     *zap.SugaredLogger
	github  *githubgw.Gateway
	chat    *slackgw.Gateway
	timeout time.Duration
}

var _ Config = (*globalConfig)(nil)

func (g *globalConfig) validate() (err error) {
	if g.GitHubToken == "" {
		err = multierr.Append(err, MissingEnv("GITHUB_API_TOKEN"))
	}
	if g.SlackToken == "" {
		err = multierr.Append(err, MissingEnv("SLACK_API_TOKEN"))
	}
	return err
}

// globalConfig.Build is a ConfigBuilder
func (g *globalConfig) Build() (_ Config, err error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	g.log, err = newLogger(g.LogLevel)
	if err != nil {
		return nil, err
	}

	g.timeout = g.RunTimeout
	if g.timeout < 0 {
		g.timeout = 0
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: g.GitHubToken})
	githubHTTP := oauth2.NewClient(context.Background(), tokenSource)
	githubHTTP.Timeout = g.timeout

	githubClient := github.NewClient(githubHTTP)
	if g.GitHubURL != "" {
		githubClient, err = github.NewEnterpriseClient(g.GitHubURL, g.GitHubURL, githubHTTP)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub URL %q: %v", g.GitHubURL, err)
		}
	}
	g.github = githubgw.NewGateway(githubClient)

	slackClient := slackgw.NewClient(g.SlackToken, &http.Client{Timeout: g.timeout})
	g.chat = slackgw.NewGateway(slackClient)

	return g, nil
}

func (g *globalConfig) GitHub() gateway.GitHub {
	return g.github
}

func (g *globalConfig) Chat() gateway.Chat {
	return g.chat
}

func (g *globalConfig) Logger() *zap.SugaredLogger {
	return g.log
}

func (g *globalConfig) Timeout() time.Duration {
	return g.timeout
}

package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfigBuildMissing(t *testing.T) {
	tests := []struct {
		desc        string
		give        globalConfig
		wantMissing []string
	}{
		{
			desc:        "nothing",
			give:        globalConfig{LogLevel: "info"},
			wantMissing: []string{"GITHUB_API_TOKEN", "SLACK_API_TOKEN"},
		},
		{
			desc:        "no slack",
			give:        globalConfig{GitHubToken: "gh", LogLevel: "info"},
			wantMissing: []string{"SLACK_API_TOKEN"},
		},
		{
			desc:        "no github",
			give:        globalConfig{SlackToken: "sl", LogLevel: "info"},
			wantMissing: []string{"GITHUB_API_TOKEN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := tt.give.Build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingConfig))
			for _, name := range tt.wantMissing {
				assert.Contains(t, err.Error(), "please set the environment variable "+name)
			}
		})
	}
}

func TestGlobalConfigBuild(t *testing.T) {
	g := globalConfig{
		GitHubToken: "gh",
		SlackToken:  "sl",
		LogLevel:    "debug",
		RunTimeout:  time.Minute,
	}
	cfg, err := g.Build()
	require.NoError(t, err)
	assert.NotNil(t, cfg.GitHub())
	assert.NotNil(t, cfg.Chat())
	assert.NotNil(t, cfg.Logger())
	assert.Equal(t, time.Minute, cfg.Timeout())
}

func TestGlobalConfigBuildEnterprise(t *testing.T) {
	g := globalConfig{
		GitHubToken: "gh",
		SlackToken:  "sl",
		GitHubURL:   "https://github.example.com/api/v3/",
		LogLevel:    "info",
	}
	_, err := g.Build()
	require.NoError(t, err)
}

func TestGlobalConfigBuildBadLogLevel(t *testing.T) {
	g := globalConfig{GitHubToken: "gh", SlackToken: "sl", LogLevel: "loud"}
	_, err := g.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestGlobalConfigFromEnv(t *testing.T) {
	t.Setenv("GITHUB_API_TOKEN", "gh-token")
	t.Setenv("SLACK_API_TOKEN", "slack-token")
	t.Setenv("PULL_REMINDER_TIMEOUT", "5s")

	var g globalConfig
	_, err := flags.ParseArgs(&g, nil)
	require.NoError(t, err)
	assert.Equal(t, "gh-token", g.GitHubToken)
	assert.Equal(t, "slack-token", g.SlackToken)
	assert.Equal(t, "info", g.LogLevel)
	assert.Equal(t, 5*time.Second, g.RunTimeout)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path,
		[]byte("PULL_REMINDER_TEST_A=from-file\nPULL_REMINDER_TEST_B=from-file\n"), 0600))

	t.Setenv("PULL_REMINDER_TEST_B", "from-env")
	t.Cleanup(func() { os.Unsetenv("PULL_REMINDER_TEST_A") })

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("PULL_REMINDER_TEST_A"))
	assert.Equal(t, "from-env", os.Getenv("PULL_REMINDER_TEST_B"),
		"variables already in the environment must win")
}

func TestLoadEnvFileMissing(t *testing.T) {
	assert.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "does-not-exist")))
	assert.NoError(t, loadEnvFile(""))
}

func TestLoadEnvFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("PULL_REMINDER_TEST_C=custom\n"), 0600))

	t.Setenv(EnvFileVar, path)
	t.Cleanup(func() { os.Unsetenv("PULL_REMINDER_TEST_C") })

	require.NoError(t, loadEnvFile(".env"))
	assert.Equal(t, "custom", os.Getenv("PULL_REMINDER_TEST_C"))
}

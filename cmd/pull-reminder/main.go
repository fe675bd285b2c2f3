package main

import (
	"os"

	"github.com/abhinav/pull-reminder/cli"
)

func main() {
	cli.Main(
		cli.ShortDesc("Remind a team about the open pull requests of a GitHub organization."),
		cli.EnvFile(".env"),
		&cli.Command{
			Name:      "post",
			ShortDesc: "Posts a summary of open pull requests to Slack.",
			Build:     newPostCommand,
		},
		&cli.Command{
			Name:      "preview",
			ShortDesc: "Prints the Slack message that would be posted.",
			Build:     newPreviewCommand(os.Stdout),
		},
	)
}

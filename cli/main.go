package cli

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type mainConfig struct {
	ShortDesc string
	EnvFile   string
	Commands  []*Command
}

// Main is the entry point for programs provided by this package.
func Main(opts ...Option) {
	var cfg mainConfig
	for _, o := range opts {
		o.apply(&cfg)
	}

	log, err := newLogger("info")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		log.Fatal(err)
	}

	var gcfg globalConfig
	parser := flags.NewParser(&gcfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.ShortDescription = cfg.ShortDesc
	parser.LongDescription = cfg.ShortDesc
	for _, cmd := range cfg.Commands {
		_, err := parser.AddCommand(
			cmd.Name, cmd.ShortDesc, "", cmd.Build(gcfg.Build))
		if err != nil {
			log.Fatalf("Could not register command %q: %v", cmd.Name, err)
		}
	}

	if _, err := parser.Parse(); err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			fmt.Println(ferr.Message)
			return
		}
		log.Fatal(err)
	}
}

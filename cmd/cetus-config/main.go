package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	flagModule  = "module"
	flagEnv     = "env"
	flagCfg     = "cfg"
	flagOutput  = "output"
	flagVerbose = "verbose"
)

const (
	// App name
	appName = "cetus-config"
	// version represents the program based on the git tag
	version = "v0.1.0"
	// commit represents the program based on the git commit
	commit = "dev"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Inspect and validate Cetus SDK deployment options"
	app.Version = version
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  flagVerbose,
			Usage: "Log at debug level",
		},
	}
	app.Before = func(c *cli.Context) error {
		if !c.Bool(flagVerbose) {
			return nil
		}
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		return nil
	}

	selectFlags := []cli.Flag{
		&cli.StringFlag{
			Name:     flagModule,
			Aliases:  []string{"m"},
			Usage:    "SDK module: burn, farms, zap",
			Required: true,
		},
		&cli.StringFlag{
			Name:    flagEnv,
			Aliases: []string{"e"},
			Usage:   "Environment: mainnet, testnet",
			Value:   "mainnet",
		},
		&cli.StringFlag{
			Name:    flagCfg,
			Aliases: []string{"c"},
			Usage:   "Override `FILE` (yaml, json or toml)",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:   "list",
			Usage:  "List every preset deployment",
			Action: listCmd,
		},
		{
			Name:   "show",
			Usage:  "Print the resolved options of a module",
			Action: showCmd,
			Flags: append(selectFlags, &cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "Output format: yaml, json",
				Value:   "yaml",
			}),
		},
		{
			Name:   "validate",
			Usage:  "Resolve and validate the options of a module",
			Action: validateCmd,
			Flags:  selectFlags,
		},
		{
			Name:   "version",
			Usage:  "Application version and build",
			Action: versionCmd,
		},
	}
	return app
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		os.Exit(1)
	}
}

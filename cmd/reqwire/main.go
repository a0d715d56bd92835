package main

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/reqwire/internal/cli"
	"github.com/indaco/reqwire/internal/config"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runCLI loads configuration and executes the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}

	app := cli.New(cfg)
	return app.Run(context.Background(), args)
}

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ReagentX/Logria-sub000/internal/cli"
	"github.com/ReagentX/Logria-sub000/internal/config"
)

func main() {
	var c cli.CLI

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	ctx := kong.Parse(&c,
		kong.Name("logria"),
		kong.Description("An interactive terminal log explorer."),
		kong.UsageOnError(),
	)

	globals := cli.NewGlobals(cfg)
	if err := ctx.Run(globals); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

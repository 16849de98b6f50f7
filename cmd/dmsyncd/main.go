package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/matheus3301/dmsync/internal/config"
	"github.com/matheus3301/dmsync/internal/daemon"
	"github.com/matheus3301/dmsync/internal/paths"
	"go.uber.org/fx"
)

func main() {
	instanceFlag := flag.String("instance", "", "instance name (overrides config default)")
	configFlag := flag.String("config", "", "config file (default ~/.dmsync/config.toml)")
	flag.Parse()

	configPath := *configFlag
	if configPath == "" {
		configPath = paths.ConfigPath()
	}
	cfg, err := config.LoadEffective(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	instance := paths.Resolve(*instanceFlag, cfg.DefaultInstance)
	if err := paths.ValidateName(instance); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app := fx.New(
		daemon.Module(daemon.Params{Instance: instance, Config: cfg}),
		daemon.WithZapLogger(),
	)

	app.Run()
}

package main

import (
	"log"
	"os"

	"go.uber.org/fx"

	"github.com/dmitrijs2005/capcheck/internal/buildinfo"
	"github.com/dmitrijs2005/capcheck/internal/client/app"
	"github.com/dmitrijs2005/capcheck/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Supply(app.StdTerminal()),
		app.Module,
	).Run()
}

package main

import (
	"context"
	"log"

	"github.com/danakir/planvite/internal/cli"
	"github.com/danakir/planvite/internal/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}

package main

import (
	"context"
	"log"
	"os"

	"bookreview/internal/buildinfo"
	"bookreview/internal/client/cli"
	"bookreview/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}

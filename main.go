package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/robalobadob/wordle/apps/go-solver/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli.Version = version
	cli.Execute(ctx, cli.NewRootCommand())
}

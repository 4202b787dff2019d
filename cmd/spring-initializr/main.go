package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/AlbertLnz/spring-initializr-cli/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.ExecuteContext(ctx)
	stop()
	os.Exit(cmd.Report(err, os.Stderr))
}

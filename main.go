package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/mdf-science/mdfzip/internal/cmd"
)

func main() {
	// An interrupt stops dispatching new candidates; in-flight archives
	// either finalize atomically or clean up their staging files.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	eventscmd "github.com/hardluck-games/streetlife/internal/cmd/events"
)

// main starts the life-event engine MCP server on stdio.
func main() {
	cfg, err := eventscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[EVENTS] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := eventscmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve events: %v", err)
	}
}

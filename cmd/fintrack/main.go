package main

import (
	"os"

	"github.com/fintrack-dev/fintrack/internal/commands"
	"github.com/fintrack-dev/fintrack/internal/logger"
)

func main() {
	log := logger.New()

	if err := commands.NewRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

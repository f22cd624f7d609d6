// Package main provides the CLI entrypoint for the quiz backend.
package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env for local runs; a missing file is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "quiz",
		Short:        "Quiz Pro Nobis backend",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newHashPasswordCmd())
	return root
}

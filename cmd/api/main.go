package main

import (
	"log"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "api",
	Short:         "Posts REST API",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe, // no subcommand means serve
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

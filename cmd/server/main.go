// Package main is the entry point for the catalog HTTP server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalog-api",
	Short: "Realm Forge catalog REST server",
	Long:  `catalog-api serves a REST interface for managing characters, equipment, and factions of the Realm Forge world catalog.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

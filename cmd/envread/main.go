package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "envread",
	Short:   "Read and sanity-check env files",
	Long:    "Envread prints the raw contents of dotenv-style files and runs simple checks against them. It never parses key/value pairs and never touches the process environment.",
	Version: Version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/envread/pkg/envfile"
)

var findFile string

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Locate the nearest .env file",
	Long:  "Locate the nearest .env file, walking up from the working directory and stopping at a .git root or the home directory.",
	Args:  cobra.NoArgs,
	RunE:  runFind,
}

func init() {
	findCmd.Flags().StringVar(&findFile, "file", "", "explicit path to verify instead of searching")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := envfile.Find(wd, findFile)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

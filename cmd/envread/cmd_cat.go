package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/envread/pkg/envfile"
)

var catLegacy bool

var catCmd = &cobra.Command{
	Use:   "cat [path]",
	Short: "Print the raw contents of an env file",
	Long: `Print the raw contents of an env file (default: .env in the working
directory) to stdout, byte-exact. No trimming, no key/value parsing.

With --legacy an unreadable file degrades to empty output and exit code 0,
with a single "unable to open" diagnostic on stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCat,
}

func init() {
	catCmd.Flags().BoolVar(&catLegacy, "legacy", false, "degrade failures to empty output instead of an error")
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	loader := &envfile.Loader{Diag: cmd.ErrOrStderr()}
	if len(args) == 1 {
		loader.Path = args[0]
	}

	if catLegacy {
		fmt.Fprint(cmd.OutOrStdout(), loader.LoadAll())
		return nil
	}

	content, err := loader.ReadAll()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}

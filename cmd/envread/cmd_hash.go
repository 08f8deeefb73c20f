package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vertti/envread/pkg/envfile"
	"github.com/vertti/envread/pkg/hashcheck"
)

var (
	hashAlgo   string
	hashExpect string
)

var hashCmd = &cobra.Command{
	Use:   "hash [path]",
	Short: "Compute or verify an env file's checksum",
	Long: `Compute the digest of an env file (default: .env in the working
directory), or verify it when --expect is given.

Examples:
  envread hash
  envread hash --algo blake3 configs/.env
  envread hash --expect 2a393c1fc8556a4c1cb671983d157c50b3da73c9153c52d55a26ac3b040eff7d`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHashCheck,
}

func init() {
	hashCmd.Flags().StringVar(&hashAlgo, "algo", "sha256", "digest algorithm: "+strings.Join(hashcheck.Algorithms(), ", "))
	hashCmd.Flags().StringVar(&hashExpect, "expect", "", "expected hex digest")
	rootCmd.AddCommand(hashCmd)
}

func runHashCheck(_ *cobra.Command, args []string) error {
	path := envfile.DefaultPath
	if len(args) == 1 {
		path = args[0]
	}

	c := &hashcheck.Check{
		File:      path,
		Algorithm: hashcheck.Algorithm(hashAlgo),
		Expected:  hashExpect,
		Opener:    &hashcheck.RealFileOpener{},
	}

	return runCheck(c)
}

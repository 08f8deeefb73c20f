package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/envread/pkg/envfile"
	"github.com/vertti/envread/pkg/filecheck"
)

var (
	checkNotEmpty bool
	checkMinSize  int64
	checkMaxSize  int64
	checkContains string
	checkMatch    string
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check that an env file exists and meets requirements",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFileCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkNotEmpty, "not-empty", false, "file must have size > 0")
	checkCmd.Flags().Int64Var(&checkMinSize, "min-size", 0, "minimum file size in bytes")
	checkCmd.Flags().Int64Var(&checkMaxSize, "max-size", 0, "maximum file size in bytes")
	checkCmd.Flags().StringVar(&checkContains, "contains", "", "literal string to search in content")
	checkCmd.Flags().StringVar(&checkMatch, "match", "", "regex pattern to match content")
	rootCmd.AddCommand(checkCmd)
}

func runFileCheck(_ *cobra.Command, args []string) error {
	path := envfile.DefaultPath
	if len(args) == 1 {
		path = args[0]
	}

	c := &filecheck.Check{
		Path:     path,
		NotEmpty: checkNotEmpty,
		MinSize:  checkMinSize,
		MaxSize:  checkMaxSize,
		Contains: checkContains,
		Match:    checkMatch,
		Stater:   &filecheck.RealStater{},
	}

	return runCheck(c)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var copyrightsRaw bool

var copyrightsCmd = &cobra.Command{
	Use:   "copyrights [paths...]",
	Short: "Print merged copyright lines",
	Long: `Parse the license headers of builtins files and print one line per
copyright owner with the union of its years.

Examples:
  builtins copyrights builtins/
  builtins copyrights --raw ArrayPrototype.js StringPrototype.js`,
	RunE: runCopyrights,
}

func init() {
	rootCmd.AddCommand(copyrightsCmd)
	copyrightsCmd.Flags().BoolVar(&copyrightsRaw, "raw", false, "print deduplicated lines without merging by owner")
}

func runCopyrights(cmd *cobra.Command, args []string) error {
	collection, _, err := extract(args, true, false)
	if err != nil {
		return err
	}

	lines := collection.Copyrights()
	if copyrightsRaw {
		lines = collection.CopyrightLines()
	}
	for _, line := range lines {
		fmt.Printf("Copyright (C) %s\n", line)
	}
	return nil
}

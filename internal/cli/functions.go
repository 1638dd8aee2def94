package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	functionsJSON    bool
	functionsGrouped bool
)

var functionsCmd = &cobra.Command{
	Use:   "functions [paths...]",
	Short: "List parsed builtin functions",
	Long: `Parse builtins files and print every function signature in sorted order.

Examples:
  builtins functions ArrayPrototype.js
  builtins functions --by-object builtins/
  builtins functions --json .`,
	RunE: runFunctions,
}

func init() {
	rootCmd.AddCommand(functionsCmd)
	functionsCmd.Flags().BoolVar(&functionsJSON, "json", false, "output as JSON")
	functionsCmd.Flags().BoolVar(&functionsGrouped, "by-object", false, "group functions under their object")
}

func runFunctions(cmd *cobra.Command, args []string) error {
	collection, _, err := extract(args, true, false)
	if err != nil {
		return err
	}

	if functionsJSON {
		output, err := json.MarshalIndent(collection.AllFunctions(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	if functionsGrouped {
		for _, obj := range collection.Objects() {
			fmt.Printf("%s:\n", obj.Name)
			for _, fn := range obj.Functions {
				fmt.Printf("  %s\n", fn)
			}
		}
		return nil
	}

	functions := collection.AllFunctions()
	if len(functions) == 0 {
		fmt.Println("No builtin functions found.")
		return nil
	}
	for _, fn := range functions {
		fmt.Printf("%s.%s\n", fn.ObjectName, fn)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orian/studysearch/mutation"
)

var impactCmd = &cobra.Command{
	Use:     "impact <code>",
	Short:   "Look up a functional-impact score code",
	Example: `  studysearch impact H`,
	Args:    cobra.ExactArgs(1),
	RunE:    runImpactCommand,
}

func init() {
	rootCmd.AddCommand(impactCmd)
}

func runImpactCommand(cmd *cobra.Command, args []string) error {
	impact := mutation.ForCode(args[0])

	fmt.Printf("label:    %s\n", impact.Label)
	if impact.ClassName != "" {
		fmt.Printf("class:    %s\n", impact.ClassName)
	}
	fmt.Printf("priority: %d\n", impact.Priority)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orian/studysearch/search"
)

var parseQuery string

var parseCmd = &cobra.Command{
	Use:     "parse",
	Short:   "Show the clause breakdown of a search query",
	Example: `  studysearch parse -q "tcga cancertype:luad,lusc - glioma"`,
	RunE:    runParseCommand,
}

func init() {
	parseCmd.Flags().StringVarP(&parseQuery, "query", "q", "", "search query text")
	parseCmd.MarkFlagRequired("query")
	rootCmd.AddCommand(parseCmd)
}

func runParseCommand(cmd *cobra.Command, args []string) error {
	clauses := search.DefaultParser().Parse(parseQuery)
	if len(clauses) == 0 {
		fmt.Println("no clauses")
		return nil
	}

	for i, c := range clauses {
		kind := "and"
		if c.IsNot() {
			kind = "not"
		}
		fmt.Printf("clause %d (%s):\n", i+1, kind)
		for _, p := range c.Phrases() {
			fmt.Printf("  %-24s value=%q fields=%v\n", p.String(), p.Value(), p.Fields())
		}
	}

	fmt.Printf("canonical: %s\n", search.QueryString(clauses))
	return nil
}

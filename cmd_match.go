package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orian/studysearch/search"
)

var (
	matchQuery   string
	matchCatalog string
	matchQuiet   bool // Suppress the summary line
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Filter a study catalog with a search query",
	Example: `  studysearch match -q "lung" -c studies.json
  studysearch match -q "tcga - cancertype:brca" -c studies.json`,
	RunE: runMatchCommand,
}

func init() {
	matchCmd.Flags().StringVarP(&matchQuery, "query", "q", "", "search query text")
	matchCmd.Flags().StringVarP(&matchCatalog, "catalog", "c", "", "path to the study catalog JSON")
	matchCmd.Flags().BoolVar(&matchQuiet, "quiet", false, "print matching study names only")
	matchCmd.MarkFlagRequired("catalog")
	rootCmd.AddCommand(matchCmd)
}

func runMatchCommand(cmd *cobra.Command, args []string) error {
	studies, err := LoadCatalog(matchCatalog)
	if err != nil {
		return err
	}

	clauses := search.DefaultParser().Parse(matchQuery)

	matched := 0
	for _, study := range studies {
		if search.MatchesAll(clauses, study) {
			fmt.Println(studyLabel(study))
			matched++
		}
	}

	if !matchQuiet {
		fmt.Printf("%d of %d studies matched\n", matched, len(studies))
	}
	return nil
}

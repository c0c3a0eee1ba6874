package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studysearch",
	Short: "Filtered search over cancer-study catalogs",
	Long: `studysearch parses free-text filter queries and evaluates them
against cancer-study metadata.

Queries are whitespace-separated phrases. A phrase matches a study when
any of its fields contains the phrase, case-insensitively. Special
forms:

  - phrase            exclude studies matching phrase
  cancertype:luad     match a dedicated attribute
  cancertype:luad,lusc  match any of several values

Examples:
  studysearch match -q "lung - cancertype:brca" -c studies.json
  studysearch parse -q "tcga cancertype:luad,lusc"
  studysearch saved add pediatric "tag:pediatric"`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStorage opens the saved-search store. The database path comes
// from STUDYSEARCH_DB, defaulting to a file in the working directory.
func openStorage() (*DuckDBStorage, error) {
	dbPath := os.Getenv("STUDYSEARCH_DB")
	if dbPath == "" {
		dbPath = "./studysearch.db"
	}
	return NewDuckDBStorage(dbPath)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var savedListTag string

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved searches",
}

var savedAddCmd = &cobra.Command{
	Use:     "add <name> <query>",
	Short:   "Save a named search",
	Example: `  studysearch saved add pediatric "tag:pediatric - cancertype:brca"`,
	Args:    cobra.ExactArgs(2),
	RunE:    runSavedAddCommand,
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved searches",
	Args:  cobra.NoArgs,
	RunE:  runSavedListCommand,
}

var savedRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a saved search",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedRmCommand,
}

var savedTagCmd = &cobra.Command{
	Use:   "tag <id> <tag>",
	Short: "Tag a saved search (tag or key=value)",
	Args:  cobra.ExactArgs(2),
	RunE:  runSavedTagCommand,
}

var savedStarCmd = &cobra.Command{
	Use:   "star <id>",
	Short: "Toggle the star on a saved search",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedStarCommand,
}

func init() {
	savedListCmd.Flags().StringVar(&savedListTag, "tag", "", "only searches carrying this tag")
	savedCmd.AddCommand(savedAddCmd, savedListCmd, savedRmCmd, savedTagCmd, savedStarCmd)
	rootCmd.AddCommand(savedCmd)
}

func runSavedAddCommand(cmd *cobra.Command, args []string) error {
	storage, err := openStorage()
	if err != nil {
		return err
	}
	defer storage.Close()

	saved, err := storage.SaveSearch(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s  %s\n", saved.ID, saved.Name, saved.Query)
	return nil
}

func runSavedListCommand(cmd *cobra.Command, args []string) error {
	storage, err := openStorage()
	if err != nil {
		return err
	}
	defer storage.Close()

	var searches []*SavedSearch
	if savedListTag != "" {
		searches, err = storage.GetSearchesByTag(savedListTag)
	} else {
		searches, err = storage.GetSearches()
	}
	if err != nil {
		return err
	}

	for _, saved := range searches {
		line := fmt.Sprintf("%s  %-20s %s", saved.ID, saved.Name, saved.Query)
		if tags := formatTags(saved.Tags); tags != "" {
			line += "  [" + tags + "]"
		}
		fmt.Println(line)
	}
	return nil
}

func runSavedRmCommand(cmd *cobra.Command, args []string) error {
	storage, err := openStorage()
	if err != nil {
		return err
	}
	defer storage.Close()

	return storage.DeleteSearch(args[0])
}

func runSavedTagCommand(cmd *cobra.Command, args []string) error {
	storage, err := openStorage()
	if err != nil {
		return err
	}
	defer storage.Close()

	tag, err := storage.AddTag(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("tagged %s with %s\n", args[0], tag.FormatTag())
	return nil
}

func runSavedStarCommand(cmd *cobra.Command, args []string) error {
	storage, err := openStorage()
	if err != nil {
		return err
	}
	defer storage.Close()

	starred, err := storage.ToggleStarred(args[0])
	if err != nil {
		return err
	}

	if starred {
		fmt.Println("starred")
	} else {
		fmt.Println("unstarred")
	}
	return nil
}

func formatTags(tags []*SearchTag) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, t.FormatTag())
	}
	return strings.Join(parts, ", ")
}

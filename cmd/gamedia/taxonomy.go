package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	consolesCmd := &cobra.Command{
		Use:   "consoles",
		Short: "List recognized console folders",
		RunE:  runConsoles,
	}

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List media categories",
		RunE:  runCategories,
	}

	rootCmd.AddCommand(consolesCmd, categoriesCmd)
}

func runConsoles(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	consoles, err := client.Consoles()
	if err != nil {
		return fmt.Errorf("list consoles: %w", err)
	}

	if jsonOutput {
		printJSON(consoles)
		return nil
	}

	for _, c := range consoles {
		fmt.Printf("%-12s %s\n", c.ID, c.Label)
	}
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	categories, err := client.Categories()
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	if jsonOutput {
		printJSON(categories)
		return nil
	}

	for _, c := range categories {
		fmt.Printf("%-15s %-5s %-12s %s\n", c.Key, c.Ext, c.Accept, c.Label)
	}
	return nil
}

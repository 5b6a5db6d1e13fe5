package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rmCmd := &cobra.Command{
		Use:   "rm <console> <game>",
		Short: "Delete all media files for a game",
		Long: `Removes every media file for the game across all category folders.
The game disappears from the catalog once its files are gone.`,
		Args: cobra.ExactArgs(2),
		RunE: runRm,
	}
	rmCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")

	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	console, game := args[0], args[1]

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Printf("Delete all media for %s/%s? [y/N] ", console, game)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	resp, err := client.DeleteGame(console, game)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	fmt.Printf("Deleted %d files for %s/%s\n", resp.Deleted, console, game)
	return nil
}

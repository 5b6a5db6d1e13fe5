package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	resp, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	mode := "read-write"
	if !resp.Writable {
		mode = "read-only"
	}
	fmt.Printf("Server:  %s (gamediad %s)\n", serverURL, resp.Version)
	fmt.Printf("Root:    %s (%s)\n", resp.Root, mode)
	fmt.Printf("Games:   %d\n", resp.Games)
	return nil
}

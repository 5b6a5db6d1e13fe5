package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Re-scan the media folder on the server",
	Long: `Asks the server to re-derive its game catalog from the media folder.

Use after editing the folder outside the server (manual copies,
scraper runs).`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	resp, err := client.Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	fmt.Printf("Scan complete: %d games\n", resp.Games)
	return nil
}

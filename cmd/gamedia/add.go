package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	addCmd := &cobra.Command{
		Use:   "add <console> <game> <category> [file]",
		Short: "Add or replace a media file for a game",
		Long: `Uploads a media file into one of a game's media slots.

The file can come from disk or be fetched from a URL through the
server's fetch proxy.

Examples:
  gamedia add nes Zelda covers ./zelda-cover.jpg
  gamedia add nes Zelda covers --url https://images.example.com/zelda.jpg`,
		Args: cobra.RangeArgs(3, 4),
		RunE: runAdd,
	}
	addCmd.Flags().String("url", "", "Fetch the media from this URL instead of a local file")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	console, game, category := args[0], args[1], args[2]
	fetchURL, _ := cmd.Flags().GetString("url")

	if (len(args) == 4) == (fetchURL != "") {
		return fmt.Errorf("provide either a local file or --url, not both")
	}

	var data []byte
	switch {
	case fetchURL != "":
		accept, err := categoryAccept(client, category)
		if err != nil {
			return err
		}
		fetched, contentType, err := client.FetchImage(fetchURL, accept)
		if err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}
		fmt.Printf("Fetched %d bytes (%s)\n", len(fetched), contentType)
		data = fetched
	default:
		local, err := os.ReadFile(args[3])
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		data = local
	}

	g, err := client.PutMedia(console, game, category, data)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	if jsonOutput {
		printJSON(g)
		return nil
	}

	fmt.Printf("Added %s media for %s/%s (%d files total)\n", category, g.Console, g.Name, g.MediaCount)
	return nil
}

// categoryAccept resolves the content type expected by a media slot.
func categoryAccept(client *Client, category string) (string, error) {
	categories, err := client.Categories()
	if err != nil {
		return "", fmt.Errorf("list categories: %w", err)
	}
	for _, c := range categories {
		if c.Key == category {
			return c.Accept, nil
		}
	}
	return "", fmt.Errorf("unknown category: %s", category)
}

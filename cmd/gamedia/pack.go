package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	packCmd := &cobra.Command{
		Use:   "pack <console> <game>",
		Short: "Download a game's media as a zip archive",
		Long: `Collects the game's media files from the server and packs them into
a zip with the standard console/folder layout.

Video slots keep no server-side handle and are not included.`,
		Args: cobra.ExactArgs(2),
		RunE: runPack,
	}
	packCmd.Flags().StringP("output", "o", "", "Output file (default <console>_<game>_media.zip)")

	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	console, game := args[0], args[1]

	g, err := client.GetGame(console + "_" + game)
	if err != nil {
		return fmt.Errorf("game lookup failed: %w", err)
	}

	var files []ArchiveFile
	for _, folder := range g.MediaFolders {
		data, contentType, err := client.GetMedia(g.ID, folder)
		if err != nil {
			// Folders without a served file (videos, unknown folders) are
			// skipped.
			continue
		}
		files = append(files, ArchiveFile{
			Category:    folder,
			ContentType: contentType,
			Data:        data,
		})
	}
	if len(files) == 0 {
		return fmt.Errorf("no packable media for %s/%s", console, game)
	}

	blob, err := client.BuildArchive(ArchiveRequest{Console: console, Game: game, Files: files})
	if err != nil {
		return fmt.Errorf("archive failed: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = fmt.Sprintf("%s_%s_media.zip", console, game)
	}
	if err := os.WriteFile(output, blob, 0644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	fmt.Printf("Packed %d files into %s (%d bytes)\n", len(files), output, len(blob))
	return nil
}

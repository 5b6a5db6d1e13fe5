package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List games in the media collection",
		RunE:  runList,
	}
	listCmd.Flags().StringP("console", "c", "", "Filter by console ID (e.g. nes, snes)")
	listCmd.Flags().String("has", "", "Only games with media in this folder")
	listCmd.Flags().String("missing", "", "Only games without media in this folder")
	listCmd.Flags().StringP("query", "q", "", "Fuzzy name filter")
	listCmd.Flags().IntP("limit", "l", 0, "Maximum number of games to return")
	listCmd.Flags().Int("offset", 0, "Number of games to skip")

	showCmd := &cobra.Command{
		Use:   "show <console> <game>",
		Short: "Show one game's media record",
		Args:  cobra.ExactArgs(2),
		RunE:  runShow,
	}

	rootCmd.AddCommand(listCmd, showCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	query := url.Values{}
	for flagName, param := range map[string]string{
		"console": "console",
		"has":     "has",
		"missing": "missing",
		"query":   "q",
	} {
		if v, _ := cmd.Flags().GetString(flagName); v != "" {
			query.Set(param, v)
		}
	}
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset, _ := cmd.Flags().GetInt("offset"); offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	resp, err := client.ListGames(query)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	if len(resp.Items) == 0 {
		fmt.Println("No games found.")
		return nil
	}

	fmt.Printf("%-10s %-40s %-5s %-5s %-5s %s\n", "CONSOLE", "GAME", "COVER", "LOGO", "VIDEO", "FOLDERS")
	for _, g := range resp.Items {
		fmt.Printf("%-10s %-40s %-5s %-5s %-5s %s\n",
			g.Console, g.Name, mark(g.HasCover), mark(g.HasLogo), mark(g.HasVideo),
			strings.Join(g.MediaFolders, ","))
	}
	fmt.Printf("\n%d of %d games\n", len(resp.Items), resp.Total)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	console, game := args[0], args[1]

	g, err := client.GetGame(console + "_" + game)
	if err != nil {
		return fmt.Errorf("show failed: %w", err)
	}

	if jsonOutput {
		printJSON(g)
		return nil
	}

	fmt.Printf("Game:    %s\n", g.Name)
	fmt.Printf("Console: %s\n", g.Console)
	fmt.Printf("Media:   %d files in %s\n", g.MediaCount, strings.Join(g.MediaFolders, ", "))
	fmt.Printf("Cover:   %s  Logo: %s  Video: %s\n", mark(g.HasCover), mark(g.HasLogo), mark(g.HasVideo))
	return nil
}

func mark(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

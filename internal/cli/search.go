package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/lyrifi/internal/catalog"
	"github.com/llehouerou/lyrifi/internal/playlist"
	"github.com/llehouerou/lyrifi/internal/searchclient"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog service",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			closer, err := setupLogging(cfg, "")
			if err != nil {
				return err
			}
			defer closer.Close()

			if serverURL == "" {
				serverURL = cfg.CatalogURL()
			}
			client := searchclient.New(serverURL)
			results := client.Search(cmd.Context(), strings.Join(args, " "))
			printResults(cmd, results)
			return nil
		},
	}
	cmd.Flags().StringVarP(&serverURL, "server", "s", "", "catalog service URL (default from config)")
	return cmd
}

func printResults(cmd *cobra.Command, r *catalog.Results) {
	out := cmd.OutOrStdout()
	if r.IsEmpty() {
		fmt.Fprintln(out, "No results")
		return
	}

	if len(r.Tracks) > 0 {
		fmt.Fprintln(out, "Tracks:")
		for _, t := range r.Tracks {
			video := ""
			if t.YouTubeID == "" {
				video = " (no video)"
			}
			fmt.Fprintf(out, "  %s - %s [%s]%s\n", t.Title, t.ArtistName, playlist.FormatDuration(t.Duration), video)
		}
	}
	if len(r.Artists) > 0 {
		fmt.Fprintln(out, "Artists:")
		for _, a := range r.Artists {
			fmt.Fprintf(out, "  %s\n", a.Name)
		}
	}
	if len(r.Albums) > 0 {
		fmt.Fprintln(out, "Albums:")
		for _, a := range r.Albums {
			fmt.Fprintf(out, "  %s - %s\n", a.Title, a.ArtistName)
		}
	}
	if len(r.Playlists) > 0 {
		fmt.Fprintln(out, "Playlists:")
		for _, p := range r.Playlists {
			fmt.Fprintf(out, "  %s (%d tracks)\n", p.Name, len(p.TrackIDs))
		}
	}
}

package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/lyrifi/internal/catalog"
	"github.com/llehouerou/lyrifi/internal/errmsg"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var fixtures string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the catalog with fixture data",
		Long: "Clears every catalog table and inserts the fixtures.\n" +
			"Without --fixtures the built-in sample catalog is used.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			closer, err := setupLogging(cfg, "")
			if err != nil {
				return err
			}
			defer closer.Close()

			cat, err := openCatalog(cfg)
			if err != nil {
				return err
			}
			defer cat.Close()

			var fsys fs.FS = catalog.DefaultFixtures()
			if fixtures != "" {
				fsys = os.DirFS(fixtures)
			}

			stats, err := cat.Seed(cmd.Context(), fsys)
			if err != nil {
				return errorf(errmsg.OpCatalogSeed, err)
			}
			printSeedStats(cmd, stats)
			return nil
		},
	}
	cmd.Flags().StringVarP(&fixtures, "fixtures", "f", "", "directory holding artists.json, albums.json, tracks.json, users.json, playlists.json")
	return cmd
}

func printSeedStats(cmd *cobra.Command, s catalog.SeedStats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seeded %s entities\n", humanize.Comma(int64(s.Total())))
	fmt.Fprintf(out, "  artists:   %s\n", humanize.Comma(int64(s.Artists)))
	fmt.Fprintf(out, "  albums:    %s\n", humanize.Comma(int64(s.Albums)))
	fmt.Fprintf(out, "  tracks:    %s\n", humanize.Comma(int64(s.Tracks)))
	fmt.Fprintf(out, "  users:     %s\n", humanize.Comma(int64(s.Users)))
	fmt.Fprintf(out, "  playlists: %s\n", humanize.Comma(int64(s.Playlists)))
}

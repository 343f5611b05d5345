// Probe program: searches the local catalog and resolves the first track's video.
package main

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/lyrifi/internal/catalog"
	"github.com/llehouerou/lyrifi/internal/config"
	"github.com/llehouerou/lyrifi/internal/youtube"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.DebugLevel)

	query := "radiohead"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	path, err := cfg.DatabasePath()
	if err != nil {
		logrus.Fatalf("Failed to locate database: %v", err)
	}

	cat, err := catalog.Open(path)
	if err != nil {
		logrus.Fatalf("Failed to open catalog: %v", err)
	}
	defer cat.Close()

	ctx := context.Background()
	logrus.WithField("query", query).Info("Searching catalog...")
	results, err := cat.Search(ctx, query)
	if err != nil {
		logrus.Fatalf("Search failed: %v", err)
	}
	logrus.Infof("Found %d tracks, %d artists, %d albums, %d playlists",
		len(results.Tracks), len(results.Artists), len(results.Albums), len(results.Playlists))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		logrus.Fatalf("Failed to encode results: %v", err)
	}

	if len(results.Tracks) == 0 {
		return
	}

	var finder youtube.Finder
	if cfg.HasYouTubeConfig() {
		if finder, err = youtube.NewDataAPIFinder(ctx, cfg.YouTube.APIKey); err != nil {
			logrus.Warnf("YouTube lookup disabled: %v", err)
			finder = nil
		}
	}

	first := results.Tracks[0]
	logrus.WithField("track", first.Title).Info("Resolving video...")
	id, err := youtube.NewResolver(cat, finder).Resolve(ctx, first.ID)
	if err != nil {
		logrus.Fatalf("Resolve failed: %v", err)
	}
	if id == "" {
		logrus.Warn("No video found")
		return
	}
	logrus.Infof("Video: https://www.youtube.com/watch?v=%s", id)
}

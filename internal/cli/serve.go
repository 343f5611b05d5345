package cli

import (
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/llehouerou/lyrifi/internal/catalog"
	"github.com/llehouerou/lyrifi/internal/config"
	"github.com/llehouerou/lyrifi/internal/errmsg"
	"github.com/llehouerou/lyrifi/internal/server"
	"github.com/llehouerou/lyrifi/internal/youtube"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Args:  cobra.NoArgs,
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

			if listen == "" {
				listen = cfg.ListenAddr()
			}
			return serve(cmd, cfg, listen)
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config)")
	return cmd
}

func serve(cmd *cobra.Command, cfg *config.Config, listen string) error {
	ctx := cmd.Context()
	log := logrus.WithField("op", "serve")

	cat, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer cat.Close()

	var srvOpts []server.Option

	if cfg.HasRedisConfig() {
		cache, err := catalog.NewRedisCache(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.WithError(err).Warn("redis unavailable, search cache disabled")
		} else {
			defer cache.Close()
			srvOpts = append(srvOpts, server.WithSearcher(catalog.NewCachedSearcher(cat, cache, cfg.CacheTTL())))
			log.WithField("ttl", cfg.CacheTTL()).Info("search cache enabled")
		}
	}

	var finder youtube.Finder
	if cfg.HasYouTubeConfig() {
		f, err := youtube.NewDataAPIFinder(ctx, cfg.YouTube.APIKey)
		if err != nil {
			log.WithError(err).Warn("youtube lookup disabled")
		} else {
			finder = f
		}
	}
	srvOpts = append(srvOpts, server.WithResolver(youtube.NewResolver(cat, finder)))

	return server.New(cat, srvOpts...).ListenAndServe(ctx, listen)
}

func openCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	path, err := cfg.DatabasePath()
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Open(path)
	if err != nil {
		return nil, errorf(errmsg.OpCatalogOpen, err)
	}
	logrus.WithField("path", path).Debug("catalog opened")
	return cat, nil
}

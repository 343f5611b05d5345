package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/llehouerou/lyrifi/internal/app"
	"github.com/llehouerou/lyrifi/internal/config"
	"github.com/llehouerou/lyrifi/internal/errmsg"
	"github.com/llehouerou/lyrifi/internal/icons"
	"github.com/llehouerou/lyrifi/internal/mpris"
	"github.com/llehouerou/lyrifi/internal/notify"
	"github.com/llehouerou/lyrifi/internal/playback"
	"github.com/llehouerou/lyrifi/internal/playerview"
	"github.com/llehouerou/lyrifi/internal/searchclient"
	"github.com/llehouerou/lyrifi/internal/state"
	"github.com/llehouerou/lyrifi/internal/widget/mpv"
)

type playOptions struct {
	serverURL string
	repeatOne bool
	noNotify  bool
}

func newPlayCmd(opts *rootOptions) *cobra.Command {
	po := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start the interactive player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logPath, err := cfg.LogPath()
			if err != nil {
				return err
			}
			// The terminal belongs to the UI: always log to a file.
			closer, err := setupLogging(cfg, logPath)
			if err != nil {
				return err
			}
			defer closer.Close()

			return play(cmd.Context(), cfg, po)
		},
	}
	cmd.Flags().StringVarP(&po.serverURL, "server", "s", "", "catalog service URL (default from config)")
	cmd.Flags().BoolVar(&po.repeatOne, "repeat-one", false, "enable the repeat-one mode (replays the current track)")
	cmd.Flags().BoolVar(&po.noNotify, "no-notify", false, "disable desktop notifications")
	return cmd
}

func play(ctx context.Context, cfg *config.Config, po *playOptions) error {
	log := logrus.WithField("op", "play")
	icons.Init(cfg.Icons)

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}
	stateMgr, err := state.Open(dbPath)
	if err != nil {
		return errorf(errmsg.OpInitialize, err)
	}
	defer stateMgr.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := playback.New(playback.WithRepeatOneReplay(po.repeatOne))
	defer store.Close()
	storage := state.ForNamespace(stateMgr, cfg.PlayerNamespace())

	ctrl := playerview.New(store, mpv.NewRuntime(cfg.MPVPath()))
	ctrl.Mount(ctx, storage)
	defer ctrl.Unmount()

	go store.Autosave(ctx, storage)

	if adapter, err := mpris.New(store, ctrl); err != nil {
		log.WithError(err).Warn("mpris disabled")
	} else {
		defer adapter.Close()
	}

	if !po.noNotify {
		if notifier, err := notify.New(); err != nil {
			log.WithError(err).Warn("notifications disabled")
		} else {
			go notify.FollowTracks(ctx, store, notifier)
		}
	}

	serverURL := po.serverURL
	if serverURL == "" {
		serverURL = cfg.CatalogURL()
	}
	client := searchclient.New(serverURL)

	model := app.New(store, ctrl, client, app.WithNavigation(stateMgr))
	_, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	if err := stateMgr.SavePlayerNow(cfg.PlayerNamespace(), store.Persisted()); err != nil {
		log.WithError(err).Warn(errmsg.Format(errmsg.OpPlayerSave, err))
	}
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	return nil
}

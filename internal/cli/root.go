// Package cli implements the lyrifi command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/llehouerou/lyrifi/internal/config"
	"github.com/llehouerou/lyrifi/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "lyrifi",
		Short:         "Music catalog service and terminal video player",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: ~/.config/lyrifi/config.toml, ./config.toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	lo.Must0(root.RegisterFlagCompletionFunc("log-level", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(logrus.AllLevels, func(l logrus.Level, _ int) string { return l.String() }), cobra.ShellCompDirectiveNoFileComp
	}))

	root.AddCommand(
		newServeCmd(opts),
		newSeedCmd(opts),
		newPlayCmd(opts),
		newSearchCmd(opts),
	)
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	root := NewRootCmd()
	cc.Init(&cc.Config{
		RootCmd:       root,
		Headings:      cc.HiMagenta + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		logrus.WithError(err).Debug("command failed")
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

// setupLogging configures logrus from cfg. logFile overrides the configured file.
func setupLogging(cfg *config.Config, logFile string) (io.Closer, error) {
	file := cfg.Log.File
	if logFile != "" {
		file = logFile
	}
	return logging.Setup(logging.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
		File:  file,
	})
}

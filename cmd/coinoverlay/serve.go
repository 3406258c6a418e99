package main

import (
	"github.com/go-kit/log"
	"github.com/spf13/cobra"

	nhttp "net/http"

	"go-coin-overlay/convert"
	"go-coin-overlay/format"
	overlayhttp "go-coin-overlay/http"
	"go-coin-overlay/hook"
	"go-coin-overlay/overlay"
	"go-coin-overlay/settings"
)

var serveOpts struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON conversion service",
	Long: `Run the JSON conversion service.

The service answers conversion, parsing and chat-rewrite queries and
follows the persisted display flag, reloading it when the settings file
changes on disk.`,
	RunE: serveRun,
}

func init() {
	serveCmd.Flags().StringVar(&serveOpts.addr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func serveRun(cmd *cobra.Command, args []string) error {
	live := settings.FromFile(cfg)

	converter := convert.NewService(live.Rate())
	converter = convert.NewLoggingService(log.With(logger, "component", "convert"), converter)

	formatter := format.New(converter, live.Currency())
	overlays := overlay.NewRegistry(log.With(logger, "component", "overlay"))
	hooks := hook.NewRegistry(live, formatter, overlays, log.With(logger, "component", "hook"))

	watcher, err := settings.NewWatcher(live, settingsPath(), log.With(logger, "component", "settings"))
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		// The service still runs, it just will not see external toggles.
		logger.Log("msg", "settings watcher not started", "error", err)
	}
	defer watcher.Stop()

	server := overlayhttp.NewServer(live, converter, formatter, hooks, settingsPath(), log.With(logger, "component", "http"))

	logger.Log("msg", "listening", "addr", serveOpts.addr, "enabled", live.IsEnabled(), "rate", live.Rate(), "currency", live.Currency())
	return nhttp.ListenAndServe(serveOpts.addr, server)
}

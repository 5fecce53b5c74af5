package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/server"
)

var serveFlags struct {
	port  string
	watch bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, p, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serveFlags.port
		}
		if cmd.Flags().Changed("watch") {
			cfg.Watch = serveFlags.watch
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if cfg.GinMode != "" {
			gin.SetMode(cfg.GinMode)
		}

		store := content.NewStore(p)
		collector := metrics.NewCollector()

		srv, err := server.New(server.Options{
			Addr:      cfg.Addr(),
			AssetsDir: cfg.AssetsDir,
			Site: render.Site{
				Name:         cfg.SiteName,
				ContactEmail: cfg.ContactEmail,
				CubeFPS:      cfg.CubeFPS,
			},
			Store:   store,
			Logger:  logger,
			Metrics: collector,
		})
		if err != nil {
			return err
		}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error { return srv.Run(ctx) })

		if cfg.Watch {
			if cfg.ContentPath == "" {
				logger.Warn("--watch ignored: no content file configured")
			} else {
				w := content.NewWatcher(cfg.ContentPath, store, logger)
				w.OnReload = collector.ObserveReload
				g.Go(func() error { return w.Run(ctx) })
			}
		}

		err = g.Wait()
		if err != nil {
			logger.Error("Portfolio server failed", zap.Error(err))
		}
		return err
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveFlags.port, "port", "p", "8080", "port to listen on (default is $PORT, then 8080)")
	serveCmd.Flags().BoolVar(&serveFlags.watch, "watch", false, "reload the content file when it changes")
	rootCmd.AddCommand(serveCmd)
}

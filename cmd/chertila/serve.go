package main

import (
	"os/signal"
	"syscall"

	"github.com/chertila/chertila-go/internal/bot"
	"github.com/chertila/chertila-go/internal/engine"
	"github.com/chertila/chertila-go/internal/logger"
	"github.com/chertila/chertila-go/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	var (
		addr  string
		noBot bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve plot commands over HTTP and, with a token, Telegram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cfg.Stage == logger.ProdStage {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log := logger.Log
			eng := engine.New(cfg.Render, cfg.RenderWorkers, log.Named("engine"))

			var tg *bot.Telegram
			if cfg.TelegramToken != "" && !noBot {
				if tg, err = bot.NewTelegram(cfg.TelegramToken, log.Named("telegram")); err != nil {
					return err
				}
			}

			g, ctx := errgroup.WithContext(ctx)
			srv := server.New(eng, log.Named("http"), cfg.RequestTimeout)
			g.Go(func() error {
				return srv.ListenAndServe(ctx, cfg.Addr)
			})

			if tg != nil {
				b := bot.New(eng, tg, log.Named("bot"))
				g.Go(func() error {
					return b.Run(ctx, tg.Updates(ctx))
				})
			} else {
				log.Info("Telegram bot disabled")
			}

			log.Info("Serving",
				zap.String("addr", cfg.Addr),
				zap.Int("render_workers", cfg.RenderWorkers),
				zap.String("format", string(cfg.Render.Format)),
			)
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	cmd.Flags().BoolVar(&noBot, "no-bot", false, "Do not start the Telegram bot even if a token is set")
	return cmd
}

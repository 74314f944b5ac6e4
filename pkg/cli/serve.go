package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/frontend"
	"github.com/secmon-lab/ajaxdemo/pkg/cli/config"
	controller "github.com/secmon-lab/ajaxdemo/pkg/controller/http"
	"github.com/secmon-lab/ajaxdemo/pkg/service/display"
	"github.com/secmon-lab/ajaxdemo/pkg/service/notify"
	"github.com/secmon-lab/ajaxdemo/pkg/service/render"
	"github.com/secmon-lab/ajaxdemo/pkg/service/simulator"
	"github.com/secmon-lab/ajaxdemo/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		demoCfg      config.Demo
		remoteCfg    config.Remote
		sampleCfg    config.Sample
		firestoreCfg config.Firestore
		slackCfg     config.Slack
		rateCfg      config.RateLimit
	)

	flags := joinFlags(
		serverCfg.Flags(),
		demoCfg.Flags(),
		remoteCfg.Flags(),
		sampleCfg.Flags(),
		firestoreCfg.Flags(),
		slackCfg.Flags(),
		rateCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server with the demo page",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting ajaxdemo server",
				slog.Any("server", serverCfg),
				slog.Any("demo", demoCfg),
				slog.Any("remote", remoteCfg),
				slog.Any("sample", sampleCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("slack", slackCfg),
				slog.Any("rate_limit", rateCfg),
			)

			store, err := sampleCfg.Configure(ctx, &firestoreCfg)
			if err != nil {
				return err
			}
			fetcher, err := remoteCfg.Configure()
			if err != nil {
				return err
			}
			delays, err := demoCfg.Delays()
			if err != nil {
				return err
			}

			board := display.NewBoard()
			renderer, err := render.New(board)
			if err != nil {
				return err
			}

			notifyOpts := demoCfg.NotifyOptions()
			if sink := slackCfg.ConfigureOptional(logger); sink != nil {
				notifyOpts = append(notifyOpts, notify.WithSink(sink))
			}
			notifications := notify.New(notifyOpts...)

			demo := usecase.NewDemo(
				usecase.NewController(board, renderer, notifications),
				usecase.NewCatalog(store, simulator.New(), fetcher, delays),
			)

			var serverOpts []controller.ServerOption
			if limiter := rateCfg.Configure(); limiter != nil {
				limiter.StartJanitor(ctx, 2*time.Minute)
				serverOpts = append(serverOpts, controller.WithRateLimiter(limiter))
			}
			if page, err := frontend.GetHTTPFS(); err != nil {
				logger.Warn("Demo page is not embedded, using fallback", "error", err)
			} else {
				serverOpts = append(serverOpts, controller.WithPage(page))
			}

			server, err := controller.NewServer(ctx, serverCfg.Addr, demo, board, notifications, serverOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			serverErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					serverErr <- err
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-serverErr:
				return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

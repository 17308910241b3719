package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/antwalk/config"
	"github.com/katalvlaran/antwalk/metrics"
	"github.com/katalvlaran/antwalk/sim"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Animate the walk in the terminal",
		Long: `watch steps the walker once per frame tick and redraws the grid: the path
in green, abandoned vertices in red, the ant as @. With --reload, edits to
the config file rebuild the walk. With a metrics address, Prometheus
metrics are served on /metrics while the animation runs.`,
		RunE: runWatch,
	}

	cmd.Flags().Int("fps", 30, "Frames per second")
	cmd.Flags().Int("steps-per-frame", 1, "Walker steps per frame")
	cmd.Flags().Bool("reload", true, "Rebuild the walk when the config file changes")
	cmd.Flags().String("metrics-addr", "", "Override metrics.addr; serve /metrics on this address")
	cmd.Flags().String("svg-dir", ".", "Directory for SVG snapshots (key s)")
	cmd.Flags().String("log-file", "", "Write logs here; the terminal belongs to the animation")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	fps, _ := cmd.Flags().GetInt("fps")
	perFrame, _ := cmd.Flags().GetInt("steps-per-frame")
	reload, _ := cmd.Flags().GetBool("reload")
	svgDir, _ := cmd.Flags().GetString("svg-dir")
	logFile, _ := cmd.Flags().GetString("log-file")
	path, _ := cmd.Flags().GetString("config")

	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, logOut)

	loader, err := config.NewLoader(path, logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	walkMetrics := metrics.NewWalk(reg)
	build := func(c *config.Config) (*sim.Simulation, error) {
		applyLogLevel(cmd, c)
		return sim.New(c, logger, walkMetrics)
	}

	s, err := build(cfg)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	p := tea.NewProgram(newWatchModel(s, build, fps, perFrame, svgDir),
		tea.WithAltScreen(),
		tea.WithContext(gctx),
		tea.WithOutput(cmd.OutOrStdout()))

	if reload && path != "" {
		loader.OnChange(func(c *config.Config) {
			copied := *c
			p.Send(reloadMsg{cfg: &copied})
		})
		stopWatch, err := loader.Watch()
		if err != nil {
			logger.Warn("config watcher unavailable (reload disabled)", "err", err)
		} else {
			defer stopWatch()
		}
	}

	addr := cfg.Metrics.Addr
	if cmd.Flags().Changed("metrics-addr") {
		addr, _ = cmd.Flags().GetString("metrics-addr")
	}
	if addr != "" {
		serveMetrics(gctx, g, addr, reg, logger)
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	return g.Wait()
}

// serveMetrics runs a /metrics endpoint inside g until ctx is done.
func serveMetrics(ctx context.Context, g *errgroup.Group, addr string, reg *prometheus.Registry, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g.Go(func() error {
		logger.Info("metrics server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutCancel()
		return srv.Shutdown(shutCtx)
	})
}

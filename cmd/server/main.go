package main

import (
	"context"
	"errors"
	"flag"
	_ "lintang/windcanvas/docs"
	"lintang/windcanvas/pkg/config"
	"lintang/windcanvas/pkg/logging"
	"lintang/windcanvas/pkg/server/rest"
	"lintang/windcanvas/pkg/server/rest/service"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "net/http/pprof"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	listenAddr = flag.String("listenaddr", "", "server listen address (override server.listen_addr dari config)")
)

//	@title			windcanvas lintangbs API
//	@version		1.0
//	@description	projection service: mercator geo <-> canvas mapping and projection-distortion correction for wind vectors

//	@contact.name	lintang birda saputra

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *listenAddr != "" {
		cfg.Server.ListenAddr = *listenAddr
	}

	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)

	reg := prometheus.NewRegistry()
	svc := service.NewProjectionService(cfg.Workers.Count, cfg.Workers.BatchThreshold, logger)
	r := rest.NewRouter(svc, reg, rest.DefaultBounds{
		Geo:    cfg.GeoBound.Bound(),
		Canvas: cfg.CanvasBound.Bound(),
	})

	srv := &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", cfg.Server.ListenAddr,
			"geo_bound", cfg.GeoBound.Bound(), "canvas_bound", cfg.CanvasBound.Bound())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}

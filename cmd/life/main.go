//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"lifecanvas/internal/app"
	"lifecanvas/internal/metrics"
	"lifecanvas/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var obs app.Observer
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		obs = metrics.NewRecorder(reg)
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg); err != nil {
				log.Printf("metrics: %v", err)
			}
		}()
	}

	session, err := app.NewSession(*cfg, nil, obs)
	if err != nil {
		log.Fatalf("lifecanvas: %v", err)
	}

	game := app.New(session)
	w, h := render.CanvasSize(session.Universe().Size(), session.Universe().CellSize())

	ebiten.SetWindowTitle("lifecanvas")
	ebiten.SetWindowSize(int(w), int(h))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

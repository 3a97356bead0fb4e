package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"lifecanvas/internal/app"
	"lifecanvas/internal/metrics"
	"lifecanvas/internal/term"
	"lifecanvas/pkg/life"

	"github.com/integrii/flaggy"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, run := initOptions()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
		log.Fatalf("life-term: %v", err)
	}
	session.SetRunning(run)

	console, err := term.NewConsole(session)
	if err != nil {
		log.Fatalf("life-term: %v", err)
	}
	if err := console.Run(ctx); err != nil {
		log.Fatalf("life-term: %v", err)
	}
	log.Printf("stopped at generation %d with %d live cells", session.Universe().Generation(), session.Universe().Grid().Population())
}

func initOptions() (cfg *app.Config, run bool) {
	cfg = app.NewConfig()
	cfg.Width, cfg.Height = 60, 20

	flaggy.SetName("life-term")
	flaggy.SetDescription("Conway's Game of Life on a torus, in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Width, "x", "width", "Width of the universe in cells")
	flaggy.Int(&cfg.Height, "y", "height", "Height of the universe in cells")
	flaggy.Float64(&cfg.AliveProbability, "a", "alive", "Probability that a cell starts alive")
	flaggy.Duration(&cfg.Interval, "i", "interval", "Delay between generations, for example 150ms")
	flaggy.Int64(&cfg.Seed, "s", "seed", "Seed for the random fill (0 uses the wall clock)")
	flaggy.String(&cfg.Pattern, "p", "pattern", "Template stamped at the centre ["+strings.Join(life.PatternNames(), "|")+"]")
	flaggy.String(&cfg.MetricsAddr, "m", "metrics", "Listen address for prometheus metrics")
	flaggy.Bool(&run, "r", "run", "Start running immediately")

	flaggy.Parse()

	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return cfg, run
}

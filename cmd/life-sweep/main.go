package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"lifecanvas/internal/render"
	"lifecanvas/internal/sweep"
)

func main() {
	width := flag.Int("width", 128, "universe width for survey runs")
	height := flag.Int("height", 128, "universe height for survey runs")
	steps := flag.Int("steps", 500, "generations to simulate per run")
	trials := flag.Int("trials", 4, "runs per density")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	seed := flag.Int64("seed", 1337, "base seed; run i uses seed+i")
	from := flag.Float64("from", 0.05, "lowest alive probability")
	to := flag.Float64("to", 0.95, "highest alive probability")
	step := flag.Float64("step", 0.05, "probability increment")
	pngDir := flag.String("png", "", "directory for final-generation snapshots of the first trial")
	cell := flag.Float64("cell", 2, "pixel size of a cell in snapshots")
	flag.Parse()

	densities := sweep.Densities(*from, *to, *step)
	if len(densities) == 0 {
		log.Fatalf("empty density range %.3f..%.3f step %.3f", *from, *to, *step)
	}

	opts := sweep.Options{
		Width:     *width,
		Height:    *height,
		Steps:     *steps,
		Trials:    *trials,
		Workers:   *workers,
		Seed:      *seed,
		Densities: densities,
		KeepFinal: *pngDir != "",
	}

	fmt.Printf("Surveying %d densities x %d trials (%d workers, %d steps, %dx%d)\n",
		len(densities), *trials, *workers, *steps, *width, *height)
	start := time.Now()
	results, err := sweep.Run(context.Background(), opts)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\n%8s %10s %12s %10s\n", "density", "initial", "population", "extinct")
	for _, s := range sweep.Summarize(results) {
		fmt.Printf("%8.2f %10.1f %12.1f %6d/%d\n", s.Density, s.MeanInitial, s.MeanPopulation, s.Extinctions, s.Trials)
	}
	fmt.Printf("\nElapsed %s\n", elapsed.Round(time.Millisecond))

	if *pngDir == "" {
		return
	}
	if err := os.MkdirAll(*pngDir, 0o755); err != nil {
		log.Fatalf("cannot create %s: %v", *pngDir, err)
	}
	for _, r := range results {
		if r.Trial != 0 || r.Final == nil {
			continue
		}
		if err := writeSnapshot(filepath.Join(*pngDir, fmt.Sprintf("density_%.2f.png", r.Density)), r, *cell); err != nil {
			log.Fatal(err)
		}
	}
}

func writeSnapshot(path string, r sweep.Result, cellSize float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.EncodePNG(f, r.Final, cellSize, render.DefaultPalette()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

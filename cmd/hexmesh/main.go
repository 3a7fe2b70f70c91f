package main

import (
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gravitas-games/hexmesh/internal/config"
	"github.com/gravitas-games/hexmesh/internal/meshplot"
	"github.com/gravitas-games/hexmesh/pkg/hexgrid"
)

func main() {
	log.Println("Starting hexmesh...")

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/hexmesh.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded from %s", configPath)

	if strings.EqualFold(cfg.Output.LogLevel, "debug") {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		hexgrid.SetLogger(slog.Default())
	}

	start := time.Now()
	mesh, err := run(cfg)
	if err != nil {
		log.Fatalf("Mesh generation failed: %v", err)
	}
	log.Printf("Generated %s mesh: %d cells, %d partitions, bounds x=[%.3f, %.3f] y=[%.3f, %.3f] in %v",
		mesh.Shape, mesh.N, len(mesh.Partitions),
		mesh.Bounds.XMin, mesh.Bounds.XMax, mesh.Bounds.YMin, mesh.Bounds.YMax, time.Since(start))
	if mesh.Dense.NumRows > 0 {
		log.Printf("Raster: %d rows of %d cells", mesh.Dense.NumRows, mesh.Dense.RowLen)
	}
	for i, part := range mesh.Partitions {
		log.Printf("Partition %d: %d x %d cells", i, part.RowLen, part.NumRows)
	}

	if cfg.Output.PlotPath != "" {
		if err := meshplot.Save(mesh, cfg.Output.PlotPath, cfg.Output.PlotSizeCm); err != nil {
			log.Fatalf("Failed to write plot: %v", err)
		}
		log.Printf("Plot written to %s", cfg.Output.PlotPath)
	}
}

func run(cfg *config.Config) (*hexgrid.Mesh, error) {
	g, err := hexgrid.NewGrid(cfg.Params())
	if err != nil {
		return nil, err
	}
	log.Printf("Lattice: %d cells in %d rings", g.Len(), g.MaxRing())

	points, err := cfg.Boundary.Points()
	if err != nil {
		return nil, err
	}
	if err := g.SetBoundary(points); err != nil {
		return nil, err
	}
	if err := g.Prune(); err != nil {
		return nil, err
	}
	return g.Compact()
}

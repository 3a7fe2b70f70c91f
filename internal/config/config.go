package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/hexmesh/pkg/boundary"
	"github.com/gravitas-games/hexmesh/pkg/hexgrid"
)

// Config holds all hexmesh configuration
type Config struct {
	Lattice  LatticeConfig  `yaml:"lattice"`
	Boundary BoundaryConfig `yaml:"boundary"`
	Output   OutputConfig   `yaml:"output"`
}

// LatticeConfig mirrors hexgrid.Params
type LatticeConfig struct {
	Spacing           float64             `yaml:"spacing"`
	Span              float64             `yaml:"span"`
	Rings             int                 `yaml:"rings"` // Overrides span when set
	Shape             hexgrid.DomainShape `yaml:"shape"`
	GrowthBufferHorz  int                 `yaml:"growth_buffer_horz"`
	GrowthBufferVert  int                 `yaml:"growth_buffer_vert"`
	Workers           int                 `yaml:"workers"`
	MaxPartitions     int                 `yaml:"max_partitions"`
	MinPartitionCells int                 `yaml:"min_partition_cells"`
}

// BoundaryConfig describes the closed curve fitted onto the lattice
type BoundaryConfig struct {
	Kind string  `yaml:"kind"` // ellipse, polygon or points
	Step float64 `yaml:"step"` // Sampling step; half the spacing when unset

	// ellipse
	Center [2]float64 `yaml:"center"`
	A      float64    `yaml:"a"`
	B      float64    `yaml:"b"`

	// polygon and points
	Vertices [][2]float64 `yaml:"vertices"`
}

// OutputConfig holds reporting settings
type OutputConfig struct {
	PlotPath   string  `yaml:"plot_path"`    // PNG scatter plot; skipped when empty
	PlotSizeCm float64 `yaml:"plot_size_cm"` // Edge length of the square plot
	LogLevel   string  `yaml:"log_level"`    // "debug" routes library logs to slog.Default
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{Lattice: LatticeConfig{Shape: hexgrid.Boundary}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.Lattice.Spacing == 0 {
		cfg.Lattice.Spacing = 1.0
	}
	if cfg.Lattice.Span == 0 && cfg.Lattice.Rings == 0 {
		cfg.Lattice.Span = 10.0
	}
	if cfg.Lattice.Workers == 0 {
		cfg.Lattice.Workers = runtime.NumCPU()
	}
	if cfg.Lattice.MaxPartitions == 0 {
		cfg.Lattice.MaxPartitions = 1
	}
	if cfg.Lattice.MinPartitionCells == 0 {
		cfg.Lattice.MinPartitionCells = 1
	}
	if cfg.Boundary.Kind == "" {
		cfg.Boundary.Kind = "ellipse"
	}
	if cfg.Boundary.Step == 0 {
		cfg.Boundary.Step = cfg.Lattice.Spacing / 2
	}
	if cfg.Output.PlotSizeCm == 0 {
		cfg.Output.PlotSizeCm = 15
	}

	if err := cfg.Params().Validate(); err != nil {
		return nil, fmt.Errorf("invalid lattice config: %w", err)
	}
	return &cfg, nil
}

// Params converts the lattice section into hexgrid parameters
func (c *Config) Params() hexgrid.Params {
	l := c.Lattice
	return hexgrid.Params{
		Spacing:           l.Spacing,
		Span:              l.Span,
		Rings:             l.Rings,
		Shape:             l.Shape,
		GrowthBufferHorz:  l.GrowthBufferHorz,
		GrowthBufferVert:  l.GrowthBufferVert,
		Workers:           l.Workers,
		MaxPartitions:     l.MaxPartitions,
		MinPartitionCells: l.MinPartitionCells,
	}
}

// Points samples the configured boundary
func (b BoundaryConfig) Points() ([]r2.Vec, error) {
	var curve boundary.Curve
	switch strings.ToLower(b.Kind) {
	case "ellipse":
		curve = boundary.Ellipse{Center: r2.Vec{X: b.Center[0], Y: b.Center[1]}, A: b.A, B: b.B}
	case "polygon":
		curve = boundary.Polygon{Vertices: toVecs(b.Vertices)}
	case "points":
		if len(b.Vertices) == 0 {
			return nil, fmt.Errorf("boundary kind points needs vertices")
		}
		return toVecs(b.Vertices), nil
	default:
		return nil, fmt.Errorf("unknown boundary kind %q", b.Kind)
	}
	return curve.Sample(b.Step)
}

func toVecs(in [][2]float64) []r2.Vec {
	out := make([]r2.Vec, len(in))
	for i, v := range in {
		out[i] = r2.Vec{X: v[0], Y: v[1]}
	}
	return out
}

package hexgrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"default", func(*Params) {}, nil},
		{"zero spacing", func(p *Params) { p.Spacing = 0 }, ErrInvalidParams},
		{"nan spacing", func(p *Params) { p.Spacing = math.NaN() }, ErrInvalidParams},
		{"negative span", func(p *Params) { p.Span = -1 }, ErrInvalidParams},
		{"negative span with rings", func(p *Params) { p.Span = -1; p.Rings = 3 }, nil},
		{"negative rings", func(p *Params) { p.Rings = -1 }, ErrInvalidParams},
		{"unknown shape", func(p *Params) { p.Shape = DomainShape(42) }, ErrUnknownDomainShape},
		{"negative buffer", func(p *Params) { p.GrowthBufferVert = -1 }, ErrInvalidParams},
		{"negative workers", func(p *Params) { p.Workers = -2 }, ErrInvalidParams},
		{"too many rings", func(p *Params) { p.Rings = MaxRings + 1 }, ErrInvalidParams},
		{"span overflows rings", func(p *Params) { p.Span = 1e300; p.Spacing = 1e-10 }, ErrInvalidParams},
		{"largest span", func(p *Params) { p.Span = 2 * MaxRings; p.Spacing = 1 }, nil},
		{"negative partitions", func(p *Params) { p.MaxPartitions = -1 }, ErrInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			_, err = NewGrid(p)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseDomainShape(t *testing.T) {
	for in, want := range map[string]DomainShape{
		"rectangle":          Rectangle,
		"Parallelogram":      Parallelogram,
		" HEXAGON ":          Hexagon,
		"boundary":           Boundary,
		"sub_parallelograms": SubParallelograms,
		"sub-parallelograms": SubParallelograms,
	} {
		got, err := ParseDomainShape(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDomainShape("triangle")
	assert.ErrorIs(t, err, ErrUnknownDomainShape)
}

func TestDomainShapeText(t *testing.T) {
	var cfg struct {
		Shape DomainShape `yaml:"shape"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("shape: parallelogram\n"), &cfg))
	assert.Equal(t, Parallelogram, cfg.Shape)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, "shape: parallelogram\n", string(out))

	err = yaml.Unmarshal([]byte("shape: circle\n"), &cfg)
	assert.ErrorIs(t, err, ErrUnknownDomainShape)

	_, err = DomainShape(9).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownDomainShape)
	assert.Equal(t, "DomainShape(9)", DomainShape(9).String())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Built", Built.String())
	assert.Equal(t, "Compacted", Compacted.String())
	assert.Equal(t, "State(7)", State(7).String())
}

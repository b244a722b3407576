package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/treeviz/animate"
	"go.lepak.sg/treeviz/random"
	"go.lepak.sg/treeviz/tree/traverse"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse(args))

	v, err := NewViper(fs)
	require.NoError(t, err)
	return Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	c, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, 600*time.Millisecond, c.Delay())
}

func TestLoad_NoFlags(t *testing.T) {
	v, err := NewViper(nil)
	require.NoError(t, err)

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, c Config)
		wantErr error
	}{
		{
			name: "ranges",
			args: []string{"--count-min=3", "--count-max=5", "--value-min=-10", "--value-max=10"},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, random.Range{Min: 3, Max: 5}, c.Count)
				assert.Equal(t, random.Range{Min: -10, Max: 10}, c.Values)
			},
		},
		{
			name: "order",
			args: []string{"--order=post"},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, traverse.PostOrder, c.Order)
			},
		},
		{
			name: "speed is clamped",
			args: []string{"--speed=5000"},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 1000, c.Speed)
				assert.Equal(t, 100*time.Millisecond, c.Delay())
			},
		},
		{
			name: "speed is rounded",
			args: []string{"--speed=260"},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 300, c.Speed)
			},
		},
		{
			name: "misc",
			args: []string{"--seed=42", "--no-color", "--debug", "--metrics-listen=:9090"},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, int64(42), c.Seed)
				assert.True(t, c.NoColor)
				assert.True(t, c.Debug)
				assert.Equal(t, ":9090", c.MetricsListen)
			},
		},
		{
			name:    "bad order",
			args:    []string{"--order=level"},
			wantErr: traverse.ErrUnknownOrder,
		},
		{
			name:    "count backwards",
			args:    []string{"--count-min=10", "--count-max=9"},
			wantErr: random.ErrInvalidRange,
		},
		{
			name:    "zero count",
			args:    []string{"--count-min=0"},
			wantErr: random.ErrInvalidRange,
		},
		{
			name:    "values backwards",
			args:    []string{"--value-min=10", "--value-max=9"},
			wantErr: random.ErrInvalidRange,
		},
		{
			name:    "zero speed step",
			args:    []string{"--speed-step=0"},
			wantErr: animate.ErrInvalidSpeed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := load(t, tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TREEVIZ_COUNT_MAX", "20")
	t.Setenv("TREEVIZ_ORDER", "in")

	c, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 20, c.Count.Max)
	assert.Equal(t, traverse.InOrder, c.Order)

	// flags win over the environment
	c, err = load(t, "--count-max=30")
	require.NoError(t, err)
	assert.Equal(t, 30, c.Count.Max)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "treeviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"speed: 800\n"+
			"order: In-order\n"+
			"value-max: 999\n"), 0o600))

	c, err := load(t, "--config="+path, "--value-max=50")
	require.NoError(t, err)
	assert.Equal(t, 800, c.Speed)
	assert.Equal(t, traverse.InOrder, c.Order)
	assert.Equal(t, 50, c.Values.Max, "flag should win over the file")

	_, err = load(t, "--config="+filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// Package config collects the settings of the tree visualizer from
// flags, TREEVIZ_* environment variables and an optional config file.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.lepak.sg/treeviz/animate"
	"go.lepak.sg/treeviz/random"
	"go.lepak.sg/treeviz/tree/traverse"
)

var log = logrus.WithField("component", "config")

const EnvPrefix = "TREEVIZ"

// Config keys. Each one is also the name of the flag that sets it.
const (
	KeyConfig        = "config"
	KeyDebug         = "debug"
	KeyNoColor       = "no-color"
	KeyMetricsListen = "metrics-listen"
	KeySeed          = "seed"
	KeyCountMin      = "count-min"
	KeyCountMax      = "count-max"
	KeyValueMin      = "value-min"
	KeyValueMax      = "value-max"
	KeySpeedMin      = "speed-min"
	KeySpeedMax      = "speed-max"
	KeySpeedStep     = "speed-step"
	KeySpeed         = "speed"
	KeyOrder         = "order"
)

type Config struct {
	// Count is the range the number of generated values is drawn from.
	Count random.Range
	// Values is the range each generated value is drawn from.
	Values random.Range

	SpeedRange animate.Speed
	// Speed is the setting, not the delay. It is always within
	// SpeedRange once loaded.
	Speed int

	Order traverse.Order

	// 0 seeds from the current time
	Seed int64

	NoColor       bool
	Debug         bool
	MetricsListen string
}

// Default returns a tree of 10 to 100 values between 1 and 100,
// animated in pre-order at speed 500 of 100 to 1000.
func Default() Config {
	return Config{
		Count:      random.Range{Min: 10, Max: 100},
		Values:     random.Range{Min: 1, Max: 100},
		SpeedRange: animate.DefaultSpeed,
		Speed:      500,
		Order:      traverse.PreOrder,
	}
}

// Delay returns the step delay for the configured speed.
func (c Config) Delay() time.Duration {
	return c.SpeedRange.Delay(c.Speed)
}

// Flags registers every setting on fs, with defaults from Default.
func Flags(fs *pflag.FlagSet) {
	d := Default()

	fs.String(KeyConfig, "", "config file (yaml, toml or json)")
	fs.Bool(KeyDebug, d.Debug, "debug logging")
	fs.Bool(KeyNoColor, d.NoColor, "disable colour output")
	fs.String(KeyMetricsListen, d.MetricsListen, "serve prometheus metrics on this address, e.g. :9090")
	fs.Int64(KeySeed, d.Seed, "random seed, 0 to seed from the clock")
	fs.Int(KeyCountMin, d.Count.Min, "minimum number of generated values")
	fs.Int(KeyCountMax, d.Count.Max, "maximum number of generated values")
	fs.Int(KeyValueMin, d.Values.Min, "smallest generated value")
	fs.Int(KeyValueMax, d.Values.Max, "largest generated value")
	fs.Int(KeySpeedMin, d.SpeedRange.Min, "slowest speed setting")
	fs.Int(KeySpeedMax, d.SpeedRange.Max, "fastest speed setting")
	fs.Int(KeySpeedStep, d.SpeedRange.Step, "speed setting increment")
	fs.Int(KeySpeed, d.Speed, "animation speed, higher is faster")
	fs.String(KeyOrder, d.Order.String(), "traversal order: pre, in or post")
}

// NewViper returns a viper bound to fs and to TREEVIZ_* environment
// variables, where TREEVIZ_COUNT_MAX sets count-max.
// Defaults are set too, so fs may be missing some of the flags.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	return v, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyNoColor, d.NoColor)
	v.SetDefault(KeyMetricsListen, d.MetricsListen)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyCountMin, d.Count.Min)
	v.SetDefault(KeyCountMax, d.Count.Max)
	v.SetDefault(KeyValueMin, d.Values.Min)
	v.SetDefault(KeyValueMax, d.Values.Max)
	v.SetDefault(KeySpeedMin, d.SpeedRange.Min)
	v.SetDefault(KeySpeedMax, d.SpeedRange.Max)
	v.SetDefault(KeySpeedStep, d.SpeedRange.Step)
	v.SetDefault(KeySpeed, d.Speed)
	v.SetDefault(KeyOrder, d.Order.String())
}

// Load reads the config file named by the config key, if any, then
// builds a Config out of v and validates it. An out of range speed
// is clamped rather than rejected.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
		}
		log.Debugf("using config file %s", v.ConfigFileUsed())
	}

	c := Config{
		Count:  random.Range{Min: v.GetInt(KeyCountMin), Max: v.GetInt(KeyCountMax)},
		Values: random.Range{Min: v.GetInt(KeyValueMin), Max: v.GetInt(KeyValueMax)},
		SpeedRange: animate.Speed{
			Min:  v.GetInt(KeySpeedMin),
			Max:  v.GetInt(KeySpeedMax),
			Step: v.GetInt(KeySpeedStep),
		},
		Speed:         v.GetInt(KeySpeed),
		Seed:          v.GetInt64(KeySeed),
		NoColor:       v.GetBool(KeyNoColor),
		Debug:         v.GetBool(KeyDebug),
		MetricsListen: v.GetString(KeyMetricsListen),
	}

	order, err := traverse.ParseOrder(v.GetString(KeyOrder))
	if err != nil {
		return Config{}, err
	}
	c.Order = order

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	if clamped := c.SpeedRange.Clamp(c.Speed); clamped != c.Speed {
		log.Debugf("speed %d clamped to %d", c.Speed, clamped)
		c.Speed = clamped
	}

	return c, nil
}

// Validate checks the ranges. Every generated tree must have at
// least one value.
func (c Config) Validate() error {
	if err := c.Count.Validate(); err != nil {
		return errors.Wrap(err, "count")
	}
	if c.Count.Min < 1 {
		return errors.Wrapf(random.ErrInvalidRange, "count %s: need at least 1 value", c.Count)
	}
	if err := c.Values.Validate(); err != nil {
		return errors.Wrap(err, "values")
	}
	return c.SpeedRange.Validate()
}

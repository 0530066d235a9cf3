// Package config loads curve parameters and self-check settings from a
// config file and ECARITH_* environment variables.
package config

import (
	"math"
	"math/big"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/internal/selfcheck"
)

const EnvPrefix = "ECARITH"

// Config is the decoded configuration.
type Config struct {
	Curve     CurveConfig `mapstructure:"curve"`
	Multiples [][]string  `mapstructure:"multiples"`
	Log       LogConfig   `mapstructure:"log"`
	Workers   int         `mapstructure:"workers"`
}

// CurveConfig names a preset or, when P is set, describes a custom curve.
// Integers are decimal or 0x-prefixed hex strings.
type CurveConfig struct {
	Name string `mapstructure:"name"`
	P    string `mapstructure:"p"`
	A    string `mapstructure:"a"`
	B    string `mapstructure:"b"`
	Gx   string `mapstructure:"gx"`
	Gy   string `mapstructure:"gy"`
	N    string `mapstructure:"n"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// New returns a viper instance with defaults and environment bindings set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("curve.name", curves.NameSecp256k1)
	for _, key := range []string{"curve.p", "curve.a", "curve.b", "curve.gx", "curve.gy", "curve.n"} {
		v.SetDefault(key, "")
	}
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("workers", runtime.NumCPU())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the file at path (if any) on top of the defaults.
func Load(path string) (*Config, error) {
	v := New()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}
	return FromViper(v)
}

// ReadFile merges the config file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	return nil
}

// FromViper decodes v into a Config.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		exactIntegerHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &cfg, nil
}

// maxExactFloat is the largest integer magnitude a float64 holds exactly.
const maxExactFloat = 1 << 53

// exactIntegerHook stops floating-point values from being turned into
// integer strings. YAML and JSON parsers read unquoted integers wider than
// 64 bits as float64, which drops their low digits.
func exactIntegerHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	if k := from.Kind(); k != reflect.Float32 && k != reflect.Float64 {
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) || math.Abs(f) > maxExactFloat {
		return nil, errors.Errorf("number %g lost precision when parsed; quote big integers as strings", f)
	}
	return strconv.FormatInt(int64(f), 10), nil
}

// Params builds the curve parameters described by the configuration.
func (c *Config) Params() (*curves.Params, error) {
	cc := c.Curve
	if cc.P == "" {
		params, err := curves.ByName(cc.Name)
		return params, errors.WithStack(err)
	}

	p, err := ParseInt(cc.P)
	if err != nil {
		return nil, errors.WithMessage(err, "curve.p")
	}
	a, err := parseOptional(cc.A, "curve.a")
	if err != nil {
		return nil, err
	}
	b, err := parseOptional(cc.B, "curve.b")
	if err != nil {
		return nil, err
	}

	var opts []curves.ParamOption
	if cc.Gx != "" || cc.Gy != "" {
		gx, err := ParseInt(cc.Gx)
		if err != nil {
			return nil, errors.WithMessage(err, "curve.gx")
		}
		gy, err := ParseInt(cc.Gy)
		if err != nil {
			return nil, errors.WithMessage(err, "curve.gy")
		}
		opts = append(opts, curves.WithGenerator(gx, gy))
	}
	if cc.N != "" {
		n, err := ParseInt(cc.N)
		if err != nil {
			return nil, errors.WithMessage(err, "curve.n")
		}
		opts = append(opts, curves.WithOrder(n))
	}

	name := cc.Name
	if name == "" || name == curves.NameSecp256k1 {
		name = "custom"
	}
	params, err := curves.NewParams(name, p, a, b, opts...)
	return params, errors.WithStack(err)
}

// Table returns the precomputed multiples to check. Configured multiples take
// precedence; secp256k1 falls back to its built-in table and any other curve
// with a generator to n multiples derived from it.
func (c *Config) Table(curve *curves.Curve, n int) (*selfcheck.Table, error) {
	if len(c.Multiples) > 0 {
		pts := make([]curves.Point, len(c.Multiples))
		for i, pair := range c.Multiples {
			if len(pair) != 2 {
				return nil, errors.Errorf("multiples[%d]: want [x, y], got %d values", i, len(pair))
			}
			x, err := ParseInt(pair[0])
			if err != nil {
				return nil, errors.WithMessagef(err, "multiples[%d].x", i)
			}
			y, err := ParseInt(pair[1])
			if err != nil {
				return nil, errors.WithMessagef(err, "multiples[%d].y", i)
			}
			pts[i] = curves.NewPoint(x, y)
		}
		table, err := selfcheck.NewTable(pts)
		return table, errors.WithStack(err)
	}

	if curve.Params().Name() == curves.NameSecp256k1 {
		return selfcheck.Secp256k1Table(), nil
	}
	table, err := selfcheck.ComputeTable(curve, n)
	return table, errors.WithStack(err)
}

// ParseInt parses a decimal or 0x-prefixed hexadecimal integer.
func ParseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Errorf("invalid integer %q", s)
	}
	return n, nil
}

func parseOptional(s, key string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	n, err := ParseInt(s)
	if err != nil {
		return nil, errors.WithMessage(err, key)
	}
	return n, nil
}

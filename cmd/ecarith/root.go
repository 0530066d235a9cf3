package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smallyu/go-ecarith/internal/config"
	"github.com/smallyu/go-ecarith/internal/crypto/curves"
)

// env carries what every subcommand needs once flags and config are merged.
type env struct {
	v      *viper.Viper
	cfg    *config.Config
	curve  *curves.Curve
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{v: config.New()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "ecarith",
		Short:         "Affine short-Weierstrass point arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.init(cfgFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.String("curve", curves.NameSecp256k1, "preset curve name")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int("workers", 0, "concurrent self-check workers")
	_ = e.v.BindPFlag("curve.name", flags.Lookup("curve"))
	_ = e.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = e.v.BindPFlag("workers", flags.Lookup("workers"))

	root.AddCommand(
		inverseCmd(e),
		addCmd(e),
		doubleCmd(e),
		mulCmd(e),
		verifyCmd(e),
	)
	return root
}

func (e *env) init(cfgFile string) error {
	if err := config.ReadFile(e.v, cfgFile); err != nil {
		return err
	}
	cfg, err := config.FromViper(e.v)
	if err != nil {
		return err
	}
	e.cfg = cfg

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	e.logger = logger

	params, err := cfg.Params()
	if err != nil {
		return err
	}
	if e.curve, err = curves.New(params); err != nil {
		return err
	}
	e.logger.Debug("curve loaded", zap.Stringer("params", params))
	return nil
}

func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log.level")
	}

	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Encoding = "console"
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

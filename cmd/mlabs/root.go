/*
 * root.go, part of mlabs.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	chem "github.com/rmera/mlabs"
	"github.com/rmera/mlabs/internal/config"
	"github.com/rmera/mlabs/model"
	"github.com/rmera/mlabs/predict"
)

var (
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:          "mlabs",
	Short:        "Descriptors and property predictions for crystal structures",
	SilenceUsage: true,
	Long: `mlabs turns a periodic structure into a fixed-form numeric descriptor
and feeds it to trained property models. Without models, a synthetic
prediction is given for every known property.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		path := config.Path(cfgPath)
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", path), zap.Int("models", len(cfg.MLModels)))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "settings file (default $"+config.EnvVar+" or "+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// Execute is called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func descriptorOptions() (*chem.DescriptorOptions, error) {
	return cfg.Descriptor.Options()
}

// newEngine loads the configured models and returns the engine for them.
func newEngine() (predict.Engine, model.Registry, error) {
	opts, err := descriptorOptions()
	if err != nil {
		return nil, nil, err
	}
	reg := model.Load(cfg.MLModels, logger)
	if len(reg) == 0 {
		logger.Info("no property models loaded, using synthetic predictions")
	}
	return predict.NewEngine(reg, opts), reg, nil
}

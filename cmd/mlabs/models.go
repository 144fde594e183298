/*
 * models.go, part of mlabs.
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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	chem "github.com/rmera/mlabs"
	"github.com/rmera/mlabs/model"
	"github.com/rmera/mlabs/predict"
)

var legendCmd = &cobra.Command{
	Use:   "legend [ID...]",
	Short: "Show the display metadata of property ids",
	Long:  `Without arguments, the known property ids are shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := args
		if len(ids) == 0 {
			ids = model.KnownIDs()
		}
		legend := predict.BuildLegend(ids)
		for _, id := range ids {
			l := legend[id]
			fmt.Printf("%-4s %-10s %-40s %-14s %d\n", id, l.Symbol, l.Name, l.Units, l.Rounding)
		}
		return nil
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the property models that load from the config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := model.Load(cfg.MLModels, logger)
		if len(reg) == 0 {
			fmt.Println("no models loaded, predictions will be synthetic")
			return nil
		}
		for _, id := range reg.IDs() {
			p := reg[id]
			md := p.Metadata()
			fmt.Printf("%-4s %-40s width=%-5d mae=%-10g r2=%.3f\n", id, predict.LegendFor(id).Name, p.Width(), md.MAE, md.R2)
		}
		return nil
	},
}

var scoreUpdate bool

var scoreCmd = &cobra.Command{
	Use:   "score MODEL DATA.json",
	Short: "Compute the MAE and r2 of a model on a labelled set",
	Long: `DATA.json is a list of {"structure": FILE, "value": V} objects. Relative
structure paths are taken from the directory of DATA.json. With --update, the
model file is rewritten with the new accuracy metadata.`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreUpdate, "update", false, "store the computed metadata in the model file")
	rootCmd.AddCommand(legendCmd, modelsCmd, scoreCmd)
}

type sample struct {
	Structure string  `json:"structure"`
	Value     float64 `json:"value"`
}

func runScore(cmd *cobra.Command, args []string) error {
	art, err := model.ReadArtifact(args[0])
	if err != nil {
		return err
	}
	p, err := art.Predictor()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	var samples []sample
	if err := json.Unmarshal(data, &samples); err != nil {
		return fmt.Errorf("invalid data file %s: %w", args[1], err)
	}
	opts, err := descriptorOptions()
	if err != nil {
		return err
	}
	opts.Overreach = true
	var xs [][]float64
	var ys []float64
	dir := filepath.Dir(args[1])
	for _, s := range samples {
		name := s.Structure
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		S, err := chem.FileRead(name)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", name, err)
		}
		D, err := chem.NewDescriptor(S, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if _, ok := model.Reconcile(D, p.Width()); !ok {
			logger.Info("structure too small for the model, skipped", zap.String("file", name), zap.Int("atoms", D.Atoms()))
			continue
		}
		xs = append(xs, D)
		ys = append(ys, s.Value)
	}
	md, err := model.Score(p, xs, ys)
	if err != nil {
		return err
	}
	fmt.Printf("samples=%d mae=%g r2=%.4f\n", len(xs), md.MAE, md.R2)
	if scoreUpdate {
		art.Metadata.MAE, art.Metadata.R2 = md.MAE, md.R2
		return model.Save(args[0], art)
	}
	return nil
}

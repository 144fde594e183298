/*
 * predict.go, part of mlabs.
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
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	chem "github.com/rmera/mlabs"
	"github.com/rmera/mlabs/internal/server"
	"github.com/rmera/mlabs/predict"
)

var predictJSON bool

var predictCmd = &cobra.Command{
	Use:   "predict FILE...",
	Short: "Predict the properties of one or more structures",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPredict,
}

func init() {
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "print the answers as JSON, keyed by file")
	rootCmd.AddCommand(predictCmd)
}

func predictFile(engine predict.Engine, name string) server.Response {
	S, err := chem.FileRead(name)
	if err != nil {
		return server.Response{Error: fmt.Sprintf("cannot read %s: %v", name, err)}
	}
	res, err := engine.Predict(S)
	if err != nil {
		return server.Response{Error: err.Error()}
	}
	return server.Response{Prediction: res, Legend: predict.BuildLegend(res.IDs())}
}

func printResponse(out io.Writer, name string, r server.Response) {
	fmt.Fprintf(out, "%s\n", name)
	if r.Error != "" {
		fmt.Fprintf(out, "  error: %s\n", r.Error)
		return
	}
	if len(r.Prediction) == 0 {
		fmt.Fprintf(out, "  no model could be applied\n")
		return
	}
	for _, id := range r.Prediction.IDs() {
		p, l := r.Prediction[id], r.Legend[id]
		fmt.Fprintf(out, "  %-8s %-40s %12g +/- %-8g %-12s r2=%.3f\n", l.Symbol, l.Name, p.Value, p.MAE, l.Units, p.R2)
	}
}

func runPredict(cmd *cobra.Command, args []string) error {
	engine, _, err := newEngine()
	if err != nil {
		return err
	}
	all := make(map[string]server.Response, len(args))
	failed := 0
	for _, name := range args {
		r := predictFile(engine, name)
		if r.Error != "" {
			failed++
			logger.Warn("prediction failed", zap.String("file", name), zap.String("error", r.Error))
		}
		if predictJSON {
			all[name] = r
			continue
		}
		printResponse(os.Stdout, name, r)
	}
	if predictJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(all); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d structures failed", failed, len(args))
	}
	return nil
}

/*
 * mlabs_test.go, part of mlabs.
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
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/mlabs/internal/config"
	"github.com/rmera/mlabs/model"
	"github.com/rmera/mlabs/predict"
)

func TestPredictFile(t *testing.T) {
	r := predictFile(predict.NewSynthetic(nil), "../../test/po.json")
	if r.Error != "" {
		t.Fatalf("unexpected error %s", r.Error)
	}
	if len(r.Prediction) != 5 || len(r.Legend) != 5 {
		t.Errorf("expected 5 properties, got %d and %d legend entries", len(r.Prediction), len(r.Legend))
	}
	var out bytes.Buffer
	printResponse(&out, "po.json", r)
	if !strings.Contains(out.String(), "isothermal bulk modulus") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	r = predictFile(predict.NewSynthetic(nil), "../../test/unknown.xyz")
	if r.Error == "" || r.Prediction != nil {
		t.Errorf("expected an error for an unknown element, got %+v", r)
	}
}

func TestScoreUpdate(t *testing.T) {
	dir := t.TempDir()
	art := filepath.Join(dir, "mlz_first.json")
	err := model.Save(art, &model.Artifact{
		Kind:      model.KindLinear,
		NFeatures: 2,
		Metadata:  &model.Metadata{PropID: "z"},
		Coef:      []float64{1, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	po, _ := filepath.Abs("../../test/po.json")
	nacl, _ := filepath.Abs("../../test/nacl.xyz")
	data, _ := json.Marshal([]sample{{Structure: po, Value: 82.0 / 117.0}, {Structure: nacl, Value: 5}})
	dataName := filepath.Join(dir, "data.json")
	if err := os.WriteFile(dataName, data, 0o600); err != nil {
		t.Fatal(err)
	}
	rootCmd.SetArgs([]string{"--config", filepath.Join(dir, "none.yaml"), "score", art, dataName, "--update"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("score: %v", err)
	}
	got, err := model.ReadArtifact(art)
	if err != nil {
		t.Fatal(err)
	}
	if got.Metadata.PropID != "z" || !(got.Metadata.MAE > 0) || math.IsNaN(got.Metadata.R2) {
		t.Errorf("metadata was not updated: %+v", got.Metadata)
	}
}

func TestConfigWrite(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "settings.yaml")
	rootCmd.SetArgs([]string{"--config", filepath.Join(dir, "none.yaml"), "config", "--write", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config: %v", err)
	}
	got, err := config.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if !got.ServeUI || got.Server.Addr != ":5000" {
		t.Errorf("unexpected settings written: %+v", got)
	}
}

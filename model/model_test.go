/*
 * model_test.go, part of mlabs.
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

package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func linearArtifact(id string) *Artifact {
	return &Artifact{
		Kind:      KindLinear,
		NFeatures: 4,
		Metadata:  &Metadata{PropID: id, MAE: 12.34, R2: 0.87},
		Coef:      []float64{1, 2, 3, 4},
		Intercept: 0.5,
	}
}

func forestArtifact(id string) *Artifact {
	stump := func(left, right float64) Tree {
		return Tree{Nodes: []Node{
			{Feature: 0, Threshold: 0.5, Left: 1, Right: 2},
			{Feature: -1, Value: left},
			{Feature: -1, Value: right},
		}}
	}
	return &Artifact{
		Kind:      KindForest,
		NFeatures: 2,
		Metadata:  &Metadata{PropID: id, MAE: 1.26, R2: 0.5},
		Trees:     []Tree{stump(1, 3), stump(2, 5)},
	}
}

func TestPredictors(Te *testing.T) {
	lin, err := linearArtifact("").Predictor()
	if err != nil {
		Te.Fatal(err)
	}
	v, err := lin.Predict([]float64{1, 1, 1, 1})
	if err != nil || v != 10.5 {
		Te.Errorf("linear model: expected 10.5, got %v (%v)", v, err)
	}
	if _, err := lin.Predict([]float64{1, 1}); err == nil {
		Te.Errorf("a short input should give an error")
	}
	forest, err := forestArtifact("k").Predictor()
	if err != nil {
		Te.Fatal(err)
	}
	if v, _ := forest.Predict([]float64{0, 9}); v != 1.5 {
		Te.Errorf("forest: expected 1.5, got %v", v)
	}
	if v, _ := forest.Predict([]float64{1, 9}); v != 4 {
		Te.Errorf("forest: expected 4, got %v", v)
	}
	if _, err := forest.Predict([]float64{math.NaN(), 0}); err == nil {
		Te.Errorf("a NaN input should give an error")
	}
	knn, err := (&Artifact{
		Kind:      KindKNN,
		NFeatures: 2,
		Metadata:  &Metadata{},
		K:         2,
		Points:    [][]float64{{0, 0}, {1, 0}, {10, 10}},
		Targets:   []float64{1, 3, 100},
	}).Predictor()
	if err != nil {
		Te.Fatal(err)
	}
	if v, _ := knn.Predict([]float64{0.2, 0}); v != 2 {
		Te.Errorf("knn: expected 2, got %v", v)
	}
}

func TestForestCycle(Te *testing.T) {
	A := forestArtifact("k")
	A.Trees[1].Nodes[2] = Node{Feature: 1, Threshold: 0, Left: 0, Right: 0}
	p, err := A.Predictor()
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := p.Predict([]float64{1, 1}); err == nil {
		Te.Errorf("a tree with a cycle should fail to predict")
	}
}

func TestInvalidArtifacts(Te *testing.T) {
	A := linearArtifact("z")
	A.Metadata = nil
	if _, err := A.Predictor(); err == nil {
		Te.Errorf("an artifact without metadata should have no predictor")
	}
	B := linearArtifact("z")
	B.Kind = "svm"
	if _, err := B.Predictor(); err == nil {
		Te.Errorf("an unknown kind should have no predictor")
	}
	C := forestArtifact("")
	C.Trees[0].Nodes[0].Left = 7
	if _, err := C.Predictor(); err == nil {
		Te.Errorf("a tree with children out of range should have no predictor")
	}
}

func TestLoad(Te *testing.T) {
	dir := Te.TempDir()
	write := func(name string, A *Artifact) string {
		p := filepath.Join(dir, name)
		if err := Save(p, A); err != nil {
			Te.Fatal(err)
		}
		return p
	}
	noMeta := linearArtifact("")
	noMeta.Metadata = nil
	garbage := filepath.Join(dir, "mly_garbage.json")
	if err := os.WriteFile(garbage, []byte("not json"), 0o644); err != nil {
		Te.Fatal(err)
	}
	paths := []string{
		write("mlz_bulk.json", linearArtifact("")),
		write("forest.json.zst", forestArtifact("k")),
		write("mlx_nometa.json", noMeta),
		garbage,
		filepath.Join(dir, "missing.json"),
		write("unnamed.json", linearArtifact("")),
		write("mlq_unknown.json", linearArtifact("")),
	}
	reg := Load(paths, zap.NewExample())
	if diff := cmp.Diff([]string{"6", "7", "k", "z"}, reg.IDs()); diff != "" {
		Te.Errorf("wrong ids in registry (-want +got):\n%s", diff)
	}
	if reg["k"].Width() != 2 || reg["z"].Width() != 4 {
		Te.Errorf("wrong model widths")
	}
	if m := reg["z"].Metadata(); m.MAE != 12.34 || m.R2 != 0.87 {
		Te.Errorf("wrong metadata %v", m)
	}
	if len(Load(nil, nil)) != 0 {
		Te.Errorf("no paths should give an empty registry")
	}
}

func TestPropIDFromFilename(Te *testing.T) {
	cases := map[string]string{
		"/models/mlz_bulk.pkl": "z",
		"mlm_melting.json.zst": "m",
		"mla_something.json":   "",
		"ml_z.json":            "",
		"xlz_bulk.json":        "",
	}
	for name, want := range cases {
		got, ok := PropIDFromFilename(name)
		if got != want || ok != (want != "") {
			Te.Errorf("%s: expected %q, got %q", name, want, got)
		}
	}
}

func TestScore(Te *testing.T) {
	lin, _ := linearArtifact("z").Predictor()
	xs := [][]float64{{1, 0, 0, 0, 9}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
	ys := []float64{1.5, 2.5, 3.5, 4.5}
	m, err := Score(lin, xs, ys)
	if err != nil {
		Te.Fatal(err)
	}
	if m.MAE != 0 || math.Abs(m.R2-1) > 1e-12 || m.PropID != "z" {
		Te.Errorf("a perfect model should have MAE 0 and R2 1, got %+v", m)
	}
	if _, err := Score(lin, [][]float64{{1}}, []float64{1}); err == nil {
		Te.Errorf("a short input should give an error")
	}
}

func TestReconcile(Te *testing.T) {
	d := []float64{1, 2, 3, 4}
	if _, ok := Reconcile(d, 6); ok {
		Te.Errorf("a short descriptor should not fit")
	}
	if in, ok := Reconcile(d, 2); !ok || len(in) != 2 || in[1] != 2 {
		Te.Errorf("a long descriptor should be truncated, got %v", in)
	}
	if in, ok := Reconcile(d, 4); !ok || len(in) != 4 {
		Te.Errorf("a descriptor with the right length should be used as is, got %v", in)
	}
}

func TestErrorDecoration(Te *testing.T) {
	p, err := linearArtifact("z").Predictor()
	if err != nil {
		Te.Fatal(err)
	}
	_, err = p.Predict([]float64{1, 2})
	e, ok := err.(*Error)
	if !ok {
		Te.Fatalf("expected *Error, got %T: %v", err, err)
	}
	e.Decorate("Engine")
	if d := e.Decorate(""); len(d) != 2 || d[1] != "Engine" {
		Te.Errorf("decoration was not kept: %v", d)
	}
}

/*
 * predict_test.go, part of mlabs.
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

package predict

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	chem "github.com/rmera/mlabs"
	"github.com/rmera/mlabs/model"
	v3 "github.com/rmera/mlabs/v3"
)

//fake is a model that returns a fixed value and remembers its last input.
type fake struct {
	width int
	value float64
	meta  model.Metadata
	fail  bool
	got   []float64
}

func (F *fake) Width() int               { return F.width }
func (F *fake) Metadata() model.Metadata { return F.meta }
func (F *fake) Predict(x []float64) (float64, error) {
	if F.fail {
		return 0, fmt.Errorf("the model exploded")
	}
	F.got = append([]float64(nil), x...)
	return F.value, nil
}

func poCubic(Te *testing.T) *chem.Structure {
	cell, _ := v3.NewMatrix([]float64{4, 0, 0, 0, 4, 0, 0, 0, 4})
	S, err := chem.NewStructure(cell, []*chem.Atom{{Symbol: "Po"}}, v3.Zeros(1), [3]bool{true, true, true})
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

func overreachDescriptor(Te *testing.T, S *chem.Structure) chem.Descriptor {
	opts := chem.DefaultDescriptorOptions()
	opts.Overreach = true
	D, err := chem.NewDescriptor(S, opts)
	if err != nil {
		Te.Fatal(err)
	}
	return D
}

func TestSynthetic(Te *testing.T) {
	S := poCubic(Te)
	E := NewEngine(nil, nil)
	if _, ok := E.(*Synthetic); !ok {
		Te.Fatalf("an empty registry should give a synthetic engine, got %T", E)
	}
	res, err := E.Predict(S)
	if err != nil {
		Te.Fatal(err)
	}
	want := Round(overreachDescriptor(Te, S).Sum(), 0)
	fmt.Println("Synthetic value:", want)
	if diff := cmp.Diff([]string{"k", "m", "x", "y", "z"}, res.IDs()); diff != "" {
		Te.Errorf("wrong properties (-want +got):\n%s", diff)
	}
	for id, r := range res {
		if r != (Result{Value: want, MAE: 0, R2: 0}) {
			Te.Errorf("property %s: expected value %v with mae=r2=0, got %+v", id, want, r)
		}
	}
}

func TestWidthReconciliation(Te *testing.T) {
	S := poCubic(Te)
	D := overreachDescriptor(Te, S)
	short := &fake{width: 4, value: 1, meta: model.Metadata{MAE: 2, R2: 0.9}}
	exact := &fake{width: len(D), value: 1}
	wide := &fake{width: len(D) + 2, value: 1}
	reg := model.Registry{"z": short, "y": exact, "m": wide}
	E := NewEngine(reg, nil)
	if _, ok := E.(*ModelBacked); !ok {
		Te.Fatalf("a registry with models should give a model-backed engine, got %T", E)
	}
	res, err := E.Predict(S)
	if err != nil {
		Te.Fatal(err)
	}
	if _, ok := res["m"]; ok {
		Te.Errorf("a model wider than the descriptor should be skipped")
	}
	if diff := cmp.Diff([]float64(D[:4]), short.got); diff != "" {
		Te.Errorf("the short model should get the first 4 elements (-want +got):\n%s", diff)
	}
	if len(exact.got) != len(D) {
		Te.Errorf("the exact model got %d elements, expected %d", len(exact.got), len(D))
	}
	if res["z"] != (Result{Value: 1, MAE: 2, R2: 0.9}) {
		Te.Errorf("wrong result %+v", res["z"])
	}
}

func TestRounding(Te *testing.T) {
	reg := model.Registry{
		"k": &fake{width: 2, value: 3.14159, meta: model.Metadata{MAE: 0.26, R2: 0.123456}},
		"z": &fake{width: 2, value: 12.5, meta: model.Metadata{MAE: 7.4, R2: 0.5}},
		"7": &fake{width: 2, value: -2.5, meta: model.Metadata{MAE: 0.6, R2: 0.1}},
	}
	res, err := NewModelBacked(reg, nil).Predict(poCubic(Te))
	if err != nil {
		Te.Fatal(err)
	}
	want := Results{
		"k": {Value: 3.1, MAE: 0.3, R2: 0.123456},
		"z": {Value: 13, MAE: 7, R2: 0.5},
		"7": {Value: -3, MAE: 1, R2: 0.1},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		Te.Errorf("wrong rounding (-want +got):\n%s", diff)
	}
	for _, id := range res.IDs() {
		if LegendFor(id).Name == "" {
			Te.Errorf("no legend for %s", id)
		}
	}
}

func TestPredictorFailure(Te *testing.T) {
	reg := model.Registry{
		"k": &fake{width: 2, value: 3},
		"z": &fake{width: 2, fail: true},
	}
	res, err := NewEngine(reg, nil).Predict(poCubic(Te))
	if res != nil {
		Te.Errorf("no partial results should be returned, got %v", res)
	}
	var perr *PredictorError
	if !errors.As(err, &perr) || perr.PropID != "z" {
		Te.Fatalf("expected a PredictorError for z, got %v", err)
	}
	fmt.Println(err)
}

func TestUnknownElement(Te *testing.T) {
	S := poCubic(Te)
	S.Atoms[0].Symbol = "Zz"
	for _, E := range []Engine{NewSynthetic(nil), NewModelBacked(model.Registry{"z": &fake{width: 2}}, nil)} {
		_, err := E.Predict(S)
		var uerr *chem.UnknownElementError
		if !errors.As(err, &uerr) {
			Te.Errorf("%T: expected an UnknownElementError, got %v", E, err)
		}
	}
}

func TestLegend(Te *testing.T) {
	L := BuildLegend([]string{"x", "99"})
	if L["x"].Symbol != "C<sub>p</sub>" || L["x"].Units != "J K-1 g-at.-1" {
		Te.Errorf("wrong legend for x: %+v", L["x"])
	}
	want := Legend{Name: "Unspecified property 99", Units: "arb.u.", Symbol: "P99", Rounding: 0}
	if diff := cmp.Diff(want, L["99"]); diff != "" {
		Te.Errorf("wrong legend for an unknown id (-want +got):\n%s", diff)
	}
	if LegendFor("k").Rounding != 1 {
		Te.Errorf("k should be rounded to 1 decimal")
	}
}

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

package predict

import (
	"fmt"
	"math"
	"sort"
	"strings"

	chem "github.com/rmera/mlabs"
	"github.com/rmera/mlabs/model"
)

//Result is the prediction for one property. Value and MAE are rounded to the
//precision of the property, R2 is not rounded.
type Result struct {
	Value float64 `json:"value"`
	MAE   float64 `json:"mae"`
	R2    float64 `json:"r2"`
}

//Results maps property ids to their predictions.
type Results map[string]Result

//IDs returns the property ids in R, sorted.
func (R Results) IDs() []string {
	ret := make([]string, 0, len(R))
	for k := range R {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Engine predicts properties for a structure. Engines can be used concurrently.
type Engine interface {
	Predict(S *chem.Structure) (Results, error)
}

//NewEngine returns a ModelBacked engine for the models in reg or, if reg is empty,
//a Synthetic engine. opts are the descriptor options (the defaults if nil);
//overreach is always used.
func NewEngine(reg model.Registry, opts *chem.DescriptorOptions) Engine {
	if len(reg) == 0 {
		return NewSynthetic(opts)
	}
	return NewModelBacked(reg, opts)
}

func overreaching(opts *chem.DescriptorOptions) *chem.DescriptorOptions {
	if opts == nil {
		opts = chem.DefaultDescriptorOptions()
	}
	o := *opts
	o.Overreach = true
	return &o
}

//Round rounds v to the given number of decimals, halves away from zero.
func Round(v float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(v)
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

//Synthetic is an engine that uses no models. It reports, for every known property,
//the sum of the descriptor components rounded to an integer, with MAE and R2 of 0.
type Synthetic struct {
	opts *chem.DescriptorOptions
}

//NewSynthetic returns a Synthetic engine with the given descriptor options.
func NewSynthetic(opts *chem.DescriptorOptions) *Synthetic {
	return &Synthetic{opts: overreaching(opts)}
}

func (E *Synthetic) Predict(S *chem.Structure) (Results, error) {
	D, err := chem.NewDescriptor(S, E.opts)
	if err != nil {
		return nil, err
	}
	v := Round(D.Sum(), 0)
	ret := make(Results)
	for _, id := range model.KnownIDs() {
		ret[id] = Result{Value: v, MAE: 0, R2: 0}
	}
	return ret, nil
}

//ModelBacked is an engine that predicts with trained models.
type ModelBacked struct {
	reg  model.Registry
	ids  []string
	opts *chem.DescriptorOptions
}

//NewModelBacked returns an engine for the models in reg. reg must not be modified afterwards.
func NewModelBacked(reg model.Registry, opts *chem.DescriptorOptions) *ModelBacked {
	return &ModelBacked{reg: reg, ids: reg.IDs(), opts: overreaching(opts)}
}

//Predict returns the predictions of every model that gets enough descriptor elements for S.
//Models that need more elements than the descriptor of S has are skipped. Longer descriptors
//are truncated to the model width. If any model fails, no results are returned, only a PredictorError.
func (E *ModelBacked) Predict(S *chem.Structure) (Results, error) {
	D, err := chem.NewDescriptor(S, E.opts)
	if err != nil {
		return nil, err
	}
	ret := make(Results, len(E.ids))
	for _, id := range E.ids {
		m := E.reg[id]
		in, ok := model.Reconcile(D, m.Width())
		if !ok {
			continue
		}
		v, err := m.Predict(in)
		if err != nil {
			return nil, &PredictorError{PropID: id, Err: err}
		}
		meta := m.Metadata()
		dec := model.Rounding(id)
		ret[id] = Result{
			Value: Round(v, dec),
			MAE:   Round(meta.MAE, dec),
			R2:    meta.R2,
		}
	}
	return ret, nil
}

//PredictorError is returned when a model fails to predict. It aborts the whole prediction.
type PredictorError struct {
	PropID string
	Err    error
	deco   []string
}

func (err *PredictorError) Error() string {
	msg := fmt.Sprintf("model for property %s failed: %v", err.PropID, err.Err)
	if len(err.deco) > 0 {
		msg += " (" + strings.Join(err.deco, " < ") + ")"
	}
	return msg
}

func (err *PredictorError) Unwrap() error { return err.Err }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *PredictorError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

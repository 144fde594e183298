/*
 * score.go, part of mlabs.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

//Score returns the mean absolute error and the coefficient of determination of the predictions of p
//for the inputs xs, against the true values ys. Inputs longer than the model width are truncated;
//shorter ones give an error. The PropID of the returned Metadata is the one of p.
func Score(p Predictor, xs [][]float64, ys []float64) (Metadata, error) {
	if len(xs) != len(ys) || len(xs) == 0 {
		return Metadata{}, &Error{fmt.Sprintf("%d inputs and %d values", len(xs), len(ys)), []string{"Score"}}
	}
	preds := make([]float64, len(xs))
	abserr := make([]float64, len(xs))
	for i, x := range xs {
		in, ok := Reconcile(x, p.Width())
		if !ok {
			return Metadata{}, &Error{fmt.Sprintf("input %d has %d features, model needs %d", i, len(x), p.Width()), []string{"Score"}}
		}
		v, err := p.Predict(in)
		if err != nil {
			return Metadata{}, err
		}
		preds[i] = v
		abserr[i] = math.Abs(v - ys[i])
	}
	return Metadata{
		PropID: p.Metadata().PropID,
		MAE:    stat.Mean(abserr, nil),
		R2:     stat.RSquaredFrom(preds, ys, nil),
	}, nil
}

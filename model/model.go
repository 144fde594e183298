/*
 * model.go, part of mlabs.
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
	"strings"

	"gonum.org/v1/gonum/floats"
)

//Metadata is the accuracy information attached to a trained model.
//PropID, if not empty, is the property the model predicts.
type Metadata struct {
	PropID string  `json:"prop_id,omitempty"`
	MAE    float64 `json:"mae"`
	R2     float64 `json:"r2"`
}

//Predictor is a trained model. It takes vectors of exactly Width() elements.
type Predictor interface {
	Predict(x []float64) (float64, error)
	Width() int
	Metadata() Metadata
}

//Reconcile returns the input for a model of the given width built from the descriptor d: d itself if
//the lengths match, its first width elements if d is longer. It returns false if d is too short.
//The returned slice shares memory with d.
func Reconcile(d []float64, width int) ([]float64, bool) {
	if len(d) < width {
		return nil, false
	}
	return d[:width], true
}

func checkInput(x []float64, width int, caller string) error {
	if len(x) != width {
		return &Error{fmt.Sprintf("input has %d features, model expects %d", len(x), width), []string{caller}}
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &Error{fmt.Sprintf("non-finite feature %d", i), []string{caller}}
		}
	}
	return nil
}

//Linear is a linear regression model.
type Linear struct {
	meta      Metadata
	coef      []float64
	intercept float64
}

func (L *Linear) Width() int         { return len(L.coef) }
func (L *Linear) Metadata() Metadata { return L.meta }

func (L *Linear) Predict(x []float64) (float64, error) {
	if err := checkInput(x, L.Width(), "Linear.Predict"); err != nil {
		return 0, err
	}
	return L.intercept + floats.Dot(L.coef, x), nil
}

//Node is a node of a regression tree. Leaves have Feature -1 and carry the Value.
//For other nodes, inputs with x[Feature] <= Threshold go to the Left child.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

//Tree is a regression tree. The first node is the root.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

func (T Tree) validate(width int) error {
	if len(T.Nodes) == 0 {
		return fmt.Errorf("empty tree")
	}
	for i, n := range T.Nodes {
		if n.Feature < 0 {
			continue
		}
		if n.Feature >= width {
			return fmt.Errorf("node %d uses feature %d of %d", i, n.Feature, width)
		}
		if n.Left < 0 || n.Left >= len(T.Nodes) || n.Right < 0 || n.Right >= len(T.Nodes) {
			return fmt.Errorf("node %d has children out of range", i)
		}
	}
	return nil
}

//walk returns the value of the leaf that x reaches. Cycles in the tree give an error.
func (T Tree) walk(x []float64) (float64, error) {
	i := 0
	for steps := 0; steps <= len(T.Nodes); steps++ {
		n := T.Nodes[i]
		if n.Feature < 0 {
			return n.Value, nil
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return 0, fmt.Errorf("tree has a cycle")
}

//Forest is an ensemble of regression trees. The prediction is the mean of the
//values predicted by each tree.
type Forest struct {
	meta  Metadata
	width int
	trees []Tree
}

func (F *Forest) Width() int         { return F.width }
func (F *Forest) Metadata() Metadata { return F.meta }

func (F *Forest) Predict(x []float64) (float64, error) {
	if err := checkInput(x, F.width, "Forest.Predict"); err != nil {
		return 0, err
	}
	vals := make([]float64, len(F.trees))
	for i, t := range F.trees {
		v, err := t.walk(x)
		if err != nil {
			return 0, &Error{fmt.Sprintf("tree %d: %s", i, err), []string{"Forest.Predict"}}
		}
		vals[i] = v
	}
	return floats.Sum(vals) / float64(len(vals)), nil
}

//KNN is a k-nearest-neighbours regressor. The prediction is the mean target
//of the K reference points closest (euclidean distance) to the input.
type KNN struct {
	meta    Metadata
	k       int
	points  [][]float64
	targets []float64
}

func (K *KNN) Width() int         { return len(K.points[0]) }
func (K *KNN) Metadata() Metadata { return K.meta }

func (K *KNN) Predict(x []float64) (float64, error) {
	if err := checkInput(x, K.Width(), "KNN.Predict"); err != nil {
		return 0, err
	}
	dists := make([]float64, len(K.points))
	for i, p := range K.points {
		dists[i] = floats.Distance(p, x, 2)
	}
	inds := make([]int, len(dists))
	floats.Argsort(dists, inds)
	k := K.k
	if k > len(inds) {
		k = len(inds)
	}
	var sum float64
	for _, i := range inds[:k] {
		sum += K.targets[i]
	}
	return sum / float64(k), nil
}

//Error is the error type for the model package.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return err.message
	}
	return fmt.Sprintf("%s (%s)", err.message, strings.Join(err.deco, " < "))
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

/*
 * geometric.go, part of mlabs.
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

package chem

import (
	"fmt"

	v3 "github.com/rmera/mlabs/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//CenterOfMass returns the center of mass the atoms represented by the coordinates in geometry
//and the masses in mass, and an error. If mass is nil, or the masses add up to zero,
//it calculates the geometric center.
func CenterOfMass(geometry *v3.Matrix, mass []float64) ([3]float64, error) {
	var ret [3]float64
	if geometry == nil {
		return ret, newError("nil matrix to get the center of mass", "CenterOfMass")
	}
	n := geometry.NVecs()
	if n == 0 {
		return ret, nil
	}
	if mass != nil && len(mass) != n {
		return ret, newError(fmt.Sprintf("%d masses for %d atoms", len(mass), n), "CenterOfMass")
	}
	if mass == nil || floats.Sum(mass) <= appzero {
		mass = make([]float64, n)
		floats.AddConst(1, mass)
	}
	w := mat.NewDense(1, n, mass)
	var c mat.Dense
	c.Mul(w, geometry.Dense)
	c.Scale(1.0/floats.Sum(mass), &c)
	copy(ret[:], c.RawRowView(0))
	return ret, nil
}

//MassCenter returns the center of mass of the atoms in M, with coordinates
//in coords.
func MassCenter(M Masser, coords *v3.Matrix) ([3]float64, error) {
	mass, err := M.Masses()
	if err != nil {
		return [3]float64{}, errDecorate(err, "MassCenter")
	}
	com, err := CenterOfMass(coords, mass)
	return com, errDecorate(err, "MassCenter")
}

//BoxCenter returns the center of the axis-aligned box that bounds all the
//vectors in geometry.
func BoxCenter(geometry *v3.Matrix) [3]float64 {
	var ret [3]float64
	min, max := geometry.Extent()
	for i := range ret {
		ret[i] = 0.5 * (min[i] + max[i])
	}
	return ret
}

//Fractional returns the coordinates in coords expressed in the basis of
//the lattice vectors in cell (one per row). It returns an error if the
//cell is singular.
func Fractional(coords, cell *v3.Matrix) (*v3.Matrix, error) {
	inv, err := cell.Inverse()
	if err != nil {
		return nil, errDecorate(err, "Fractional")
	}
	ret := v3.Zeros(coords.NVecs())
	ret.Mul(coords, inv)
	return ret, nil
}

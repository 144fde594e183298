/*
 * gocoords.go, part of mlabs.
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

package v3

import (
	"gonum.org/v1/gonum/floats"
)

//METHODS

//AddVec adds the vector vec to each vector of A, and puts the result in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	F.addScaledVec(A, vec, 1)
}

//SubVec substracts the vector vec from each vector of A, and puts the result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	F.addScaledVec(A, vec, -1)
}

func (F *Matrix) addScaledVec(A, vec *Matrix, alpha float64) {
	n := A.NVecs()
	if F.NVecs() != n || vec.NVecs() != 1 {
		panic(ErrShape)
	}
	v := vec.RawRowView(0)
	for i := 0; i < n; i++ {
		row := F.RawRowView(i)
		copy(row, A.RawRowView(i))
		floats.AddScaled(row, alpha, v)
	}
}

//SomeVecs puts in the receiver the vectors of A with indexes in clist.
//The receiver must have as many vectors as elements has clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	n := A.NVecs()
	for key, val := range clist {
		if val < 0 || val >= n {
			panic(ErrIndexOutOfRange)
		}
		copy(F.RawRowView(key), A.RawRowView(val))
	}
}

//Norms puts the euclidean norm of each vector of F in dst, which is allocated if nil,
//and returns it.
func (F *Matrix) Norms(dst []float64) []float64 {
	n := F.NVecs()
	if dst == nil {
		dst = make([]float64, n)
	}
	if len(dst) != n {
		panic(ErrShape)
	}
	for i := 0; i < n; i++ {
		dst[i] = floats.Norm(F.RawRowView(i), 2)
	}
	return dst
}

//Extent returns the minimum and maximum values for each of the 3 columns of F.
//For an empty matrix both are zero.
func (F *Matrix) Extent() (min, max [3]float64) {
	n := F.NVecs()
	for i := 0; i < n; i++ {
		row := F.RawRowView(i)
		for j := 0; j < 3; j++ {
			if i == 0 || row[j] < min[j] {
				min[j] = row[j]
			}
			if i == 0 || row[j] > max[j] {
				max[j] = row[j]
			}
		}
	}
	return min, max
}

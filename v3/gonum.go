/*
 * gonum.go, part of mlabs.
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

//gonum.go contains most of what is needed for handling the gonum/mat types.

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. The underlying implementation is gonum's Dense.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space. The name of some funcitions in
//the library reflect this.
type Matrix struct {
	*mat.Dense
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
//If vecs is 0, the returned matrix is empty but not nil.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs < 0 {
		panic(ErrShape)
	}
	if vecs == 0 {
		return &Matrix{new(mat.Dense)}
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NewMatrix generates and returns a Matrix with 3 columns from data. The data slice
//is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice lenght %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return Zeros(0), nil
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//NVecs returns the number of (row) vectors in F. It is 0 for an empty matrix.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil || F.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//VecView returns view of the given vector of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	if i >= F.NVecs() || i < 0 {
		panic(ErrIndexOutOfRange)
	}
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Clone returns a deep copy of F.
func (F *Matrix) Clone() *Matrix {
	n := F.NVecs()
	if n == 0 {
		return Zeros(0)
	}
	ret := Zeros(n)
	ret.Copy(F.Dense)
	return ret
}

//Inverse returns the inverse of the 3x3 matrix F, or an error if
//F is not a 3x3 matrix or is singular.
func (F *Matrix) Inverse() (*Matrix, error) {
	if F.NVecs() != 3 {
		return nil, &Error{"Only 3x3 matrices can be inverted", []string{"Inverse"}, true}
	}
	ret := Zeros(3)
	if err := ret.Dense.Inverse(F.Dense); err != nil {
		return nil, &Error{"Singular matrix: " + err.Error(), []string{"Inverse"}, true}
	}
	return ret, nil
}

//Mul wraps mat.Dense.Mul to take care of the empty matrices, for which
//the product is also empty.
func (F *Matrix) Mul(A, B *Matrix) {
	if A.NVecs() == 0 {
		return
	}
	F.Dense.Mul(A.Dense, B.Dense)
}

//String returns a human-readable representation of F.
func (F *Matrix) String() string {
	n := F.NVecs()
	if n == 0 {
		return "[]"
	}
	rows := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v := F.RawRowView(i)
		rows = append(rows, fmt.Sprintf("[%8.3f %8.3f %8.3f]", v[0], v[1], v[2]))
	}
	return strings.Join(rows, "\n")
}

//the same as chem.Error but avoid circular import.
type errorInt interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

//Error is the error type for the v3 package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
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

//Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("mlabs/v3: A Matrix should have 3 columns")
	ErrShape           = PanicMsg("mlabs/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("mlabs/v3: index out of range")
)

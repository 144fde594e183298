/*
 * v3_test.go, part of mlabs.
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
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestGeo(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	fmt.Println("View\n", A, "\n", View)
	if A.At(1, 0) != 100 {
		Te.Errorf("changes in the view were not reflected in the matrix")
	}
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Errorf("a slice of 2 elements should not make a matrix")
	}
}

func TestEmpty(Te *testing.T) {
	E := Zeros(0)
	if E.NVecs() != 0 {
		Te.Errorf("empty matrix has %d vectors", E.NVecs())
	}
	C := E.Clone()
	if C.NVecs() != 0 {
		Te.Errorf("clone of an empty matrix has %d vectors", C.NVecs())
	}
	if n := E.Norms(nil); len(n) != 0 {
		Te.Errorf("empty matrix gave norms %v", n)
	}
	min, max := E.Extent()
	if min != [3]float64{} || max != [3]float64{} {
		Te.Errorf("empty matrix extent %v %v", min, max)
	}
	fmt.Println("Empty:", E)
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	B.SomeVecs(A, cind)
	fmt.Println(A, "\n", B)
	for k, v := range cind {
		if B.At(k, 2) != A.At(v, 2) {
			Te.Errorf("vector %d should be vector %d of the original", k, v)
		}
	}
	B.Set(1, 1, 55)
	if A.At(3, 1) == 55 {
		Te.Errorf("SomeVecs should copy, not view")
	}
}

func TestAddSub(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6}
	A, _ := NewMatrix(a)
	Row, _ := NewMatrix([]float64{10, 20, 30})
	B := Zeros(2)
	B.AddVec(A, Row)
	if B.At(1, 2) != 36 {
		Te.Errorf("AddVec: expected 36, got %v", B.At(1, 2))
	}
	B.SubVec(B, Row)
	if !mat.Equal(A, B) {
		Te.Errorf("SubVec should undo AddVec:\n%v\n%v", A, B)
	}
	n := A.Norms(nil)
	if math.Abs(n[0]-math.Sqrt(14)) > 1e-12 {
		Te.Errorf("wrong norm %v", n[0])
	}
	min, max := A.Extent()
	if min != [3]float64{1, 2, 3} || max != [3]float64{4, 5, 6} {
		Te.Errorf("wrong extent %v %v", min, max)
	}
}

func TestInverse(Te *testing.T) {
	cell, _ := NewMatrix([]float64{4, 0, 0, 0, 5, 0, 0, 0, 2})
	inv, err := cell.Inverse()
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(inv.At(1, 1)-0.2) > 1e-12 {
		Te.Errorf("wrong inverse:\n%v", inv)
	}
	sing, _ := NewMatrix([]float64{1, 0, 0, 2, 0, 0, 0, 0, 1})
	if _, err := sing.Inverse(); err == nil {
		Te.Errorf("a singular cell should not be invertible")
	}
	pts, _ := NewMatrix([]float64{2, 5, 1})
	frac := Zeros(1)
	frac.Mul(pts, inv)
	if math.Abs(frac.At(0, 0)-0.5) > 1e-12 || math.Abs(frac.At(0, 1)-1) > 1e-12 || math.Abs(frac.At(0, 2)-0.5) > 1e-12 {
		Te.Errorf("wrong fractional coordinates %v", frac)
	}
}

func TestErrorDecoration(Te *testing.T) {
	_, err := Zeros(3).Inverse()
	if err == nil {
		Te.Fatal("a zero matrix should not be invertible")
	}
	e, ok := err.(*Error)
	if !ok {
		Te.Fatalf("expected *Error, got %T", err)
	}
	e.Decorate("Caller")
	if d := e.Decorate(""); len(d) != 2 || d[1] != "Caller" {
		Te.Errorf("decoration was not kept: %v", d)
	}
	fmt.Println(e, e.Decorate(""))
}

/*
 * descriptor_test.go, part of mlabs.
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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	v3 "github.com/rmera/mlabs/v3"
)

//a cubic cell with side a and one atom of element sym at the origin.
func oneAtomCubic(Te *testing.T, sym string, a float64) *Structure {
	cell, _ := v3.NewMatrix([]float64{a, 0, 0, 0, a, 0, 0, 0, a})
	S, err := NewStructure(cell, []*Atom{{Symbol: sym}}, v3.Zeros(1), [3]bool{true, true, true})
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

func TestDescriptorCubic(Te *testing.T) {
	S := oneAtomCubic(Te, "Po", 4)
	if m := Multipliers(S, 18); m != [3]int{5, 5, 5} {
		Te.Errorf("expected multipliers 5 5 5, got %v", m)
	}
	D, err := NewDescriptor(S, DefaultDescriptorOptions())
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("Descriptor length:", len(D))
	if len(D) != 2*125 {
		Te.Errorf("expected 125 atoms in the descriptor, got %d", D.Atoms())
	}
	po, _ := ElementBySymbol("Po")
	num, rad := D.Pair(0)
	if num != po.Normalized(AtomicNumber) || num != 83.0/117.0 {
		Te.Errorf("first atom should be Po (%v), got %v", po.Normalized(AtomicNumber), num)
	}
	if math.Abs(rad) > 1e-9 {
		Te.Errorf("first atom should be at the center, radial value %v", rad)
	}
	//next atoms are 4 A away, i.e. 4/20 in fractional coordinates.
	_, rad = D.Pair(1)
	if math.Abs(rad-0.2) > 1e-9 {
		Te.Errorf("second atom should have a radial value of 0.2, got %v", rad)
	}
}

func TestDescriptorOverreach(Te *testing.T) {
	S := oneAtomCubic(Te, "Po", 4)
	opts := DefaultDescriptorOptions()
	opts.Overreach = true
	if opts.Radius() != 36 {
		Te.Errorf("overreach should double kappa, got %v", opts.Radius())
	}
	D, err := NewDescriptor(S, opts)
	if err != nil {
		Te.Fatal(err)
	}
	if D.Atoms() != 9*9*9 {
		Te.Errorf("expected 729 atoms, got %d", D.Atoms())
	}
}

func TestDescriptorDeterminism(Te *testing.T) {
	S, err := XYZFileRead("test/nacl.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	orig := S.Copy()
	opts := &DescriptorOptions{Kappa: 9}
	D1, err := NewDescriptor(S, opts)
	if err != nil {
		Te.Fatal(err)
	}
	D2, err := NewDescriptor(S, opts)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(D1, D2); diff != "" {
		Te.Errorf("descriptors differ between calls (-first +second):\n%s", diff)
	}
	if len(D1)%2 != 0 {
		Te.Errorf("odd descriptor length %d", len(D1))
	}
	for i := 0; i < D1.Atoms(); i++ {
		n, _ := D1.Pair(i)
		if n < 0 || n > 1 {
			Te.Errorf("normalized number out of bounds: %v", n)
		}
	}
	//The structure given must not change.
	if diff := cmp.Diff(NewJSONStructure(orig), NewJSONStructure(S)); diff != "" {
		Te.Errorf("the structure was modified by the descriptor (-before +after):\n%s", diff)
	}
}

func TestClusterPruning(Te *testing.T) {
	//A skewed cell, so some replicated atoms fall outside the radius.
	cell, _ := v3.NewMatrix([]float64{4, 0, 0, 4, 1, 0, 4, 0, 1})
	S, err := NewStructure(cell, []*Atom{{Symbol: "Cu"}}, v3.Zeros(1), [3]bool{true, true, true})
	if err != nil {
		Te.Fatal(err)
	}
	opts := &DescriptorOptions{Kappa: 10}
	if m := Multipliers(S, 10); m != [3]int{3, 3, 3} {
		Te.Fatalf("expected multipliers 3 3 3, got %v", m)
	}
	clus, err := Cluster(S, opts)
	if err != nil {
		Te.Fatal(err)
	}
	if clus.Len() != 25 {
		Te.Errorf("expected 25 atoms after pruning, got %d", clus.Len())
	}
	if clus.PBC != [3]bool{} {
		Te.Errorf("the cluster should not be periodic")
	}
	d := clus.Coords.Norms(nil)
	for i, v := range d {
		if v > opts.Radius() {
			Te.Errorf("atom %d at %v, beyond the radius", i, v)
		}
		if i > 0 && v < d[i-1] {
			Te.Errorf("atoms not sorted by distance: %v after %v", v, d[i-1])
		}
	}
	D, err := NewDescriptor(S, opts)
	if err != nil {
		Te.Fatal(err)
	}
	if D.Atoms() != clus.Len() {
		Te.Errorf("descriptor has %d atoms, cluster %d", D.Atoms(), clus.Len())
	}
}

func TestDescriptorNumbering(Te *testing.T) {
	S := oneAtomCubic(Te, "He", 4)
	D, err := NewDescriptor(S, &DescriptorOptions{Kappa: 3, Numbering: PeriodicNumber})
	if err != nil {
		Te.Fatal(err)
	}
	if len(D) != 2 {
		Te.Fatalf("expected a single atom, got %d", D.Atoms())
	}
	if n, _ := D.Pair(0); n != 111.0/117.0 {
		Te.Errorf("He has periodic number 112, normalized %v, got %v", 111.0/117.0, n)
	}
}

func TestDescriptorErrors(Te *testing.T) {
	S, err := XYZFileRead("test/unknown.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	_, err = NewDescriptor(S, nil)
	var uerr *UnknownElementError
	if !errors.As(err, &uerr) {
		Te.Fatalf("expected an UnknownElementError, got %v", err)
	}
	if uerr.Symbol != "Qq" {
		Te.Errorf("wrong symbol in error: %q", uerr.Symbol)
	}
	fmt.Println(err)
	if _, err := NewDescriptor(oneAtomCubic(Te, "Na", 4), &DescriptorOptions{Kappa: 0}); err == nil {
		Te.Errorf("kappa 0 should give an error")
	}
	flat, _ := v3.NewMatrix([]float64{4, 0, 0, 0, 0, 0, 0, 0, 4})
	S2, err := NewStructure(flat, []*Atom{{Symbol: "Na"}}, v3.Zeros(1), [3]bool{true, true, true})
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := NewDescriptor(S2, nil); err == nil {
		Te.Errorf("a cell with a zero-length vector should give an error")
	}
}

func TestDescriptorEmpty(Te *testing.T) {
	cell, _ := v3.NewMatrix([]float64{4, 0, 0, 0, 4, 0, 0, 0, 4})
	S, err := NewStructure(cell, nil, nil, [3]bool{true, true, true})
	if err != nil {
		Te.Fatal(err)
	}
	D, err := NewDescriptor(S, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(D) != 0 {
		Te.Errorf("a structure without atoms should give an empty descriptor, got %d values", len(D))
	}
}

func TestDescriptorTinyCell(Te *testing.T) {
	S := oneAtomCubic(Te, "Na", 1e-9)
	opts := DefaultDescriptorOptions()
	opts.Overreach = true
	_, err := NewDescriptor(S, opts)
	if err == nil {
		Te.Fatal("a cell that needs too many replicas should give an error")
	}
	var cerr *CError
	if !errors.As(err, &cerr) {
		Te.Errorf("expected a CError, got %T: %v", err, err)
	}
	fmt.Println(err)
	//a 1 A cell needs 18^3 replicas, well within the limit
	if _, err := NewDescriptor(oneAtomCubic(Te, "Na", 1.0), &DescriptorOptions{Kappa: 18}); err != nil {
		Te.Errorf("unexpected error for a 1 A cell: %v", err)
	}
}

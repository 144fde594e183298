/*
 * chem.go, part of mlabs.
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
	"math"

	v3 "github.com/rmera/mlabs/v3"
)

//Atom contains the information of an atom, except for the coordinates,
//which will be in a matrix.
type Atom struct {
	Name   string
	ID     int
	Tag    int //Just added this for something that someone might want to keep that is not a float.
	Symbol string
	Mass   float64 //If 0, the standard atomic weight of the element is used.
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

/*****Structure type***/

var (
	_ Atomer = (*Structure)(nil)
	_ Masser = (*Structure)(nil)
)

//Structure is a crystal cell: lattice vectors, atoms with their cartesian
//coordinates, and periodic boundary flags.
//Cell contains one lattice vector per row. Coords has one vector per atom.
type Structure struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	Cell   *v3.Matrix
	PBC    [3]bool
}

//NewStructure returns a Structure with the given cell, atoms, coordinates and
//periodic boundary flags. It checks that there is one set of coordinates per atom
//and that the cell has 3 vectors. The slices and matrices are not copied.
func NewStructure(cell *v3.Matrix, atoms []*Atom, coords *v3.Matrix, pbc [3]bool) (*Structure, error) {
	if cell == nil || cell.NVecs() != 3 {
		return nil, newError("The cell must have exactly 3 lattice vectors", "NewStructure")
	}
	if coords == nil {
		coords = v3.Zeros(0)
	}
	if len(atoms) != coords.NVecs() {
		return nil, newError(fmt.Sprintf("%d atoms but %d coordinates", len(atoms), coords.NVecs()), "NewStructure")
	}
	for i, at := range atoms {
		if at == nil {
			return nil, newError(fmt.Sprintf("Atom %d is nil", i), "NewStructure")
		}
	}
	return &Structure{Atoms: atoms, Coords: coords, Cell: cell, PBC: pbc}, nil
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Atoms)
}

//Atom returns the Atom corresponding to the index i. Panics if
//out of range.
func (S *Structure) Atom(i int) *Atom {
	if i >= S.Len() || i < 0 {
		panic("Structure: Requested Atom out of bounds")
	}
	return S.Atoms[i]
}

//Copy returns a deep copy of the structure.
func (S *Structure) Copy() *Structure {
	ret := new(Structure)
	ret.Atoms = make([]*Atom, len(S.Atoms))
	for i, v := range S.Atoms {
		ret.Atoms[i] = v.Copy()
	}
	ret.Coords = S.Coords.Clone()
	ret.Cell = S.Cell.Clone()
	ret.PBC = S.PBC
	return ret
}

//Masses returns a slice with the mass of each atom. Atoms with a zero
//Mass get the standard atomic weight of their element. It returns an
//UnknownElementError if that element is not in the periodic table.
func (S *Structure) Masses() ([]float64, error) {
	ret := make([]float64, len(S.Atoms))
	for i, at := range S.Atoms {
		if at.Mass > 0 {
			ret[i] = at.Mass
			continue
		}
		el, err := ElementBySymbol(at.Symbol)
		if err != nil {
			return nil, errDecorate(err, "Masses")
		}
		ret[i] = el.Mass
	}
	return ret, nil
}

//CellLengths returns the lengths of the 3 lattice vectors.
func (S *Structure) CellLengths() [3]float64 {
	var ret [3]float64
	n := S.Cell.Norms(nil)
	copy(ret[:], n)
	return ret
}

//Repeat returns a new structure with the cell replicated mult[i] times along
//the ith lattice vector. The atoms are placed in blocks, one per image, with the image
//index of the third vector changing fastest. The cell vectors are scaled accordingly,
//and the periodic boundary flags are kept.
func (S *Structure) Repeat(mult [3]int) (*Structure, error) {
	for _, m := range mult {
		if m < 1 {
			return nil, newError(fmt.Sprintf("Invalid replication %v", mult), "Repeat")
		}
	}
	n := S.Len()
	images := mult[0] * mult[1] * mult[2]
	ret := new(Structure)
	ret.PBC = S.PBC
	ret.Atoms = make([]*Atom, 0, n*images)
	ret.Coords = v3.Zeros(n * images)
	ret.Cell = v3.Zeros(3)
	for i := 0; i < 3; i++ {
		cr := ret.Cell.RawRowView(i)
		copy(cr, S.Cell.RawRowView(i))
		for j := range cr {
			cr[j] *= float64(mult[i])
		}
	}
	a := [3][]float64{S.Cell.RawRowView(0), S.Cell.RawRowView(1), S.Cell.RawRowView(2)}
	block := 0
	for m0 := 0; m0 < mult[0]; m0++ {
		for m1 := 0; m1 < mult[1]; m1++ {
			for m2 := 0; m2 < mult[2]; m2++ {
				var shift [3]float64
				for j := 0; j < 3; j++ {
					shift[j] = float64(m0)*a[0][j] + float64(m1)*a[1][j] + float64(m2)*a[2][j]
				}
				for i := 0; i < n; i++ {
					ret.Atoms = append(ret.Atoms, S.Atoms[i].Copy())
					src := S.Coords.RawRowView(i)
					dst := ret.Coords.RawRowView(block*n + i)
					for j := 0; j < 3; j++ {
						dst[j] = src[j] + shift[j]
					}
				}
				block++
			}
		}
	}
	return ret, nil
}

//Translate adds vec to the coordinates of every atom of the structure, in place.
func (S *Structure) Translate(vec [3]float64) {
	if S.Len() == 0 {
		return
	}
	v, _ := v3.NewMatrix(vec[:])
	S.Coords.AddVec(S.Coords, v)
}

//SomeAtoms returns a new structure containing only the atoms with indexes in
//clist, in that order. The cell and the boundary flags are copied.
func (S *Structure) SomeAtoms(clist []int) *Structure {
	ret := new(Structure)
	ret.Atoms = make([]*Atom, len(clist))
	for i, v := range clist {
		ret.Atoms[i] = S.Atom(v).Copy()
	}
	ret.Coords = v3.Zeros(len(clist))
	ret.Coords.SomeVecs(S.Coords, clist)
	ret.Cell = S.Cell.Clone()
	ret.PBC = S.PBC
	return ret
}

//Within returns the indexes of the atoms at a distance equal or smaller than
//radius from the origin.
func (S *Structure) Within(radius float64) []int {
	d := S.Coords.Norms(nil)
	ret := make([]int, 0, len(d))
	for i, v := range d {
		if v <= radius {
			ret = append(ret, i)
		}
	}
	return ret
}

//Center translates the atoms so the center of the box that bounds them
//is at the origin.
func (S *Structure) Center() {
	c := BoxCenter(S.Coords)
	S.Translate([3]float64{-c[0], -c[1], -c[2]})
}

//ScaledCoords returns the coordinates of the atoms relative to the lattice
//vectors (fractional coordinates). No wrapping is done.
func (S *Structure) ScaledCoords() (*v3.Matrix, error) {
	ret, err := Fractional(S.Coords, S.Cell)
	return ret, errDecorate(err, "ScaledCoords")
}

//Validate checks that the cell vectors have non-zero length and that
//all coordinates are finite.
func (S *Structure) Validate() error {
	if S == nil || S.Cell == nil || S.Cell.NVecs() != 3 {
		return newError("Structure without a 3-vector cell", "Validate")
	}
	if S.Coords == nil || S.Coords.NVecs() != S.Len() {
		return newError("Structure with inconsistent coordinates", "Validate")
	}
	for i, l := range S.CellLengths() {
		if l <= appzero || math.IsNaN(l) || math.IsInf(l, 0) {
			return newError(fmt.Sprintf("Lattice vector %d has invalid length %g", i, l), "Validate")
		}
	}
	for i := 0; i < S.Len(); i++ {
		for _, v := range S.Coords.RawRowView(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return newError(fmt.Sprintf("Atom %d has non-finite coordinates", i), "Validate")
			}
		}
	}
	return nil
}

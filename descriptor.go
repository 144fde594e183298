/*
 * descriptor.go, part of mlabs.
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
	"sort"

	"gonum.org/v1/gonum/floats"
)

//DefaultKappa is the default radius, in Angstrom, of the cluster used for descriptors.
const DefaultKappa = 18.0

//MaxClusterAtoms is the largest number of atoms the replicated cell used to build a
//descriptor can have. Structures that would need more give an error.
const MaxClusterAtoms = 5000000

//Descriptor is a vectorized atomic structure. It is a flat sequence of
//pairs (normalized element number, norm of the fractional coordinates), one per atom,
//with the atoms sorted by increasing distance to the center of the cluster.
type Descriptor []float64

//Atoms returns the number of atoms encoded in the descriptor.
func (D Descriptor) Atoms() int {
	return len(D) / 2
}

//Pair returns the two values for the ith atom of the descriptor.
func (D Descriptor) Pair(i int) (number, radial float64) {
	return D[2*i], D[2*i+1]
}

//Sum returns the sum of all the components of the descriptor.
func (D Descriptor) Sum() float64 {
	return floats.Sum(D)
}

//DescriptorOptions controls the generation of descriptors.
type DescriptorOptions struct {
	Kappa     float64   //Radius of the cluster, in the units of the structure.
	Overreach bool      //If true, Kappa is doubled.
	Numbering Numbering //Which element ordering to normalize.
}

//DefaultDescriptorOptions returns options with kappa 18, no overreach, and atomic numbers.
func DefaultDescriptorOptions() *DescriptorOptions {
	return &DescriptorOptions{Kappa: DefaultKappa, Numbering: AtomicNumber}
}

//Radius returns the effective radius for the options.
func (O *DescriptorOptions) Radius() float64 {
	if O.Overreach {
		return 2 * O.Kappa
	}
	return O.Kappa
}

//Multipliers returns how many times each lattice vector of the structure needs
//to be repeated for the replicated cell to span at least radius along each axis.
func Multipliers(S *Structure, radius float64) [3]int {
	var ret [3]int
	for i, l := range S.CellLengths() {
		ret[i] = int(math.Ceil(radius / l))
		if ret[i] < 1 {
			ret[i] = 1
		}
	}
	return ret
}

//Cluster returns the finite cluster used to build the descriptor of S: the structure is replicated
//so it spans the descriptor radius, centered on its center of mass, pruned of the atoms
//farther than the radius, re-centered on the center of its bounding box, and sorted by
//increasing distance to the origin. The periodic boundary flags of the cluster are cleared.
//The cell of the cluster is the replicated cell. S is not modified.
func Cluster(S *Structure, opts *DescriptorOptions) (*Structure, error) {
	if S == nil {
		return nil, newError("nil structure", "Cluster")
	}
	if opts == nil {
		opts = DefaultDescriptorOptions()
	}
	radius := opts.Radius()
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, newError(fmt.Sprintf("Invalid kappa %g", opts.Kappa), "Cluster")
	}
	if err := S.Validate(); err != nil {
		return nil, errDecorate(err, "Cluster")
	}
	total := float64(S.Len())
	for _, l := range S.CellLengths() {
		total *= math.Max(1, math.Ceil(radius/l))
	}
	if total > MaxClusterAtoms {
		return nil, newError(fmt.Sprintf("Replicating the cell to radius %g needs %g atoms, more than %d", radius, total, MaxClusterAtoms), "Cluster")
	}
	rep, err := S.Repeat(Multipliers(S, radius))
	if err != nil {
		return nil, errDecorate(err, "Cluster")
	}
	com, err := MassCenter(rep, rep.Coords)
	if err != nil {
		return nil, errDecorate(err, "Cluster")
	}
	rep.Translate([3]float64{-com[0], -com[1], -com[2]})
	clus := rep.SomeAtoms(rep.Within(radius))
	clus.Center()
	clus.PBC = [3]bool{false, false, false}
	dists := clus.Coords.Norms(nil)
	order := make([]int, len(dists))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return dists[order[i]] < dists[order[j]] })
	return clus.SomeAtoms(order), nil
}

//NewDescriptor returns the descriptor for the structure S, built with the
//given options (the defaults if opts is nil). S is not modified.
//It returns an UnknownElementError if S contains an element that is not in the periodic table.
//The descriptor is empty if no atom is within the radius.
func NewDescriptor(S *Structure, opts *DescriptorOptions) (Descriptor, error) {
	if opts == nil {
		opts = DefaultDescriptorOptions()
	}
	clus, err := Cluster(S, opts)
	if err != nil {
		return nil, errDecorate(err, "NewDescriptor")
	}
	scaled, err := clus.ScaledCoords()
	if err != nil {
		return nil, errDecorate(err, "NewDescriptor")
	}
	radial := scaled.Norms(nil)
	nums, err := normalizedNumbers(clus, opts.Numbering)
	if err != nil {
		return nil, errDecorate(err, "NewDescriptor")
	}
	D := make(Descriptor, 0, 2*clus.Len())
	for i, n := range nums {
		D = append(D, n, radial[i])
	}
	return D, nil
}

//normalizedNumbers returns the normalized element number of each atom in A.
func normalizedNumbers(A Atomer, numbering Numbering) ([]float64, error) {
	ret := make([]float64, A.Len())
	for i := range ret {
		el, err := ElementBySymbol(A.Atom(i).Symbol)
		if err != nil {
			return nil, errDecorate(err, "normalizedNumbers")
		}
		ret[i] = el.Normalized(numbering)
	}
	return ret, nil
}

/*
 * doc.go, part of mlabs.
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

/*Package chem is the main package of the mlabs library. It provides atom and crystal structure
types, the periodic table, facilities for reading and writing structures, and the
descriptor that turns a crystal structure into a vector of numbers that trained
property models can take.



	**mlabs Capabilities**


    Reads/writes extended XYZ and JSON structure files.

    Replicates a crystal cell along its lattice vectors, centers a structure on its
	center of mass or on the center of its bounding box, and obtains fractional
	coordinates.

    Builds descriptors: the structure is replicated until it spans a sphere of radius
	kappa, the atoms outside the sphere are removed and the remaining cluster is encoded
	as (normalized element number, fractional radial distance) pairs, sorted by distance
	to the center. Descriptors for similar local environments have similar lengths and
	orderings, no matter the size of the original cell.

    Predicts properties from descriptors with trained models (package predict, models
	in package model).


mlabs uses its own matrix type for coordinates, v3.Matrix, based on gonum.org/v1/gonum/mat.
Each row of a v3.Matrix represents one point in space.*/
package chem

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

/*
Package v3 implements a Matrix type representing a row-major 3D matrix (i.e. a Nx3 matrix).
The v3.Matrix is used to represent cartesian coordinates of atoms, and the lattice
vectors of crystal cells, in mlabs. It is based on gonum's (gonum.org/v1/gonum) Dense type,
with some additional restrictions because of the fixed number of columns and with some
additional functions that were found useful for building structure descriptors.

A Matrix with zero vectors is allowed (a structure can lose all its atoms when pruned).
Such a matrix is not backed by any data and every per-vector operation on it is a no-op.
*/
package v3

/*
 * json.go, part of mlabs.
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
	"encoding/json"
	"fmt"
	"io"
	"os"

	v3 "github.com/rmera/mlabs/v3"
)

//JSONAtom is a ready-to-serialize container for an atom.
type JSONAtom struct {
	Symbol   string     `json:"symbol"`
	Position [3]float64 `json:"position"`
	Mass     float64    `json:"mass,omitempty"`
}

//JSONStructure is a ready-to-serialize container for a structure.
type JSONStructure struct {
	Cell  [3][3]float64 `json:"cell"`
	PBC   *[3]bool      `json:"pbc,omitempty"` //nil means periodic along the 3 vectors.
	Atoms []JSONAtom    `json:"atoms"`
}

//Structure builds a Structure from the container.
func (J *JSONStructure) Structure() (*Structure, error) {
	cell := v3.Zeros(3)
	for i := 0; i < 3; i++ {
		copy(cell.RawRowView(i), J.Cell[i][:])
	}
	atoms := make([]*Atom, len(J.Atoms))
	coords := v3.Zeros(len(J.Atoms))
	for i, a := range J.Atoms {
		if a.Symbol == "" {
			return nil, newError(fmt.Sprintf("Atom %d has no symbol", i), "JSONStructure.Structure")
		}
		atoms[i] = &Atom{Symbol: a.Symbol, ID: i + 1, Mass: a.Mass}
		copy(coords.RawRowView(i), a.Position[:])
	}
	pbc := [3]bool{true, true, true}
	if J.PBC != nil {
		pbc = *J.PBC
	}
	S, err := NewStructure(cell, atoms, coords, pbc)
	return S, errDecorate(err, "JSONStructure.Structure")
}

//NewJSONStructure puts S in a ready-to-serialize container.
func NewJSONStructure(S *Structure) *JSONStructure {
	J := new(JSONStructure)
	for i := 0; i < 3; i++ {
		copy(J.Cell[i][:], S.Cell.RawRowView(i))
	}
	pbc := S.PBC
	J.PBC = &pbc
	J.Atoms = make([]JSONAtom, S.Len())
	for i, at := range S.Atoms {
		J.Atoms[i].Symbol = at.Symbol
		J.Atoms[i].Mass = at.Mass
		copy(J.Atoms[i].Position[:], S.Coords.RawRowView(i))
	}
	return J
}

//JSONRead decodes a structure in JSON format from in.
func JSONRead(in io.Reader) (*Structure, error) {
	J := new(JSONStructure)
	if err := json.NewDecoder(in).Decode(J); err != nil {
		return nil, fmt.Errorf("JSONRead: %w", err)
	}
	S, err := J.Structure()
	return S, errDecorate(err, "JSONRead")
}

//JSONWrite encodes S in JSON format to out.
func JSONWrite(out io.Writer, S *Structure) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(NewJSONStructure(S))
}

//JSONFileRead reads the JSON structure file name.
func JSONFileRead(name string) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	S, err := JSONRead(f)
	return S, errDecorate(err, "JSONFileRead "+name)
}

/*
 * props.go, part of mlabs.
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

package model

//Property is the human-readable information for a property that models can predict.
//Symbol may contain HTML markup. Rounding is the number of decimals
//to which predicted values are rounded.
type Property struct {
	Name     string `json:"name"`
	Units    string `json:"units"`
	Symbol   string `json:"symbol"`
	Rounding int    `json:"rounding"`
}

var knownIDs = []string{"z", "y", "x", "k", "m"}

var humanNames = map[string]Property{
	"z": {
		Name:     "isothermal bulk modulus",
		Units:    "GPa",
		Symbol:   "B",
		Rounding: 0,
	},
	"y": {
		Name:     "enthalpy of formation",
		Units:    "kJ g-at.-1",
		Symbol:   "H",
		Rounding: 0,
	},
	"x": {
		Name:     "heat capacity at constant pressure",
		Units:    "J K-1 g-at.-1",
		Symbol:   "C<sub>p</sub>",
		Rounding: 0,
	},
	"k": {
		Name:     "Seebeck coefficient",
		Units:    "muV K-1",
		Symbol:   "S",
		Rounding: 1,
	},
	"m": {
		Name:     "temperature for congruent melting",
		Units:    "K",
		Symbol:   "T<sub>melt</sub>",
		Rounding: 0,
	},
}

//HumanName returns the Property for the property id, and whether the id is known.
func HumanName(id string) (Property, bool) {
	p, ok := humanNames[id]
	return p, ok
}

//KnownIDs returns the ids of all the properties with a human name.
func KnownIDs() []string {
	ret := make([]string, len(knownIDs))
	copy(ret, knownIDs)
	return ret
}

//Rounding returns the number of decimals for values of the property id, 0 if the id is unknown.
func Rounding(id string) int {
	return humanNames[id].Rounding
}

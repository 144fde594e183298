/*
 * atomicdata.go, part of mlabs.
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

//Element is an entry of the periodic table.
//Periodic is the "periodic number", an ordering of the elements that runs
//down the groups of the table rather than along the periods.
//Mass is the standard atomic weight (IUPAC 2016), in g/mol.
type Element struct {
	Symbol   string
	Number   int
	Periodic int
	Mass     float64
}

//Numbering selects which ordering of the elements is used for normalized numbers.
type Numbering int

const (
	AtomicNumber Numbering = iota
	PeriodicNumber
)

func (n Numbering) String() string {
	switch n {
	case AtomicNumber:
		return "atomic"
	case PeriodicNumber:
		return "periodic"
	}
	return "unknown"
}

//ParseNumbering returns the Numbering named s ("atomic" or "periodic").
//An empty string gives AtomicNumber.
func ParseNumbering(s string) (Numbering, error) {
	switch s {
	case "", "atomic":
		return AtomicNumber, nil
	case "periodic":
		return PeriodicNumber, nil
	}
	return AtomicNumber, newError("unknown numbering "+s, "ParseNumbering")
}

//the largest number, for both orderings.
const maxElementNumber = 118

//Normalized returns the element number in the given ordering, scaled to [0,1]
//as (n-1)/(118-1). The placeholder element X normalizes to 0.
func (E Element) Normalized(n Numbering) float64 {
	num := E.Number
	if n == PeriodicNumber {
		num = E.Periodic
	}
	if num < 1 {
		return 0
	}
	return float64(num-1) / float64(maxElementNumber-1)
}

//ElementBySymbol returns the periodic table entry for symbol, or an
//UnknownElementError. The placeholder "X" is a valid symbol.
func ElementBySymbol(symbol string) (Element, error) {
	i, ok := symbolIndex[symbol]
	if !ok {
		return Element{}, &UnknownElementError{Symbol: symbol, deco: []string{"ElementBySymbol"}}
	}
	return periodicTable[i], nil
}

var symbolIndex map[string]int

func init() {
	symbolIndex = make(map[string]int, len(periodicTable))
	for i, v := range periodicTable {
		symbolIndex[v.Symbol] = i
	}
}

//The periodic table, indexed by atomic number. The entry 0 is a placeholder.
var periodicTable = []Element{
	{"X", 0, 0, 0},
	{"H", 1, 1, 1.008},
	{"He", 2, 112, 4.002602},
	{"Li", 3, 2, 6.94},
	{"Be", 4, 8, 9.0121831},
	{"B", 5, 82, 10.81},
	{"C", 6, 88, 12.011},
	{"N", 7, 94, 14.007},
	{"O", 8, 100, 15.999},
	{"F", 9, 106, 18.998403163},
	{"Ne", 10, 113, 20.1797},
	{"Na", 11, 3, 22.98976928},
	{"Mg", 12, 9, 24.305},
	{"Al", 13, 83, 26.9815385},
	{"Si", 14, 89, 28.085},
	{"P", 15, 95, 30.973761998},
	{"S", 16, 101, 32.06},
	{"Cl", 17, 107, 35.45},
	{"Ar", 18, 114, 39.948},
	{"K", 19, 4, 39.0983},
	{"Ca", 20, 10, 40.078},
	{"Sc", 21, 14, 44.955908},
	{"Ti", 22, 46, 47.867},
	{"V", 23, 50, 50.9415},
	{"Cr", 24, 54, 51.9961},
	{"Mn", 25, 58, 54.938044},
	{"Fe", 26, 62, 55.845},
	{"Co", 27, 66, 58.933194},
	{"Ni", 28, 70, 58.6934},
	{"Cu", 29, 74, 63.546},
	{"Zn", 30, 78, 65.38},
	{"Ga", 31, 84, 69.723},
	{"Ge", 32, 90, 72.630},
	{"As", 33, 96, 74.921595},
	{"Se", 34, 102, 78.971},
	{"Br", 35, 108, 79.904},
	{"Kr", 36, 115, 83.798},
	{"Rb", 37, 5, 85.4678},
	{"Sr", 38, 11, 87.62},
	{"Y", 39, 15, 88.90584},
	{"Zr", 40, 47, 91.224},
	{"Nb", 41, 51, 92.90637},
	{"Mo", 42, 55, 95.95},
	{"Tc", 43, 59, 97.90721},
	{"Ru", 44, 63, 101.07},
	{"Rh", 45, 67, 102.90550},
	{"Pd", 46, 71, 106.42},
	{"Ag", 47, 75, 107.8682},
	{"Cd", 48, 79, 112.414},
	{"In", 49, 85, 114.818},
	{"Sn", 50, 91, 118.710},
	{"Sb", 51, 97, 121.760},
	{"Te", 52, 103, 127.60},
	{"I", 53, 109, 126.90447},
	{"Xe", 54, 116, 131.293},
	{"Cs", 55, 6, 132.90545196},
	{"Ba", 56, 12, 137.327},
	{"La", 57, 16, 138.90547},
	{"Ce", 58, 18, 140.116},
	{"Pr", 59, 20, 140.90766},
	{"Nd", 60, 22, 144.242},
	{"Pm", 61, 24, 144.91276},
	{"Sm", 62, 26, 150.36},
	{"Eu", 63, 28, 151.964},
	{"Gd", 64, 30, 157.25},
	{"Tb", 65, 32, 158.92535},
	{"Dy", 66, 34, 162.500},
	{"Ho", 67, 36, 164.93033},
	{"Er", 68, 38, 167.259},
	{"Tm", 69, 40, 168.93422},
	{"Yb", 70, 42, 173.054},
	{"Lu", 71, 44, 174.9668},
	{"Hf", 72, 48, 178.49},
	{"Ta", 73, 52, 180.94788},
	{"W", 74, 56, 183.84},
	{"Re", 75, 60, 186.207},
	{"Os", 76, 64, 190.23},
	{"Ir", 77, 68, 192.217},
	{"Pt", 78, 72, 195.084},
	{"Au", 79, 76, 196.966569},
	{"Hg", 80, 80, 200.592},
	{"Tl", 81, 86, 204.38},
	{"Pb", 82, 92, 207.2},
	{"Bi", 83, 98, 208.98040},
	{"Po", 84, 104, 208.98243},
	{"At", 85, 110, 209.98715},
	{"Rn", 86, 117, 222.01758},
	{"Fr", 87, 7, 223.01974},
	{"Ra", 88, 13, 226.02541},
	{"Ac", 89, 17, 227.02775},
	{"Th", 90, 19, 232.0377},
	{"Pa", 91, 21, 231.03588},
	{"U", 92, 23, 238.02891},
	{"Np", 93, 25, 237.04817},
	{"Pu", 94, 27, 244.06421},
	{"Am", 95, 29, 243.06138},
	{"Cm", 96, 31, 247.07035},
	{"Bk", 97, 33, 247.07031},
	{"Cf", 98, 35, 251.07959},
	{"Es", 99, 37, 252.0830},
	{"Fm", 100, 39, 257.09511},
	{"Md", 101, 41, 258.09843},
	{"No", 102, 43, 259.1010},
	{"Lr", 103, 45, 262.110},
	{"Rf", 104, 49, 267.122},
	{"Db", 105, 53, 268.126},
	{"Sg", 106, 57, 271.134},
	{"Bh", 107, 61, 270.133},
	{"Hs", 108, 65, 269.1338},
	{"Mt", 109, 69, 278.156},
	{"Ds", 110, 73, 281.165},
	{"Rg", 111, 77, 281.166},
	{"Cn", 112, 81, 285.177},
	{"Nh", 113, 87, 286.182},
	{"Fl", 114, 93, 289.190},
	{"Mc", 115, 99, 289.194},
	{"Lv", 116, 105, 293.204},
	{"Ts", 117, 111, 293.208},
	{"Og", 118, 118, 294.214},
}

/*
 * files.go, part of mlabs.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	v3 "github.com/rmera/mlabs/v3"
)

//XYZRead reads a structure in the extended XYZ format: the usual XYZ file, where the comment
//line carries the lattice vectors as Lattice="ax ay az bx by bz cx cy cz" and, optionally,
//the periodic boundary flags as pbc="T T T". If pbc is not given, a structure with a lattice
//is taken as periodic along all 3 vectors. Only the first frame is read.
func XYZRead(in io.Reader) (*Structure, error) {
	xyz := bufio.NewReader(in)
	line, err := xyz.ReadString('\n')
	if err != nil && line == "" {
		return nil, newError("Empty XYZ file", "XYZRead")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms < 0 {
		return nil, newError("Ill formatted XYZ file: wrong number of atoms", "XYZRead")
	}
	comment, err := xyz.ReadString('\n')
	if err != nil && natoms > 0 {
		return nil, newError("Ill formatted XYZ file: no comment line", "XYZRead")
	}
	info, err := parseXYZComment(comment)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	lat, ok := info["lattice"]
	if !ok {
		return nil, newError("XYZ file has no Lattice in the comment line", "XYZRead")
	}
	cell, err := floatFields(lat, 9)
	if err != nil {
		return nil, errDecorate(err, "XYZRead: Lattice")
	}
	pbc := [3]bool{true, true, true}
	if p, ok := info["pbc"]; ok {
		fields := strings.Fields(p)
		if len(fields) != 3 {
			return nil, newError("pbc must have 3 values", "XYZRead")
		}
		for i, f := range fields {
			pbc[i], err = parseBool(f)
			if err != nil {
				return nil, errDecorate(err, "XYZRead: pbc")
			}
		}
	}
	//natoms comes from the input, so nothing is allocated from it up front.
	var atoms []*Atom
	var coords []float64
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return nil, newError(fmt.Sprintf("Expected %d atoms, found %d", natoms, i), "XYZRead")
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, newError(fmt.Sprintf("Line for atom %d ill formed", i), "XYZRead")
		}
		c, err := floatFields(strings.Join(fields[1:4], " "), 3)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("XYZRead: atom %d", i))
		}
		atoms = append(atoms, &Atom{Symbol: fields[0], ID: i + 1})
		coords = append(coords, c...)
	}
	cmat, _ := v3.NewMatrix(cell)
	xmat, _ := v3.NewMatrix(coords)
	S, err := NewStructure(cmat, atoms, xmat, pbc)
	return S, errDecorate(err, "XYZRead")
}

//XYZWrite writes the structure S in the extended XYZ format.
func XYZWrite(out io.Writer, S *Structure) error {
	if S == nil || S.Cell == nil || S.Cell.NVecs() != 3 {
		return newError("Structure without a cell", "XYZWrite")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", S.Len())
	lat := make([]string, 0, 9)
	for i := 0; i < 3; i++ {
		for _, v := range S.Cell.RawRowView(i) {
			lat = append(lat, strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	pbc := make([]string, 3)
	for i, v := range S.PBC {
		pbc[i] = "F"
		if v {
			pbc[i] = "T"
		}
	}
	fmt.Fprintf(&b, "Lattice=\"%s\" Properties=species:S:1:pos:R:3 pbc=\"%s\"\n", strings.Join(lat, " "), strings.Join(pbc, " "))
	for i, at := range S.Atoms {
		c := S.Coords.RawRowView(i)
		fmt.Fprintf(&b, "%-2s %14.8f %14.8f %14.8f\n", at.Symbol, c[0], c[1], c[2])
	}
	_, err := io.WriteString(out, b.String())
	return err
}

//XYZFileRead reads the extended XYZ file xyzname.
func XYZFileRead(xyzname string) (*Structure, error) {
	f, err := os.Open(xyzname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	S, err := XYZRead(f)
	return S, errDecorate(err, "XYZFileRead "+xyzname)
}

//XYZFileWrite writes S to the file xyzname, which is created or overwritten.
func XYZFileWrite(xyzname string, S *Structure) error {
	f, err := os.Create(xyzname)
	if err != nil {
		return err
	}
	if err := XYZWrite(f, S); err != nil {
		f.Close()
		return errDecorate(err, "XYZFileWrite")
	}
	return f.Close()
}

//FileRead reads a structure from the file name, guessing the format from the
//extension: .json for JSON, anything else is read as extended XYZ.
func FileRead(name string) (*Structure, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return JSONFileRead(name)
	default:
		return XYZFileRead(name)
	}
}

//parseXYZComment parses the key=value pairs of an extended XYZ comment line.
//Values may be quoted with double quotes. Keys are returned in lower case.
func parseXYZComment(line string) (map[string]string, error) {
	ret := make(map[string]string)
	s := strings.TrimSpace(line)
	for len(s) > 0 {
		eq := strings.IndexAny(s, "= \t")
		if eq < 0 || s[eq] != '=' {
			//a bare word, such as a title. Skip it.
			end := strings.IndexAny(s, " \t")
			if end < 0 {
				break
			}
			s = strings.TrimSpace(s[end:])
			continue
		}
		key := strings.ToLower(s[:eq])
		s = s[eq+1:]
		var val string
		if strings.HasPrefix(s, "\"") {
			end := strings.Index(s[1:], "\"")
			if end < 0 {
				return nil, newError("Unterminated quote for "+key, "parseXYZComment")
			}
			val = s[1 : end+1]
			s = s[end+2:]
		} else {
			end := strings.IndexAny(s, " \t")
			if end < 0 {
				end = len(s)
			}
			val = s[:end]
			s = s[end:]
		}
		ret[key] = val
		s = strings.TrimSpace(s)
	}
	return ret, nil
}

func floatFields(s string, n int) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) != n {
		return nil, newError(fmt.Sprintf("Expected %d numbers, got %d", n, len(fields)), "floatFields")
	}
	ret := make([]float64, n)
	var err error
	for i, f := range fields {
		ret[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("floatFields: %w", err)
		}
	}
	return ret, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToUpper(s) {
	case "T", "TRUE", "1":
		return true, nil
	case "F", "FALSE", "0":
		return false, nil
	}
	return false, newError("Invalid boolean "+s, "parseBool")
}

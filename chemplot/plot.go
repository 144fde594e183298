/*
 * plot.go, part of mlabs.
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

//Package chemplot draws plots of mlabs data with gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"

	chem "github.com/rmera/mlabs"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//DescriptorPlot returns a plot of the descriptor D. Each atom of the descriptor is a point,
//with its position in the descriptor on the X axis. The normalized element number
//and the fractional radial value are plotted with different glyphs.
func DescriptorPlot(D chem.Descriptor, title string) (*plot.Plot, error) {
	if len(D)%2 != 0 || len(D) == 0 {
		return nil, fmt.Errorf("DescriptorPlot: can't plot a descriptor of length %d", len(D))
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Atom"
	p.Y.Label.Text = "Value"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	n := D.Atoms()
	numbers := make(plotter.XYs, n)
	radial := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		num, rad := D.Pair(i)
		numbers[i].X, numbers[i].Y = float64(i), num
		radial[i].X, radial[i].Y = float64(i), rad
	}
	sets := []struct {
		name  string
		data  plotter.XYs
		shape draw.GlyphDrawer
		color color.RGBA
	}{
		{"element", numbers, draw.CircleGlyph{}, color.RGBA{R: 200, G: 30, B: 30, A: 255}},
		{"radial", radial, draw.TriangleGlyph{}, color.RGBA{R: 30, G: 30, B: 200, A: 255}},
	}
	for _, set := range sets {
		s, err := plotter.NewScatter(set.data)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = set.shape
		s.GlyphStyle.Color = set.color
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
		p.Legend.Add(set.name, s)
	}
	return p, nil
}

//Descriptor plots the descriptor D and saves the plot in filename. The format
//is taken from the extension of filename (png, svg, pdf...).
func Descriptor(D chem.Descriptor, title, filename string) error {
	p, err := DescriptorPlot(D, title)
	if err != nil {
		return err
	}
	return p.Save(12*vg.Centimeter, 10*vg.Centimeter, filename)
}

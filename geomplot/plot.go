/*
 * plot.go, part of mdgeom.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

//Package geomplot plots the results of mdgeom analyses with gonum/plot.
//It lives in its own package so that mdgeom proper carries no plotting
//dependency.
package geomplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "pair"
	p.Y.Label.Text = "distance/A"
	p.Add(plotter.NewGrid())
	return p
}

// DistanceProfile plots the given per-pair distances, as produced by
// mdgeom.MinImageDistance, against the pair index, and saves the plot as
// plotname.png.
func DistanceProfile(dists []float64, title, plotname string) error {
	if len(dists) == 0 {
		return fmt.Errorf("geomplot: Given nil or empty data")
	}
	p := basicPlot(title)
	pts := make(plotter.XYs, len(dists))
	for i, d := range dists {
		pts[i].X = float64(i)
		pts[i].Y = d
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(l, s)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, filename)
}

/*
 * box_test.go
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

package mdgeom

import (
	"math"
	"testing"
)

//TestBoxVectorsTriclinic checks that the generated cell vectors reproduce
//the lengths and angles they were built from.
func TestBoxVectorsTriclinic(Te *testing.T) {
	box := &Box{Lx: 80.017006, Ly: 80.017006, Lz: 80.017006, Alpha: 60, Beta: 60, Gamma: 90}
	cell, err := box.Vectors()
	if err != nil {
		Te.Fatal(err)
	}
	lengths := [3]float64{box.Lx, box.Ly, box.Lz}
	var norms [3]float64
	for i := 0; i < 3; i++ {
		norms[i] = cell.VecView(i).Norm(2)
		if !near(norms[i], lengths[i], 1e-9) {
			Te.Errorf("vector %d has length %v, want %v", i, norms[i], lengths[i])
		}
	}
	angle := func(i, j int) float64 {
		var dot float64
		for k := 0; k < 3; k++ {
			dot += cell.At(i, k) * cell.At(j, k)
		}
		return math.Acos(dot/(norms[i]*norms[j])) * 180 / math.Pi
	}
	if !near(angle(1, 2), box.Alpha, 1e-9) {
		Te.Errorf("alpha: got %v, want %v", angle(1, 2), box.Alpha)
	}
	if !near(angle(0, 2), box.Beta, 1e-9) {
		Te.Errorf("beta: got %v, want %v", angle(0, 2), box.Beta)
	}
	if !near(angle(0, 1), box.Gamma, 1e-9) {
		Te.Errorf("gamma: got %v, want %v", angle(0, 1), box.Gamma)
	}
	//the conventional orientation
	if !near(cell.At(0, 1), 0, 1e-9) || !near(cell.At(0, 2), 0, 1e-9) || !near(cell.At(1, 2), 0, 1e-9) {
		Te.Error("cell vectors are not in the conventional orientation")
	}
}

//TestBoxVectorsOrthogonal checks the rectangular special case.
func TestBoxVectorsOrthogonal(Te *testing.T) {
	box := &Box{Lx: 10, Ly: 12, Lz: 14, Alpha: 90, Beta: 90, Gamma: 90}
	if !box.Orthogonal() {
		Te.Error("rectangular cell not recognized as orthogonal")
	}
	cell, err := box.Vectors()
	if err != nil {
		Te.Fatal(err)
	}
	want := [3]float64{10, 12, 14}
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			w := 0.0
			if i == k {
				w = want[i]
			}
			if !near(cell.At(i, k), w, 1e-9) {
				Te.Errorf("cell(%d,%d): got %v, want %v", i, k, cell.At(i, k), w)
			}
		}
	}
	tric := &Box{Lx: 10, Ly: 12, Lz: 14, Alpha: 60, Beta: 90, Gamma: 90}
	if tric.Orthogonal() {
		Te.Error("triclinic cell recognized as orthogonal")
	}
}

//TestBoxVectorsInvalid checks that geometrically impossible parameter sets
//are rejected instead of producing NaN vectors.
func TestBoxVectorsInvalid(Te *testing.T) {
	bad := []*Box{
		{},
		{Lx: -5, Ly: 10, Lz: 10, Alpha: 90, Beta: 90, Gamma: 90},
		{Lx: 10, Ly: 10, Lz: 10, Alpha: 90, Beta: 90, Gamma: 180},
		{Lx: 10, Ly: 10, Lz: 10, Alpha: 10, Beta: 150, Gamma: 90},
	}
	for i, box := range bad {
		if _, err := box.Vectors(); err == nil {
			Te.Errorf("invalid cell %d accepted: %+v", i, box)
		} else if _, ok := err.(*ConfigurationError); !ok {
			Te.Errorf("wrong error type %T for cell %d", err, i)
		}
	}
}

//TestBoxEqual checks the combined absolute/relative comparison.
func TestBoxEqual(Te *testing.T) {
	a := &Box{Lx: 80.017006, Ly: 80.017006, Lz: 80.017006, Alpha: 60, Beta: 60, Gamma: 90}
	noisy := *a
	noisy.Ly *= 1 + 1e-7
	noisy.Beta *= 1 - 1e-7
	if !a.Equal(&noisy) {
		Te.Error("cells differing within floating point noise compare unequal")
	}
	off := *a
	off.Gamma = 90.1
	if a.Equal(&off) {
		Te.Error("cells with different gamma compare equal")
	}
	tight := *a
	tight.Lx += 1e-3
	if a.Equal(&tight) {
		Te.Error("1e-3 A length difference not detected")
	}
	if !a.EqualWithin(&tight, 1e-2, 0) {
		Te.Error("EqualWithin ignored the requested absolute tolerance")
	}
}

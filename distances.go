/*
 * distances.go, part of mdgeom.
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
	"fmt"
	"math"

	v3 "github.com/rmera/gochem/v3"
	"gonum.org/v1/gonum/mat"
)

// MinImageDistance calculates the distances |r_a - r_b| between the
// corresponding atoms of two groups with the same number of atoms, and
// returns them as a slice of length a.Len(). Distances obey the minimum
// image convention under the unit cell of a: the shortest distance taking
// all periodic images into account. If the groups have no cell, plain
// Euclidean distances are returned.
// It returns a SizeMismatchError if the groups differ in size, and a
// ConfigurationError if their cells are incompatible.
func MinImageDistance(a, b AtomGroup) ([]float64, error) {
	vecs, err := MinImageVector(a, b)
	if err != nil {
		return nil, errDecorate(err, "MinImageDistance")
	}
	dists := make([]float64, vecs.NVecs())
	for i := range dists {
		dists[i] = vecs.VecView(i).Norm(2)
	}
	return dists, nil
}

// MinImageVector calculates the difference vectors r_a - r_b between the
// corresponding atoms of two groups with the same number of atoms, each
// translated by the lattice vector of a's unit cell that minimizes its
// norm (the minimum image convention), and returns them as an a.Len()x3
// matrix. If the groups have no cell, the raw differences are returned
// with no periodic correction.
// It returns a SizeMismatchError if the groups differ in size, and a
// ConfigurationError if their cells are incompatible.
func MinImageVector(a, b AtomGroup) (*v3.Matrix, error) {
	if err := checkGroups(a, b); err != nil {
		return nil, errDecorate(err, "MinImageVector")
	}
	diff := v3.Zeros(a.Len())
	diff.Sub(a.Coords(), b.Coords())
	box := a.Box()
	if box == nil {
		//no cell information, the raw difference vectors are enough
		return diff, nil
	}
	cell, err := box.Vectors()
	if err != nil {
		return nil, errDecorate(err, "MinImageVector")
	}
	if box.Orthogonal() {
		//closed form, no image search needed
		edges := [3]float64{box.Lx, box.Ly, box.Lz}
		for i := 0; i < diff.NVecs(); i++ {
			for k, l := range edges {
				d := diff.At(i, k)
				diff.Set(i, k, d-l*math.Round(d/l))
			}
		}
		return diff, nil
	}
	var inv mat.Dense
	if err := inv.Inverse(cell); err != nil {
		cerr := &ConfigurationError{msg: fmt.Sprintf("mdgeom: Singular cell matrix: %v", err)}
		return nil, errDecorate(cerr, "MinImageVector")
	}
	var h, hinv [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			h[i][j] = cell.At(i, j)
			hinv[i][j] = inv.At(i, j)
		}
	}
	for i := 0; i < diff.NVecs(); i++ {
		d := minImage([3]float64{diff.At(i, 0), diff.At(i, 1), diff.At(i, 2)}, h, hinv)
		for k := 0; k < 3; k++ {
			diff.Set(i, k, d[k])
		}
	}
	return diff, nil
}

// minImage translates the row vector d by the lattice vector of the cell h
// (rows are cell vectors, hinv is the inverse of h) that minimizes its
// norm. d is first brought close to the origin by rounding its fractional
// coordinates, then refined over the 3x3x3 neighborhood of periodic
// images, which suffices for any cell an MD engine will produce.
func minImage(d [3]float64, h, hinv [3][3]float64) [3]float64 {
	var f [3]float64
	for j := 0; j < 3; j++ {
		f[j] = d[0]*hinv[0][j] + d[1]*hinv[1][j] + d[2]*hinv[2][j]
		f[j] -= math.Round(f[j])
	}
	var d0 [3]float64
	for j := 0; j < 3; j++ {
		d0[j] = f[0]*h[0][j] + f[1]*h[1][j] + f[2]*h[2][j]
	}
	best := d0
	bestn := d0[0]*d0[0] + d0[1]*d0[1] + d0[2]*d0[2]
	for n1 := -1; n1 <= 1; n1++ {
		for n2 := -1; n2 <= 1; n2++ {
			for n3 := -1; n3 <= 1; n3++ {
				var c [3]float64
				for j := 0; j < 3; j++ {
					c[j] = d0[j] + float64(n1)*h[0][j] + float64(n2)*h[1][j] + float64(n3)*h[2][j]
				}
				if n := c[0]*c[0] + c[1]*c[1] + c[2]*c[2]; n < bestn {
					best, bestn = c, n
				}
			}
		}
	}
	return best
}

// checkGroups verifies that two atom groups are compatible for a distance
// calculation: same number of atoms, and unit cells either both absent or
// both present and equal within tolerance.
func checkGroups(a, b AtomGroup) error {
	if a.Len() != b.Len() {
		return &SizeMismatchError{msg: fmt.Sprintf("mdgeom: AtomGroups contain different numbers of atoms: %d and %d", a.Len(), b.Len()), deco: []string{"checkGroups"}}
	}
	abox, bbox := a.Box(), b.Box()
	switch {
	case abox == nil && bbox == nil:
		//both groups non-periodic, nothing else to check
	case (abox == nil) != (bbox == nil):
		return &ConfigurationError{msg: "mdgeom: One AtomGroup does not have unit cell information", deco: []string{"checkGroups"}}
	case !abox.Equal(bbox):
		return &ConfigurationError{msg: fmt.Sprintf("mdgeom: Unit cells differ between groups: %v and %v", abox.scalars(), bbox.scalars()), deco: []string{"checkGroups"}}
	}
	return nil
}

/*
 * box.go, part of mdgeom.
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
	"gonum.org/v1/gonum/floats/scalar"
)

//Default tolerances for comparing cell parameters. Two boxes obtained
//through different arithmetic paths must still compare equal, so the
//comparison is never exact.
const (
	boxAbsTol = 1e-8
	boxRelTol = 1e-5
)

// Box describes a (possibly triclinic) periodic unit cell by its three edge
// lengths, in A, and its three angles, in degrees. Alpha is the angle
// between the second and third cell vectors, Beta between the first and
// third, and Gamma between the first and second. The zero value is not a
// valid cell; a simulation without periodicity is represented by a nil *Box.
type Box struct {
	Lx, Ly, Lz         float64
	Alpha, Beta, Gamma float64
}

// scalars returns the six cell parameters in their conventional order.
func (B *Box) scalars() [6]float64 {
	return [6]float64{B.Lx, B.Ly, B.Lz, B.Alpha, B.Beta, B.Gamma}
}

// EqualWithin returns whether every cell parameter of B matches the
// corresponding parameter of C within the given combined absolute and
// relative tolerances.
func (B *Box) EqualWithin(C *Box, absTol, relTol float64) bool {
	b, c := B.scalars(), C.scalars()
	for i := range b {
		if !scalar.EqualWithinAbsOrRel(b[i], c[i], absTol, relTol) {
			return false
		}
	}
	return true
}

// Equal is EqualWithin with the package default tolerances.
func (B *Box) Equal(C *Box) bool {
	return B.EqualWithin(C, boxAbsTol, boxRelTol)
}

// Orthogonal returns whether the three cell angles are, within the default
// tolerances, right angles.
func (B *Box) Orthogonal() bool {
	for _, ang := range []float64{B.Alpha, B.Beta, B.Gamma} {
		if !scalar.EqualWithinAbsOrRel(ang, 90.0, boxAbsTol, boxRelTol) {
			return false
		}
	}
	return true
}

// Vectors returns the three cell vectors as the rows of a 3x3 matrix, in
// the conventional orientation: the first vector along x, the second in the
// xy plane. It returns a ConfigurationError if the parameters do not
// describe a valid parallelepiped (non-positive lengths, or angles with no
// consistent third vector).
func (B *Box) Vectors() (*v3.Matrix, error) {
	if B.Lx <= 0 || B.Ly <= 0 || B.Lz <= 0 {
		return nil, &ConfigurationError{msg: fmt.Sprintf("mdgeom: Cell lengths must be positive: %v", B.scalars()), deco: []string{"Vectors"}}
	}
	const deg2rad = math.Pi / 180.0
	cosa := math.Cos(deg2rad * B.Alpha)
	cosb := math.Cos(deg2rad * B.Beta)
	cosg := math.Cos(deg2rad * B.Gamma)
	sing := math.Sin(deg2rad * B.Gamma)
	if math.Abs(sing) < boxAbsTol {
		return nil, &ConfigurationError{msg: fmt.Sprintf("mdgeom: Degenerate cell, gamma: %5.3f", B.Gamma), deco: []string{"Vectors"}}
	}
	cx := B.Lz * cosb
	cy := B.Lz * (cosa - cosb*cosg) / sing
	cz2 := B.Lz*B.Lz - cx*cx - cy*cy
	if cz2 <= 0 {
		return nil, &ConfigurationError{msg: fmt.Sprintf("mdgeom: Cell angles are inconsistent: %v", B.scalars()), deco: []string{"Vectors"}}
	}
	vecs := []float64{
		B.Lx, 0, 0,
		B.Ly * cosg, B.Ly * sing, 0,
		cx, cy, math.Sqrt(cz2),
	}
	cell, err := v3.NewMatrix(vecs)
	if err != nil {
		return nil, errDecorate(&ConfigurationError{msg: err.Error()}, "Vectors")
	}
	return cell, nil
}

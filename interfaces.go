/*
 * interfaces.go, part of mdgeom.
 *
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
 *
 */

package mdgeom

import v3 "github.com/rmera/gochem/v3"

/*The analyses in this package never own coordinates or trajectories. They
 * only read them through the following interfaces, which any simulation
 * engine (goChem included) should be able to satisfy with thin wrappers.*/

// AtomGroup is a read-only, ordered set of atom positions with an optional
// unit cell. The returned coordinates must not be modified by the caller
// of the functions in this package, and they never are by the package itself.
type AtomGroup interface {

	//Len returns the number of atoms in the group.
	Len() int

	//Coords returns the positions of the atoms as a Len()x3 matrix,
	//in the order of the group.
	Coords() *v3.Matrix

	//Box returns the unit cell associated to the group, or nil if the
	//group is not periodic.
	Box() *Box
}

// Simulation gives access to the metadata of one trajectory. Frame
// coordinates themselves are not needed here, only the counts and times.
type Simulation interface {

	//Len returns the number of atoms per frame.
	Len() int

	//Frames returns the number of frames stored in the trajectory.
	Frames() int

	//Box returns the unit cell from the first frame of the trajectory,
	//or nil if the simulation has no regular box.
	Box() *Box

	//TotalTime returns the total simulated time, in ps.
	TotalTime() float64

	//Dt returns the time between stored frames, in ps.
	Dt() float64
}

//Errors

// Error is the interface for errors that this library implements, following
// the goChem convention. The Decorate method allows to add and retrieve info
// from the error, without changing its type or wrapping it around something
// else. If passed an empty string, it should just return the current
// decoration slice, not add the empty string to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

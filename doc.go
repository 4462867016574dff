/*
 * doc.go, part of mdgeom.
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

/*Package mdgeom provides small geometric analyses for molecular dynamics
trajectory data, using the goChem v3.Matrix type as coordinate currency.


	**mdgeom Capabilities**

    Calculates per-atom minimum-image distances between two groups of atoms
    under periodic boundary conditions, for orthogonal and triclinic unit
    cells, or plain Euclidean distances when no cell is present.

    Calculates the corresponding minimum-image difference vectors.

    Extracts summary metadata from a simulation (atom count, unit cell,
    frame count, total time, time between frames) and prints a comparison
    table for several simulations, suitable for the Methods section of
    a paper.

The package does not read trajectories or topologies itself. It consumes
them through the small AtomGroup and Simulation interfaces, so any engine
that can expose coordinates and cell information (goChem molecules and
trajectory readers among them) can be analyzed, and the functions can be
tested against lightweight fakes.

Unit cells are described by the three edge lengths (in A) and the three
angles (in degrees) of the cell parallelepiped. A simulation without
periodic boundary conditions simply has no cell (a nil *Box).*/
package mdgeom

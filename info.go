/*
 * info.go, part of mdgeom.
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
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

//summaryKeys is the fixed column order of the summary table, which is also
//the set of keys returned by Extract.
var summaryKeys = []string{"n_atoms", "Lx", "Ly", "Lz", "alpha", "beta",
	"gamma", "n_frames", "totaltime", "dt"}

var summaryHeaders = []string{"simulation", "n_atoms", "Lx/A", "Ly/A",
	"Lz/A", "alpha", "beta", "gamma", "n_frames", "totaltime/ns", "dt/ps"}

// Extract returns summary information about a simulation as a map with
// exactly the keys:
//
//	n_atoms: number of atoms
//	Lx, Ly, Lz: edge lengths of the unit cell in A, from the first frame
//	alpha, beta, gamma: angles of the unit cell in degrees
//	n_frames: number of frames in the trajectory
//	totaltime: total simulated time in ps
//	dt: time between stored frames in ps
//
// A simulation without a regular box is a valid, supported case: the six
// cell fields are all zero then, and no error occurs.
func Extract(s Simulation) map[string]float64 {
	box := s.Box()
	if box == nil {
		//no regular box, reported as the zero sentinel
		box = &Box{}
	}
	return map[string]float64{
		"n_atoms":   float64(s.Len()),
		"Lx":        box.Lx,
		"Ly":        box.Ly,
		"Lz":        box.Lz,
		"alpha":     box.Alpha,
		"beta":      box.Beta,
		"gamma":     box.Gamma,
		"n_frames":  float64(s.Frames()),
		"totaltime": s.TotalTime(),
		"dt":        s.Dt(),
	}
}

// Summary prints to the standard output a table with the metadata of the
// given simulations, one row per simulation, with the total time converted
// from ps to ns. labels must contain one element per simulation (it may be
// empty strings); a label/simulation count mismatch returns a
// ConfigurationError before anything is printed.
func Summary(sims []Simulation, labels []string) error {
	return FSummary(os.Stdout, sims, labels)
}

// FSummary is Summary writing to an arbitrary io.Writer.
func FSummary(w io.Writer, sims []Simulation, labels []string) error {
	if len(labels) != len(sims) {
		err := &ConfigurationError{msg: fmt.Sprintf("mdgeom: Got %d labels for %d simulations, need one per simulation", len(labels), len(sims))}
		return errDecorate(err, "FSummary")
	}
	t := table.New().Border(lipgloss.NormalBorder()).Headers(summaryHeaders...)
	for i, s := range sims {
		data := Extract(s)
		data["totaltime"] /= 1000 //ps to ns
		row := make([]string, 1, len(summaryKeys)+1)
		row[0] = labels[i]
		for _, key := range summaryKeys {
			row = append(row, formatField(key, data[key]))
		}
		t.Row(row...)
	}
	_, err := fmt.Fprintln(w, t)
	return err
}

// formatField renders one metadata value for the summary table. Counts are
// printed as integers, everything else with the shortest exact
// representation.
func formatField(key string, v float64) string {
	if key == "n_atoms" || key == "n_frames" {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

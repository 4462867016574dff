/*
 * plot_test.go
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

package geomplot

import (
	"os"
	"path/filepath"
	"testing"
)

//TestDistanceProfile plots a small set of FRET pair distances.
func TestDistanceProfile(Te *testing.T) {
	dists := []float64{29.67992244, 38.36642607, 42.18877151}
	name := filepath.Join(Te.TempDir(), "fret")
	if err := DistanceProfile(dists, "AdK FRET distances", name); err != nil {
		Te.Error(err)
	}
	info, err := os.Stat(name + ".png")
	if err != nil {
		Te.Error(err)
	} else if info.Size() == 0 {
		Te.Error("empty plot file written")
	}
	if err := DistanceProfile(nil, "empty", name); err == nil {
		Te.Error("expected an error for empty data")
	}
}

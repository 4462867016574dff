/*
 * errors.go, part of mdgeom.
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

// SizeMismatchError is returned when the two AtomGroups given to a distance
// or vector calculation contain different numbers of atoms.
type SizeMismatchError struct {
	msg  string
	deco []string
}

// Error returns a string with an error message.
func (err *SizeMismatchError) Error() string {
	return err.msg
}

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice. An empty dec only returns the current slice.
func (err *SizeMismatchError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// ConfigurationError is returned when the unit cells of two AtomGroups are
// incompatible (only one group has a cell, or the cells differ beyond
// tolerance), when a cell is geometrically invalid, or when the arguments
// to the summary reporter are inconsistent.
type ConfigurationError struct {
	msg  string
	deco []string
}

// Error returns a string with an error message.
func (err *ConfigurationError) Error() string {
	return err.msg
}

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice. An empty dec only returns the current slice.
func (err *ConfigurationError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that err implements the library Error interface and
// decorates it with the caller's name before returning it. As in goChem,
// calling it with a foreign error is a programming mistake and panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

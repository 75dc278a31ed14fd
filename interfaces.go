/*
 * interfaces.go, part of molcalc.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

// Substance is anything with a molar mass and a number of atoms per
// formula unit. Element and *Formula implement it, so all the quantity
// conversions take either.
type Substance interface {

	//MolarMass returns the mass of one mole, in g/mol
	MolarMass() float64

	//AtomCount returns the number of atoms in one formula unit.
	//An Element counts as 1.
	AtomCount() int
}

// Masser can return the masses of each element in a formula, in the
// order of the formula.
type Masser interface {
	Masses() []float64
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
// The decoration slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing.
// If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
type Error interface {
	Error() string
	Decorate(string) []string
}

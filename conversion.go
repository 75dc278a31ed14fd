/*
 * conversion.go, part of molcalc.
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

import (
	"fmt"
	"strings"
)

//This provides the conversions between amounts of a substance,
//and the constants they need.

//Constants
const (
	Avogadro       = 6.02214076e23 //particles per mol
	MolarVolumeSTP = 22.4          //L/mol for an ideal gas at STP
)

//Note that the conversions below are not all symmetric: mass->atoms counts
//every atom of the formula unit, but atoms->mass and mass->particles don't.
//Nothing is rounded.

// MassToMoles converts grams to moles.
func MassToMoles(s Substance, mass float64) float64 {
	return mass / s.MolarMass()
}

// MolesToMass converts moles to grams.
func MolesToMass(s Substance, moles float64) float64 {
	return moles * s.MolarMass()
}

// MassToAtoms converts grams to the number of atoms, counting every atom in each formula unit.
func MassToAtoms(s Substance, mass float64) float64 {
	return mass / s.MolarMass() * Avogadro * float64(s.AtomCount())
}

// AtomsToMass converts a number of atoms to grams. The atoms are taken
// as formula units.
func AtomsToMass(s Substance, atoms float64) float64 {
	return atoms / Avogadro * s.MolarMass()
}

// MassToParticles converts grams to the number of formula units.
func MassToParticles(s Substance, mass float64) float64 {
	return mass / s.MolarMass() * Avogadro
}

// ParticlesToMass converts a number of formula units to grams.
func ParticlesToMass(s Substance, particles float64) float64 {
	return particles / Avogadro * s.MolarMass()
}

// MolesToAtoms converts moles to the number of atoms, counting every atom in each formula unit.
func MolesToAtoms(s Substance, moles float64) float64 {
	return moles * Avogadro * float64(s.AtomCount())
}

// AtomsToMoles converts a number of atoms to moles of formula units.
func AtomsToMoles(s Substance, atoms float64) float64 {
	return atoms / Avogadro / float64(s.AtomCount())
}

// MolesToLiters gives the volume of an ideal gas at STP.
func MolesToLiters(s Substance, moles float64) float64 {
	return moles * MolarVolumeSTP
}

// LitersToMoles gives the moles in a volume of ideal gas at STP.
func LitersToMoles(s Substance, liters float64) float64 {
	return liters / MolarVolumeSTP
}

// Unit is an amount of substance that can be converted to another.
type Unit int

const (
	Mass Unit = iota //grams
	Moles
	Atoms
	Particles
	Liters //of ideal gas at STP
)

var unitNames = map[Unit]string{
	Mass:      "mass",
	Moles:     "moles",
	Atoms:     "atoms",
	Particles: "particles",
	Liters:    "liters",
}

func (u Unit) String() string {
	if n, ok := unitNames[u]; ok {
		return n
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit reads a unit name, or one of its usual abbreviations.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mass", "g", "grams", "gram":
		return Mass, nil
	case "moles", "mole", "mol":
		return Moles, nil
	case "atoms", "atom":
		return Atoms, nil
	case "particles", "particle", "molecules":
		return Particles, nil
	case "liters", "liter", "litres", "l":
		return Liters, nil
	}
	return 0, &ValidationError{Value: s, Msg: "unknown unit"}
}

type conversion struct{ from, to Unit }

var conversions = map[conversion]func(Substance, float64) float64{
	{Mass, Moles}:     MassToMoles,
	{Moles, Mass}:     MolesToMass,
	{Mass, Atoms}:     MassToAtoms,
	{Atoms, Mass}:     AtomsToMass,
	{Mass, Particles}: MassToParticles,
	{Particles, Mass}: ParticlesToMass,
	{Moles, Atoms}:    MolesToAtoms,
	{Atoms, Moles}:    AtomsToMoles,
	{Moles, Liters}:   MolesToLiters,
	{Liters, Moles}:   LitersToMoles,
}

// Convert converts q, given in from units, to to units. Only the direct
// conversions implemented in this file are available, anything else
// returns a DomainError.
func Convert(s Substance, q float64, from, to Unit) (float64, error) {
	if from == to {
		return q, nil
	}
	f, ok := conversions[conversion{from, to}]
	if !ok {
		return 0, &DomainError{Op: "Convert", Msg: fmt.Sprintf("no conversion from %s to %s", from, to)}
	}
	return f(s, q), nil
}

// ConvertText is like Convert, but takes the substance as formula text, which
// is parsed with the default table.
func ConvertText(formula string, q float64, from, to Unit) (float64, error) {
	s, err := AsSubstance(formula)
	if err != nil {
		return 0, errDecorate(err, "ConvertText")
	}
	r, err := Convert(s, q, from, to)
	return r, errDecorate(err, "ConvertText")
}

// AsSubstance returns v as a Substance. v can be an Element, a *Formula,
// or a string with a formula, which will be parsed with the default table.
func AsSubstance(v interface{}) (Substance, error) {
	switch s := v.(type) {
	case Element:
		return s, nil
	case *Element:
		if s == nil {
			return nil, &DomainError{Op: "AsSubstance", Msg: "nil *Element"}
		}
		return *s, nil
	case *Formula:
		if s == nil {
			return nil, &DomainError{Op: "AsSubstance", Msg: "nil *Formula"}
		}
		return s, nil
	case string:
		f, err := NewFormula(s)
		if err != nil {
			return nil, errDecorate(err, "AsSubstance")
		}
		return f, nil
	}
	return nil, &DomainError{Op: "AsSubstance", Msg: fmt.Sprintf("%T is not a substance", v)}
}

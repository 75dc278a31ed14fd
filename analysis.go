/*
 * analysis.go, part of molcalc.
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
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// fractionTol is the relative tolerance for mass fractions to add up to 1 or 100.
const fractionTol = 1e-6

// maxRatio is the largest atom ratio accepted when deriving empirical and
// molecular formulas.
const maxRatio = 1e6

// Share is the mass percentage of one element in a formula.
type Share struct {
	Element Element
	Count   int
	Percent float64
}

// PercentComposition returns the percentage of the molar mass of F that
// each of its elements accounts for, in the order of the formula.
// If round is true, percentages are rounded to 2 decimal places.
func PercentComposition(F *Formula, round bool) []Share {
	masses := F.Masses()
	total := floats.Sum(masses)
	floats.Scale(100/total, masses)
	ret := make([]Share, 0, len(masses))
	for i, e := range F.Elements() {
		p := masses[i]
		if round {
			p = scalar.Round(p, 2)
		}
		ret = append(ret, Share{Element: e, Count: F.Count(e.Symbol), Percent: p})
	}
	return ret
}

// PercentError returns |actual-theoretical|/theoretical*100.
func PercentError(actual, theoretical float64) (float64, error) {
	for _, v := range []float64{actual, theoretical} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, &ValidationError{Value: strconv.FormatFloat(v, 'g', -1, 64), Msg: "not a finite number", deco: []string{"PercentError"}}
		}
	}
	if theoretical == 0 {
		return 0, &ValidationError{Value: "0", Msg: "theoretical value can't be zero", deco: []string{"PercentError"}}
	}
	return math.Abs(actual-theoretical) / theoretical * 100, nil
}

// EmpiricalFormula returns the smallest whole-number formula for the given mass fractions,
// using the default table.
func EmpiricalFormula(fractions map[string]float64) (*Formula, error) {
	f, err := Default().EmpiricalFormula(fractions)
	return f, errDecorate(err, "EmpiricalFormula")
}

// EmpiricalFormula returns the smallest whole-number formula for the given mass fractions
// of each element. The keys can be any element identifier. The fractions must add up to either
// 1 or 100. The formula is in Hill order.
func (T *Table) EmpiricalFormula(fractions map[string]float64) (*Formula, error) {
	if len(fractions) == 0 {
		return nil, &ValidationError{Value: "", Msg: "no mass fractions given", deco: []string{"EmpiricalFormula"}}
	}
	bySym := make(map[string]float64, len(fractions))
	for k, v := range fractions {
		e, err := T.Resolve(k)
		if err != nil {
			return nil, &ValidationError{Value: k, Msg: "not an element", deco: []string{"EmpiricalFormula"}, cause: err}
		}
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, &ValidationError{Value: fmt.Sprint(v), Msg: fmt.Sprintf("fraction for %s must be a positive number", k), deco: []string{"EmpiricalFormula"}}
		}
		bySym[e.Symbol] += v
	}
	syms := make([]string, 0, len(bySym))
	for s := range bySym {
		syms = append(syms, s)
	}
	syms = hillOrder(syms)
	moles := make([]float64, len(syms))
	for i, s := range syms {
		moles[i] = bySym[s]
	}
	sum := floats.Sum(moles)
	switch {
	case scalar.EqualWithinRel(sum, 1, fractionTol):
	case scalar.EqualWithinRel(sum, 100, fractionTol):
		floats.Scale(0.01, moles)
	default:
		return nil, &ValidationError{Value: strconv.FormatFloat(sum, 'g', -1, 64), Msg: "mass fractions must add up to 1 or 100", deco: []string{"EmpiricalFormula"}}
	}
	for i, s := range syms {
		moles[i] /= T.elements[T.bySymbol[s]].Mass
	}
	floats.Scale(1/floats.Min(moles), moles)
	var c Composition
	for i, s := range syms {
		if !(moles[i] <= maxRatio) {
			return nil, &ValidationError{Value: strconv.FormatFloat(moles[i], 'g', -1, 64), Msg: fmt.Sprintf("atom ratio for %s is out of range", s), deco: []string{"EmpiricalFormula"}}
		}
		c.Add(s, int(scalar.RoundEven(moles[i], 0)))
	}
	f, err := newFormula(T, c)
	return f, errDecorate(err, "EmpiricalFormula")
}

// MolecularFormula scales the empirical formula so its molar mass
// matches mass as closely as possible.
func MolecularFormula(empirical *Formula, mass float64) (*Formula, error) {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, &ValidationError{Value: strconv.FormatFloat(mass, 'g', -1, 64), Msg: "molecular mass must be a positive number", deco: []string{"MolecularFormula"}}
	}
	ratio := mass / empirical.MolarMass()
	if !(ratio <= maxRatio) {
		return nil, &ValidationError{Value: strconv.FormatFloat(mass, 'g', -1, 64), Msg: fmt.Sprintf("molecular mass is too large for %s", empirical), deco: []string{"MolecularFormula"}}
	}
	factor := int(scalar.RoundEven(ratio, 0))
	if factor < 1 {
		return nil, &ValidationError{Value: strconv.FormatFloat(mass, 'g', -1, 64), Msg: fmt.Sprintf("molecular mass is smaller than the mass of %s", empirical), deco: []string{"MolecularFormula"}}
	}
	f, err := empirical.Scale(factor)
	return f, errDecorate(err, "MolecularFormula")
}

/*
 * formula.go, part of molcalc.
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
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Unknown is the name of a formula that is neither in the compound table
// nor a single element.
const Unknown = "Unknown"

// Formula is a compound, given as the number of atoms of each element.
// All the symbols in a Formula are in its table and all the counts are
// positive. Formulas are not modified after they are created; the
// arithmetic methods return new ones.
type Formula struct {
	comp Composition
	tab  *Table
}

var (
	_ Substance = (*Formula)(nil)
	_ Masser    = (*Formula)(nil)
	_ Substance = Element{}
)

// newFormula checks that c is a valid formula for tab and wraps it.
func newFormula(tab *Table, c Composition) (*Formula, error) {
	if c.Len() == 0 {
		return nil, &DomainError{Op: "Formula", Msg: "a formula needs at least one element"}
	}
	total := 0
	for _, s := range c.symbols {
		if _, ok := tab.bySymbol[s]; !ok {
			return nil, &LookupError{Key: s, What: "element symbol", deco: []string{"newFormula"}}
		}
		n := c.counts[s]
		if n <= 0 {
			return nil, &DomainError{Op: "Formula", Msg: fmt.Sprintf("count for %s must be positive, got %d", s, n)}
		}
		if n > math.MaxInt-total {
			return nil, &DomainError{Op: "Formula", Msg: "too many atoms"}
		}
		total += n
	}
	return &Formula{comp: c, tab: tab}, nil
}

// NewFormula parses text and returns the formula, using the default table.
func NewFormula(text string) (*Formula, error) {
	f, err := Default().Formula(text)
	return f, errDecorate(err, "NewFormula")
}

// Formula parses text (i.e. "Fe2(SO4)3") and returns the formula.
func (T *Table) Formula(text string) (*Formula, error) {
	text = strings.TrimSpace(text)
	if text != "" && strings.Trim(text, "0123456789") == "" {
		return nil, &ParseError{Input: text, Pos: 0, Msg: "a number is not a formula", deco: []string{"Formula"}}
	}
	c, err := ParseFormula(text)
	if err != nil {
		return nil, errDecorate(err, "Formula")
	}
	f, err := newFormula(T, c)
	return f, errDecorate(err, "Formula")
}

// FormulaFromMap builds a formula from a map of element identifiers to counts.
// The identifiers can be anything Resolve accepts, so {"O": 1, "hydrogen": 2}
// is water. If two keys are the same element, their counts are added.
// The formula is in Hill order.
func (T *Table) FormulaFromMap(m map[string]int) (*Formula, error) {
	counts := make(map[string]int, len(m))
	for k, v := range m {
		e, err := T.Resolve(k)
		if err != nil {
			return nil, errDecorate(err, "FormulaFromMap")
		}
		counts[e.Symbol] += v
	}
	f, err := newFormula(T, CompositionFromMap(counts))
	return f, errDecorate(err, "FormulaFromMap")
}

// FormulaFromComposition returns a formula with the same symbols and counts
// as c, in the same order. Symbols must be written as in the table.
func (T *Table) FormulaFromComposition(c Composition) (*Formula, error) {
	f, err := newFormula(T, c.Copy())
	return f, errDecorate(err, "FormulaFromComposition")
}

// FormulaFromCAS returns the formula of the compound with the given
// CAS number.
func (T *Table) FormulaFromCAS(cas string) (*Formula, error) {
	if err := ValidateCAS(cas); err != nil {
		return nil, errDecorate(err, "FormulaFromCAS")
	}
	c, err := T.Compound(cas)
	if err != nil {
		return nil, errDecorate(err, "FormulaFromCAS")
	}
	f, err := newFormula(T, c.comp.Copy())
	return f, errDecorate(err, "FormulaFromCAS")
}

// String returns the formula text, i.e. H2O
func (F *Formula) String() string {
	return F.comp.String()
}

// Composition returns a copy of the element counts.
func (F *Formula) Composition() Composition {
	return F.comp.Copy()
}

// Count returns how many atoms of the element with symbol sym there are.
func (F *Formula) Count(sym string) int {
	return F.comp.Count(sym)
}

// Len returns the number of different elements.
func (F *Formula) Len() int {
	return F.comp.Len()
}

// Elements returns the elements of the formula, in order.
func (F *Formula) Elements() []Element {
	ret := make([]Element, 0, F.comp.Len())
	for _, s := range F.comp.symbols {
		ret = append(ret, F.tab.elements[F.tab.bySymbol[s]])
	}
	return ret
}

// Masses returns, for each element in order, its atomic mass times its count.
func (F *Formula) Masses() []float64 {
	ret := make([]float64, 0, F.comp.Len())
	for _, e := range F.Elements() {
		ret = append(ret, e.Mass*float64(F.comp.counts[e.Symbol]))
	}
	return ret
}

// MolarMass returns the sum of the masses of all the atoms, in g/mol.
// It is always computed from the current composition.
func (F *Formula) MolarMass() float64 {
	return floats.Sum(F.Masses())
}

// AtomCount returns the total number of atoms.
func (F *Formula) AtomCount() int {
	return F.comp.Atoms()
}

// Name returns the name of the compound, if it is in the compound table,
// the name of the element if there is only one, or Unknown.
func (F *Formula) Name() string {
	if c, ok := F.tab.compoundFor(F.comp); ok && c.Name() != "" {
		return c.Name()
	}
	if F.comp.Len() == 1 {
		return F.Elements()[0].Name
	}
	return Unknown
}

// CAS returns the CAS number of the compound, or "" if it is not in the table.
func (F *Formula) CAS() string {
	if c, ok := F.tab.compoundFor(F.comp); ok {
		return c.CAS
	}
	return ""
}

// Equal returns true if both formulas have the same counts for each element.
// Order doesn't matter.
func (F *Formula) Equal(o *Formula) bool {
	return F.comp.Equal(o.comp)
}

// Less returns true if F is lighter than o.
func (F *Formula) Less(o *Formula) bool {
	return F.MolarMass() < o.MolarMass()
}

// Compare returns -1, 0 or 1 when F's molar mass is lower, equal to
// or higher than o's.
func (F *Formula) Compare(o *Formula) int {
	a, b := F.MolarMass(), o.MolarMass()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Add returns a new formula with the atoms of both. Counts of elements
// present in both are added.
func (F *Formula) Add(o *Formula) (*Formula, error) {
	c := F.comp.Copy()
	c.Merge(o.comp)
	f, err := newFormula(F.tab, c)
	return f, errDecorate(err, "Formula.Add")
}

// AddElement returns a new formula with one more atom of e.
func (F *Formula) AddElement(e Element) (*Formula, error) {
	c := F.comp.Copy()
	c.Add(e.Symbol, 1)
	f, err := newFormula(F.tab, c)
	return f, errDecorate(err, "Formula.AddElement")
}

// Scale returns a new formula with every count multiplied by n.
func (F *Formula) Scale(n int) (*Formula, error) {
	if n <= 0 {
		return nil, &DomainError{Op: "Formula.Scale", Msg: fmt.Sprintf("factor must be positive, got %d", n)}
	}
	if s := F.comp.overflows(n); s != "" {
		return nil, &DomainError{Op: "Formula.Scale", Msg: fmt.Sprintf("%d times %d atoms of %s is too many", n, F.comp.counts[s], s)}
	}
	f, err := newFormula(F.tab, F.comp.Scaled(n))
	return f, errDecorate(err, "Formula.Scale")
}

// Subtract returns a new formula with the atoms of o removed from F.
// Every element in o must be in F, with at least as many atoms.
// Elements whose count reaches zero are dropped.
func (F *Formula) Subtract(o *Formula) (*Formula, error) {
	c := F.comp.Copy()
	for _, s := range o.comp.symbols {
		if err := subtractFrom(&c, s, o.comp.counts[s], "Formula.Subtract"); err != nil {
			return nil, err
		}
	}
	f, err := newFormula(F.tab, c)
	return f, errDecorate(err, "Formula.Subtract")
}

// SubtractElement returns a new formula with one atom of e less.
func (F *Formula) SubtractElement(e Element) (*Formula, error) {
	c := F.comp.Copy()
	if err := subtractFrom(&c, e.Symbol, 1, "Formula.SubtractElement"); err != nil {
		return nil, err
	}
	f, err := newFormula(F.tab, c)
	return f, errDecorate(err, "Formula.SubtractElement")
}

func subtractFrom(c *Composition, sym string, n int, op string) error {
	have, ok := c.counts[sym]
	switch {
	case !ok:
		return &DomainError{Op: op, Msg: fmt.Sprintf("%s is not in the formula", sym)}
	case have < n:
		return &DomainError{Op: op, Msg: fmt.Sprintf("cannot remove %d %s, only %d present", n, sym, have)}
	case have == n:
		c.remove(sym)
	default:
		c.counts[sym] = have - n
	}
	return nil
}

/*
 * element.go, part of molcalc.
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

import "fmt"

// Element is one row of the periodic table. Elements are values, and are
// equal if they have the same symbol.
type Element struct {
	Symbol    string
	Name      string
	Number    int     //atomic number
	Mass      float64 //atomic mass, g/mol
	Metal     bool
	Metalloid bool
	Nonmetal  bool
	tab       *Table //the table the element comes from
}

// NewElement returns the element of the default table that id stands for.
// id can be a symbol (in any case), a name, an atomic number or an
// atomic mass; they are tried in that order.
func NewElement(id string) (Element, error) {
	e, err := Default().Resolve(id)
	return e, errDecorate(err, "NewElement")
}

// NewElementByNumber returns the element with atomic number n from the default table.
func NewElementByNumber(n int) (Element, error) {
	e, err := Default().Element(NumberKey(n))
	return e, errDecorate(err, "NewElementByNumber")
}

// NewElementByMass returns the element with atomic mass m from the default table.
func NewElementByMass(m float64) (Element, error) {
	e, err := Default().Element(MassKey(m))
	return e, errDecorate(err, "NewElementByMass")
}

func (E Element) String() string {
	return E.Symbol
}

// table returns the table E came from, or the default one for a zero Element.
func (E Element) table() *Table {
	if E.tab == nil {
		return Default()
	}
	return E.tab
}

// Category returns "metal", "metalloid", "nonmetal" or "unknown".
func (E Element) Category() string {
	switch {
	case E.Metal:
		return "metal"
	case E.Metalloid:
		return "metalloid"
	case E.Nonmetal:
		return "nonmetal"
	}
	return "unknown"
}

// MolarMass returns the atomic mass. It implements Substance.
func (E Element) MolarMass() float64 {
	return E.Mass
}

// AtomCount is always 1 for an element. It implements Substance.
func (E Element) AtomCount() int {
	return 1
}

// Equal returns true if E and o have the same symbol.
func (E Element) Equal(o Element) bool {
	return E.Symbol == o.Symbol
}

// Less returns true if E has a lower atomic number than o.
func (E Element) Less(o Element) bool {
	return E.Number < o.Number
}

// Compare returns -1, 0 or 1 when E's atomic number is lower, equal or
// higher than o's.
func (E Element) Compare(o Element) int {
	switch {
	case E.Number < o.Number:
		return -1
	case E.Number > o.Number:
		return 1
	}
	return 0
}

// Formula returns a formula with just one atom of E.
func (E Element) Formula() (*Formula, error) {
	if E.Symbol == "" {
		return nil, &DomainError{Op: "Element.Formula", Msg: "uninitialized element"}
	}
	var c Composition
	c.Add(E.Symbol, 1)
	f, err := newFormula(E.table(), c)
	return f, errDecorate(err, "Element.Formula")
}

// Add returns a formula with one atom of each element. If both are the
// same element, the result has 2 atoms of it.
func (E Element) Add(o Element) (*Formula, error) {
	if E.Symbol == "" || o.Symbol == "" {
		return nil, &DomainError{Op: "Element.Add", Msg: "uninitialized element"}
	}
	var c Composition
	c.Add(E.Symbol, 1)
	c.Add(o.Symbol, 1)
	f, err := newFormula(E.table(), c)
	return f, errDecorate(err, "Element.Add")
}

// Scale returns a formula with n atoms of E.
func (E Element) Scale(n int) (*Formula, error) {
	if E.Symbol == "" {
		return nil, &DomainError{Op: "Element.Scale", Msg: "uninitialized element"}
	}
	if n <= 0 {
		return nil, &DomainError{Op: "Element.Scale", Msg: fmt.Sprintf("count must be positive, got %d", n)}
	}
	var c Composition
	c.Add(E.Symbol, n)
	f, err := newFormula(E.table(), c)
	return f, errDecorate(err, "Element.Scale")
}

// Subtract always fails: elements can't be subtracted.
func (E Element) Subtract(o Element) error {
	return &DomainError{Op: "Element.Subtract", Msg: fmt.Sprintf("cannot subtract %s from %s", o, E)}
}

// Divide always fails: elements can't be divided.
func (E Element) Divide(o interface{}) error {
	return &DomainError{Op: "Element.Divide", Msg: fmt.Sprintf("cannot divide %s", E)}
}

// Mod always fails.
func (E Element) Mod(o interface{}) error {
	return &DomainError{Op: "Element.Mod", Msg: fmt.Sprintf("cannot take the modulo of %s", E)}
}

// Pow always fails.
func (E Element) Pow(o interface{}) error {
	return &DomainError{Op: "Element.Pow", Msg: fmt.Sprintf("cannot raise %s to a power", E)}
}

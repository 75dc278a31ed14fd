/*
 * parser_test.go, part of molcalc.
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
	"errors"
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

func TestParseFormula(Te *testing.T) {
	cases := []struct {
		in    string
		want  map[string]int
		order []string
	}{
		{"H2O", map[string]int{"H": 2, "O": 1}, []string{"H", "O"}},
		{"Fe2(SO4)3", map[string]int{"Fe": 2, "S": 3, "O": 12}, []string{"Fe", "S", "O"}},
		{"Ca(OH)2", map[string]int{"Ca": 1, "O": 2, "H": 2}, []string{"Ca", "O", "H"}},
		{"Mg(NO3)2", map[string]int{"Mg": 1, "N": 2, "O": 6}, []string{"Mg", "N", "O"}},
		{"C6H12O6", map[string]int{"C": 6, "H": 12, "O": 6}, []string{"C", "H", "O"}},
		{"CH3COOH", map[string]int{"C": 2, "H": 4, "O": 2}, []string{"C", "H", "O"}},
		{"C2H5OH", map[string]int{"C": 2, "H": 6, "O": 1}, []string{"C", "H", "O"}},
		{"NaCl", map[string]int{"Na": 1, "Cl": 1}, []string{"Na", "Cl"}},
		{"(NH4)2SO4", map[string]int{"N": 2, "H": 8, "S": 1, "O": 4}, []string{"N", "H", "S", "O"}},
		{"K4(Fe(CN)6)", map[string]int{"K": 4, "Fe": 1, "C": 6, "N": 6}, []string{"K", "Fe", "C", "N"}},
		{"((CH3)3C)2O", map[string]int{"C": 8, "H": 18, "O": 1}, []string{"C", "H", "O"}},
		{"Ca3(PO4)2", map[string]int{"Ca": 3, "P": 2, "O": 8}, []string{"Ca", "P", "O"}},
		{"(OH)", map[string]int{"O": 1, "H": 1}, []string{"O", "H"}},
		{"h2o", map[string]int{"H": 2, "O": 1}, []string{"H", "O"}},
		{"co", map[string]int{"C": 1, "O": 1}, []string{"C", "O"}},
		{"Co", map[string]int{"Co": 1}, []string{"Co"}},
		{"Uuo", map[string]int{"Uu": 1, "O": 1}, []string{"Uu", "O"}},
		{"C12H22O11", map[string]int{"C": 12, "H": 22, "O": 11}, []string{"C", "H", "O"}},
		{"C99", map[string]int{"C": 99}, []string{"C"}},
		//Counts are read with at most 2 digits, the third digit is a new count.
		{"C123", map[string]int{"C": 15}, []string{"C"}},
		{"(CH)105", map[string]int{"C": 15, "H": 15}, []string{"C", "H"}},
	}
	for _, c := range cases {
		got, err := ParseFormula(c.in)
		if err != nil {
			Te.Errorf("ParseFormula(%q): unexpected error %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(got.Map(), c.want) {
			Te.Errorf("ParseFormula(%q) = %v, want %v", c.in, got.Map(), c.want)
		}
		if !reflect.DeepEqual(got.Symbols(), c.order) {
			Te.Errorf("ParseFormula(%q) order = %v, want %v", c.in, got.Symbols(), c.order)
		}
	}
}

func TestParseFormulaErrors(Te *testing.T) {
	cases := []struct {
		in  string
		pos int
	}{
		{"", -1},
		{"H2O!", 3},
		{"H 2", 1},
		{"Fe2(SO4", 3},
		{"SO4)2", 3},
		{"()2", 0},
		{"H0", 1},
		{"2H", 0},
		{"(2H)", 1},
		{"Ca(OH)2)", 7},
		{"NaCl-", 4},
	}
	for _, c := range cases {
		got, err := ParseFormula(c.in)
		if err == nil {
			Te.Errorf("ParseFormula(%q) = %v, expected an error", c.in, got)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			Te.Errorf("ParseFormula(%q): error %v is not a ParseError", c.in, err)
			continue
		}
		if pe.Pos != c.pos {
			Te.Errorf("ParseFormula(%q): error at %d, want %d (%v)", c.in, pe.Pos, c.pos, err)
		}
		if got.Len() != 0 {
			Te.Errorf("ParseFormula(%q): got a partial result %v with the error", c.in, got)
		}
	}
}

func TestParseDeepNesting(Te *testing.T) {
	in := ""
	for i := 0; i < 2000; i++ {
		in += "("
	}
	in += "H"
	for i := 0; i < 2000; i++ {
		in += ")"
	}
	c, err := ParseFormula(in)
	if err != nil {
		Te.Fatal(err)
	}
	if c.Count("H") != 1 || c.Len() != 1 {
		Te.Errorf("deep nesting gave %v", c.Map())
	}
}

func TestParseCountOverflow(Te *testing.T) {
	in := "H99"
	for i := 0; i < 10; i++ {
		in = "(" + in + ")99"
	}
	got, err := ParseFormula(in)
	var pe *ParseError
	if !errors.As(err, &pe) {
		Te.Fatalf("ParseFormula(%q) = %v, %v; want a ParseError", in, got.Map(), err)
	}
	if got.Len() != 0 {
		Te.Errorf("got a partial result %v with the error", got.Map())
	}
	//the same depth is fine with small counts
	in = "H"
	for i := 0; i < 10; i++ {
		in = "(" + in + ")2"
	}
	if got, err = ParseFormula(in); err != nil || got.Count("H") != 1024 {
		Te.Errorf("ParseFormula(%q) = %v, %v", in, got.Map(), err)
	}
}

// Writing a composition and reading it back gives the same counts,
// as long as no count needs more than 2 digits.
func TestParseRoundTrip(Te *testing.T) {
	syms := make([]string, 0, Default().Len())
	for _, e := range Default().Elements() {
		syms = append(syms, e.Symbol)
	}
	rapid.Check(Te, func(t *rapid.T) {
		picked := rapid.SliceOfNDistinct(rapid.SampledFrom(syms), 1, 8, rapid.ID[string]).Draw(t, "symbols")
		var c Composition
		for _, s := range picked {
			c.Add(s, rapid.IntRange(1, 99).Draw(t, "count"))
		}
		text := c.String()
		back, err := ParseFormula(text)
		if err != nil {
			t.Fatalf("ParseFormula(%q): %v", text, err)
		}
		if !back.Equal(c) {
			t.Fatalf("round trip of %q gave %v, want %v", text, back.Map(), c.Map())
		}
		if back.String() != text {
			t.Fatalf("canonical text changed: %q -> %q", text, back.String())
		}
	})
}

// Repeating a symbol anywhere, in or out of groups, adds up.
func TestParseMergeAdds(Te *testing.T) {
	rapid.Check(Te, func(t *rapid.T) {
		a := rapid.IntRange(1, 9).Draw(t, "a")
		b := rapid.IntRange(1, 9).Draw(t, "b")
		m := rapid.IntRange(1, 9).Draw(t, "m")
		text := "O" + itoa(a) + "(O" + itoa(b) + ")" + itoa(m) + "O"
		c, err := ParseFormula(text)
		if err != nil {
			t.Fatalf("ParseFormula(%q): %v", text, err)
		}
		if want := a + b*m + 1; c.Count("O") != want {
			t.Fatalf("ParseFormula(%q) gave O%d, want O%d", text, c.Count("O"), want)
		}
	})
}

func itoa(i int) string {
	return string(rune('0' + i))
}

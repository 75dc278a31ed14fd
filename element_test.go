package chem

import (
	"errors"
	"testing"
)

func TestNewElement(Te *testing.T) {
	cases := []struct {
		id     string
		symbol string
	}{
		{"Fe", "Fe"},
		{"fe", "Fe"},
		{"FE", "Fe"},
		{" O ", "O"},
		{"iron", "Fe"},
		{"Oxygen", "O"},
		{"26", "Fe"},
		{"55.845", "Fe"},
		{"1.008", "H"},
		{"1", "H"},
		{"247", "Cm"}, //Cm and Bk both have 247 as mass, but 247 is not an atomic number either
		{"118", "Og"},
	}
	for _, c := range cases {
		e, err := NewElement(c.id)
		if err != nil {
			Te.Errorf("NewElement(%q): %v", c.id, err)
			continue
		}
		if e.Symbol != c.symbol {
			Te.Errorf("NewElement(%q) = %s, want %s", c.id, e.Symbol, c.symbol)
		}
	}
	for _, id := range []string{"", "Xx", "unobtainium", "0", "119", "-3", "1.5"} {
		e, err := NewElement(id)
		var le *LookupError
		if !errors.As(err, &le) {
			Te.Errorf("NewElement(%q) = %v, %v; want a LookupError", id, e, err)
		}
		if e != (Element{}) {
			Te.Errorf("NewElement(%q) returned a partial element %#v", id, e)
		}
	}
}

func TestElementKeys(Te *testing.T) {
	T := Default()
	e, err := T.Element(NumberKey(8))
	if err != nil || e.Symbol != "O" {
		Te.Errorf("NumberKey(8) = %v, %v", e, err)
	}
	e, err = T.Element(MassKey(15.999))
	if err != nil || e.Symbol != "O" {
		Te.Errorf("MassKey(15.999) = %v, %v", e, err)
	}
	e, err = T.Element(NameKey("sodium"))
	if err != nil || e.Symbol != "Na" {
		Te.Errorf("NameKey(sodium) = %v, %v", e, err)
	}
	//a symbol key doesn't match names
	if _, err = T.Element(SymbolKey("Sodium")); err == nil {
		Te.Errorf("SymbolKey(Sodium) should fail")
	}
	e, err = NewElementByNumber(79)
	if err != nil || e.Name != "Gold" {
		Te.Errorf("NewElementByNumber(79) = %v, %v", e, err)
	}
	e, err = NewElementByMass(196.97)
	if err != nil || e.Symbol != "Au" {
		Te.Errorf("NewElementByMass(196.97) = %v, %v", e, err)
	}
}

func TestElementCategory(Te *testing.T) {
	cases := map[string]string{
		"Fe": "metal",
		"Na": "metal",
		"Si": "metalloid",
		"B":  "metalloid",
		"O":  "nonmetal",
		"He": "nonmetal",
		"Og": "unknown",
	}
	for sym, cat := range cases {
		e, err := NewElement(sym)
		if err != nil {
			Te.Fatal(err)
		}
		if e.Category() != cat {
			Te.Errorf("%s category %s, want %s", sym, e.Category(), cat)
		}
	}
}

func TestElementOrdering(Te *testing.T) {
	h, _ := NewElement("H")
	o, _ := NewElement("O")
	o2, _ := NewElement("oxygen")
	if !h.Less(o) || o.Less(h) || h.Compare(o) != -1 || o.Compare(h) != 1 || o.Compare(o2) != 0 {
		Te.Errorf("elements should be ordered by atomic number")
	}
	if !o.Equal(o2) || o.Equal(h) {
		Te.Errorf("elements should be equal by symbol")
	}
}

func TestElementArithmetic(Te *testing.T) {
	h, _ := NewElement("H")
	o, _ := NewElement("O")
	f, err := h.Add(o)
	if err != nil {
		Te.Fatal(err)
	}
	if f.String() != "HO" || f.AtomCount() != 2 {
		Te.Errorf("H+O = %s", f)
	}
	//same element twice adds up, it doesn't collapse to 1.
	f, err = h.Add(h)
	if err != nil {
		Te.Fatal(err)
	}
	if f.Count("H") != 2 || f.Len() != 1 {
		Te.Errorf("H+H = %s", f)
	}
	f, err = o.Scale(3)
	if err != nil || f.String() != "O3" {
		Te.Errorf("O*3 = %v, %v", f, err)
	}
	if f, err := o.Formula(); err != nil || f.String() != "O" || f.Name() != "Oxygen" {
		Te.Errorf("O as formula: %v, %v", f, err)
	}
	var de *DomainError
	for i, err := range []error{
		h.Subtract(o),
		h.Divide(2),
		h.Mod(2),
		h.Pow(2),
	} {
		if !errors.As(err, &de) {
			Te.Errorf("operation %d: expected a DomainError, got %v", i, err)
		}
	}
	if _, err := o.Scale(0); !errors.As(err, &de) {
		Te.Errorf("O*0: expected a DomainError, got %v", err)
	}
	if _, err := o.Scale(-2); !errors.As(err, &de) {
		Te.Errorf("O*-2: expected a DomainError, got %v", err)
	}
	if _, err := (Element{}).Add(o); !errors.As(err, &de) {
		Te.Errorf("zero element: expected a DomainError, got %v", err)
	}
	if f, err := (Element{}).Formula(); f != nil || !errors.As(err, &de) {
		Te.Errorf("zero element as formula: got %v, %v", f, err)
	}
}

package chem

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

func TestConversions(Te *testing.T) {
	water, err := NewFormula("H2O")
	if err != nil {
		Te.Fatal(err)
	}
	if m := MassToMoles(water, 18.015); !near(m, 1) {
		Te.Errorf("18.015 g of water is %f mol, want 1", m)
	}
	if g := MolesToMass(water, 2); !near(g, 36.03) {
		Te.Errorf("2 mol of water is %f g", g)
	}
	//mass->atoms counts the 3 atoms of water, mass->particles doesn't.
	if a := MassToAtoms(water, 18.015); !near(a, 3*Avogadro) {
		Te.Errorf("18.015 g of water has %g atoms", a)
	}
	if p := MassToParticles(water, 18.015); !near(p, Avogadro) {
		Te.Errorf("18.015 g of water has %g particles", p)
	}
	//atoms->mass has no atom count factor
	if g := AtomsToMass(water, Avogadro); !near(g, 18.015) {
		Te.Errorf("Avogadro atoms of water weigh %f g", g)
	}
	if g := ParticlesToMass(water, Avogadro/2); !near(g, 18.015/2) {
		Te.Errorf("Avogadro/2 particles of water weigh %f g", g)
	}
	if a := MolesToAtoms(water, 1); !near(a, 3*Avogadro) {
		Te.Errorf("1 mol of water has %g atoms", a)
	}
	if m := AtomsToMoles(water, 3*Avogadro); !near(m, 1) {
		Te.Errorf("3*Avogadro atoms of water are %f mol", m)
	}
	if l := MolesToLiters(water, 2); !near(l, 44.8) {
		Te.Errorf("2 mol are %f L", l)
	}
	if m := LitersToMoles(water, 11.2); !near(m, 0.5) {
		Te.Errorf("11.2 L are %f mol", m)
	}
	fe, _ := NewElement("Fe")
	if m := MassToMoles(fe, 55.845); !near(m, 1) {
		Te.Errorf("55.845 g of Fe is %f mol", m)
	}
	if a := MolesToAtoms(fe, 1); !near(a, Avogadro) {
		Te.Errorf("1 mol of Fe has %g atoms", a)
	}
}

func TestConvert(Te *testing.T) {
	co2, _ := NewFormula("CO2")
	cases := []struct {
		from, to string
		q, want  float64
	}{
		{"g", "mol", co2.MolarMass(), 1},
		{"mol", "g", 1, co2.MolarMass()},
		{"mass", "atoms", co2.MolarMass(), 3 * Avogadro},
		{"atoms", "mass", Avogadro, co2.MolarMass()},
		{"g", "particles", co2.MolarMass(), Avogadro},
		{"particles", "g", Avogadro, co2.MolarMass()},
		{"mol", "atoms", 1, 3 * Avogadro},
		{"atoms", "mol", 3 * Avogadro, 1},
		{"mol", "L", 1, MolarVolumeSTP},
		{"L", "mol", MolarVolumeSTP, 1},
		{"moles", "moles", 7, 7},
	}
	for _, c := range cases {
		from, err := ParseUnit(c.from)
		if err != nil {
			Te.Fatal(err)
		}
		to, err := ParseUnit(c.to)
		if err != nil {
			Te.Fatal(err)
		}
		got, err := Convert(co2, c.q, from, to)
		if err != nil {
			Te.Errorf("Convert %s->%s: %v", from, to, err)
			continue
		}
		if !near(got, c.want) {
			Te.Errorf("Convert %s->%s of %g = %g, want %g", from, to, c.q, got, c.want)
		}
		textgot, err := ConvertText("CO2", c.q, from, to)
		if err != nil || textgot != got {
			Te.Errorf("ConvertText %s->%s = %g, %v; Convert gave %g", from, to, textgot, err, got)
		}
	}
	if _, err := Convert(co2, 1, Liters, Mass); ErrorKind(err) != "domain" {
		Te.Errorf("L->g should be a domain error, got %v", err)
	}
	if _, err := ParseUnit("furlongs"); ErrorKind(err) != "validation" {
		Te.Errorf("ParseUnit(furlongs): %v", err)
	}
	if _, err := ConvertText("H2O?", 1, Mass, Moles); ErrorKind(err) != "parse" {
		Te.Errorf("ConvertText with a bad formula: %v", err)
	}
}

func TestAsSubstance(Te *testing.T) {
	fe, _ := NewElement("Fe")
	water, _ := NewFormula("H2O")
	for _, v := range []interface{}{fe, &fe, water, "H2O"} {
		if _, err := AsSubstance(v); err != nil {
			Te.Errorf("AsSubstance(%v): %v", v, err)
		}
	}
	if s, _ := AsSubstance("H2O"); s.AtomCount() != 3 {
		Te.Errorf("AsSubstance(H2O) has %d atoms", s.AtomCount())
	}
	if _, err := AsSubstance(3.5); ErrorKind(err) != "domain" {
		Te.Errorf("AsSubstance(3.5): %v", err)
	}
	if _, err := AsSubstance("Zz"); ErrorKind(err) != "lookup" {
		Te.Errorf("AsSubstance(Zz): %v", err)
	}
	for _, v := range []interface{}{(*Element)(nil), (*Formula)(nil)} {
		if s, err := AsSubstance(v); s != nil || ErrorKind(err) != "domain" {
			Te.Errorf("AsSubstance(%T nil) = %v, %v; want a domain error", v, s, err)
		}
	}
}

package chemjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	chem "github.com/rmera/molcalc"
)

func TestSendFormula(Te *testing.T) {
	f, err := chem.NewFormula("H2O")
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if jerr := Send(&buf, NewFormula(f, chem.PercentComposition(f, true))); jerr != nil {
		Te.Fatal(jerr)
	}
	out := buf.String()
	for _, want := range []string{`"formula":"H2O"`, `"name":"Water"`, `"cas":"7732-18-5"`, `"percent":11.19`, `"percent":88.81`} {
		if !strings.Contains(out, want) {
			Te.Errorf("%s not in %s", want, out)
		}
	}
	back, jerr := DecodeFormula(chem.Default(), bufio.NewReader(&buf))
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if !back.Equal(f) {
		Te.Errorf("decoded %s, sent %s", back, f)
	}
}

func TestDecodeFormulaText(Te *testing.T) {
	in := bufio.NewReader(strings.NewReader(`{"formula":"Ca(OH)2"}`))
	f, jerr := DecodeFormula(chem.Default(), in)
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if f.Name() != "Calcium Hydroxide" {
		Te.Errorf("decoded %s (%s)", f, f.Name())
	}
	in = bufio.NewReader(strings.NewReader(`{"formula":"H2O","elements":[{"symbol":"Zz","count":1}]}` + "\n"))
	if _, jerr = DecodeFormula(chem.Default(), in); jerr == nil || jerr.Kind != "lookup" {
		Te.Errorf("unknown element should give a lookup error, got %v", jerr)
	}
	in = bufio.NewReader(strings.NewReader("{not json\n"))
	if _, jerr = DecodeFormula(chem.Default(), in); jerr == nil || jerr.Kind != "" {
		Te.Errorf("bad JSON should give a plain error, got %v", jerr)
	}
}

func TestNewError(Te *testing.T) {
	_, err := chem.NewFormula("H2(O")
	jerr := NewError("main", err)
	if !jerr.IsError || jerr.Kind != "parse" || jerr.Function != "main" {
		Te.Errorf("unexpected error container %+v", jerr)
	}
	var e *chem.ParseError
	if !errors.As(err, &e) {
		Te.Fatalf("expected a parse error, got %v", err)
	}
	var back Error
	if err := json.Unmarshal(jerr.Marshal(), &back); err != nil {
		Te.Fatal(err)
	}
	if back.Message != err.Error() || back.Kind != "parse" {
		Te.Errorf("round trip: %+v", back)
	}
	if d := jerr.Decorate("caller"); len(d) != 1 || d[0] != "caller" {
		Te.Errorf("Decorate: %v", d)
	}
}

func TestNewCAS(Te *testing.T) {
	c := NewCAS(chem.Default(), "50-00-0")
	if !c.Valid || c.Compound != "Formaldehyde" || c.Reason != "" {
		Te.Errorf("50-00-0: %+v", c)
	}
	c = NewCAS(chem.Default(), "50-00-1")
	if c.Valid || c.Reason == "" {
		Te.Errorf("50-00-1: %+v", c)
	}
	el, _ := chem.NewElement("Fe")
	if j := NewElement(el); j.Category != "metal" || j.Number != 26 {
		Te.Errorf("Fe: %+v", j)
	}
}

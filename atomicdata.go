/*
 * atomicdata.go, part of molcalc.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"bytes"
	"compress/gzip"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//The full periodic table. Masses are the IUPAC conventional/abridged values,
//or the mass number of the most stable isotope for elements without
//a standard atomic weight.
//
//go:embed data/elements.csv
var elementsCSV []byte

//Common compounds, by formula and CAS number. Names are separated by ";"
//
//go:embed data/compounds.csv
var compoundsCSV []byte

// NamesSep separates the names of a compound in the compound table.
const NamesSep = ";"

// Compound is a row of the compound table.
type Compound struct {
	Formula string
	CAS     string
	Names   []string
	comp    Composition
}

// Name returns the first (preferred) name of the compound.
func (C Compound) Name() string {
	if len(C.Names) == 0 {
		return ""
	}
	return C.Names[0]
}

// Composition returns the parsed formula of the compound.
func (C Compound) Composition() Composition {
	return C.comp.Copy()
}

// clone returns a copy of C that shares no slices or maps with it.
func (C Compound) clone() Compound {
	C.Names = append([]string(nil), C.Names...)
	C.comp = C.comp.Copy()
	return C
}

// Table holds the periodic table and the compound names, indexed by every
// column that can be used to look them up. A Table is never modified after
// it is loaded, so it can be shared freely.
type Table struct {
	elements []Element //ordered by atomic number
	bySymbol map[string]int
	byName   map[string]int
	byNumber map[int]int
	byMass   map[float64]int

	compounds []Compound
	byFormula map[string]int
	byCAS     map[string]int
	byComp    map[string]int
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the table built from the data embedded in the package.
// It is loaded the first time it is requested. It panics if the embedded
// data is corrupt, as that can only be a bug.
func Default() *Table {
	defaultOnce.Do(func() {
		var err error
		defaultTable, err = LoadTable(bytes.NewReader(elementsCSV), bytes.NewReader(compoundsCSV))
		if err != nil {
			panic("molcalc: embedded reference data is corrupt: " + err.Error())
		}
	})
	return defaultTable
}

// LoadTable reads a periodic table and, optionally, a compound table (compounds
// can be nil) in CSV format, with a header row.
// The periodic table needs the columns Symbol, Element (or Name), AtomicNumber and AtomicMass,
// and can have the yes/no columns Metal, Metalloid and Nonmetal.
// The compound table needs the column Formula, and can have CAS and Names.
func LoadTable(elements, compounds io.Reader) (*Table, error) {
	T := &Table{
		bySymbol:  make(map[string]int),
		byName:    make(map[string]int),
		byNumber:  make(map[int]int),
		byMass:    make(map[float64]int),
		byFormula: make(map[string]int),
		byCAS:     make(map[string]int),
		byComp:    make(map[string]int),
	}
	if err := T.readElements(elements); err != nil {
		return nil, errDecorate(err, "LoadTable")
	}
	if compounds == nil {
		return T, nil
	}
	if err := T.readCompounds(compounds); err != nil {
		return nil, errDecorate(err, "LoadTable")
	}
	return T, nil
}

// ReadTable loads the tables from files. Files with a .zst extension are
// decompressed with zstd, and files with .gz, with gzip. If compoundsPath is
// empty, the table will have no compound names.
func ReadTable(elementsPath, compoundsPath string) (*Table, error) {
	ef, err := openTableFile(elementsPath)
	if err != nil {
		return nil, err
	}
	defer ef.Close()
	if compoundsPath == "" {
		return LoadTable(ef, nil)
	}
	cf, err := openTableFile(compoundsPath)
	if err != nil {
		return nil, err
	}
	defer cf.Close()
	return LoadTable(ef, cf)
}

// readCloser closes the decompressor and then the file under it.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (r readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

func openTableFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening table %s: %w", name, err)
	}
	switch {
	case strings.HasSuffix(name, ".zst"):
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening zstd table %s: %w", name, err)
		}
		return readCloser{z, []func() error{func() error { z.Close(); return nil }, f.Close}}, nil
	case strings.HasSuffix(name, ".gz"):
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening gzip table %s: %w", name, err)
		}
		return readCloser{z, []func() error{z.Close, f.Close}}, nil
	}
	return f, nil
}

// readCSV reads all the records in r and returns them, plus a function that gives the
// field of a record for a column name (or alias), or "" if there is no such column.
func readCSV(r io.Reader, what string) ([][]string, func(rec []string, col ...string) string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s table: %w", what, err)
	}
	if len(recs) == 0 {
		return nil, nil, fmt.Errorf("reading %s table: no header", what)
	}
	cols := make(map[string]int)
	for i, v := range recs[0] {
		cols[strings.ToLower(strings.TrimSpace(v))] = i
	}
	field := func(rec []string, col ...string) string {
		for _, c := range col {
			if i, ok := cols[strings.ToLower(c)]; ok && i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
		}
		return ""
	}
	return recs[1:], field, nil
}

func (T *Table) readElements(r io.Reader) error {
	recs, field, err := readCSV(r, "periodic")
	if err != nil {
		return err
	}
	for i, rec := range recs {
		line := i + 2
		e := Element{
			Symbol:    capitalize(field(rec, "Symbol")),
			Name:      field(rec, "Element", "Name"),
			Metal:     yes(field(rec, "Metal")),
			Metalloid: yes(field(rec, "Metalloid")),
			Nonmetal:  yes(field(rec, "Nonmetal")),
			tab:       T,
		}
		if e.Symbol == "" || e.Name == "" {
			return &ValidationError{Value: strings.Join(rec, ","), Msg: fmt.Sprintf("periodic table line %d: missing symbol or name", line)}
		}
		e.Number, err = strconv.Atoi(field(rec, "AtomicNumber", "Number"))
		if err != nil {
			return &ValidationError{Value: strings.Join(rec, ","), Msg: fmt.Sprintf("periodic table line %d: bad atomic number", line), cause: err}
		}
		e.Mass, err = strconv.ParseFloat(field(rec, "AtomicMass", "Mass"), 64)
		if err != nil || e.Mass <= 0 {
			return &ValidationError{Value: strings.Join(rec, ","), Msg: fmt.Sprintf("periodic table line %d: bad atomic mass", line), cause: err}
		}
		if _, ok := T.bySymbol[e.Symbol]; ok {
			return &ValidationError{Value: e.Symbol, Msg: fmt.Sprintf("periodic table line %d: repeated symbol", line)}
		}
		idx := len(T.elements)
		T.elements = append(T.elements, e)
		T.bySymbol[e.Symbol] = idx
		T.byName[strings.ToLower(e.Name)] = idx
		T.byNumber[e.Number] = idx
		//with repeated masses the lightest element wins
		if j, ok := T.byMass[e.Mass]; !ok || T.elements[j].Number > e.Number {
			T.byMass[e.Mass] = idx
		}
	}
	if len(T.elements) == 0 {
		return &ValidationError{Value: "", Msg: "periodic table has no elements"}
	}
	return nil
}

func (T *Table) readCompounds(r io.Reader) error {
	recs, field, err := readCSV(r, "compound")
	if err != nil {
		return err
	}
	title := cases.Title(language.English)
	for i, rec := range recs {
		line := i + 2
		c := Compound{Formula: field(rec, "Formula"), CAS: field(rec, "CAS")}
		for _, n := range strings.Split(field(rec, "Names", "Name"), NamesSep) {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			if n == strings.ToLower(n) {
				n = title.String(n)
			}
			c.Names = append(c.Names, n)
		}
		if c.Formula == "" {
			return &ValidationError{Value: strings.Join(rec, ","), Msg: fmt.Sprintf("compound table line %d: missing formula", line)}
		}
		if c.CAS != "" {
			if err := ValidateCAS(c.CAS); err != nil {
				return errDecorate(err, fmt.Sprintf("readCompounds: line %d", line))
			}
		}
		c.comp, err = ParseFormula(c.Formula)
		if err != nil {
			return errDecorate(err, fmt.Sprintf("readCompounds: line %d", line))
		}
		if missing := T.unknownSymbol(c.comp); missing != "" {
			log.Printf("molcalc: compound table line %d (%s) has unknown element %s, skipped", line, c.Formula, missing)
			continue
		}
		idx := len(T.compounds)
		T.compounds = append(T.compounds, c)
		if _, ok := T.byFormula[c.Formula]; !ok {
			T.byFormula[c.Formula] = idx
		}
		if _, ok := T.byComp[c.comp.key()]; !ok {
			T.byComp[c.comp.key()] = idx
		}
		if c.CAS != "" {
			T.byCAS[c.CAS] = idx
		}
	}
	return nil
}

// unknownSymbol returns the first symbol in c that is not in the
// periodic table, or "".
func (T *Table) unknownSymbol(c Composition) string {
	for _, s := range c.symbols {
		if _, ok := T.bySymbol[s]; !ok {
			return s
		}
	}
	return ""
}

func yes(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

// Len returns the number of elements in the periodic table.
func (T *Table) Len() int {
	return len(T.elements)
}

// Elements returns all the elements in the table, in the order they were read.
func (T *Table) Elements() []Element {
	return append([]Element(nil), T.elements...)
}

// Compounds returns all the compounds in the table.
func (T *Table) Compounds() []Compound {
	ret := make([]Compound, len(T.compounds))
	for i, v := range T.compounds {
		ret[i] = v.clone()
	}
	return ret
}

// Element returns the element matching k.
func (T *Table) Element(k Key) (Element, error) {
	var idx int
	var ok bool
	switch k.Kind {
	case BySymbol:
		idx, ok = T.bySymbol[capitalize(strings.TrimSpace(k.Text))]
	case ByName:
		idx, ok = T.byName[strings.ToLower(strings.TrimSpace(k.Text))]
	case ByNumber:
		idx, ok = T.byNumber[k.Number]
	case ByMass:
		idx, ok = T.byMass[k.Mass]
	}
	if !ok {
		return Element{}, &LookupError{Key: k.String(), What: "element " + k.Kind.String(), deco: []string{"Element"}}
	}
	return T.elements[idx], nil
}

// Resolve finds the element that id stands for, trying, in this order, symbol,
// name, atomic number and atomic mass. The first match is returned.
func (T *Table) Resolve(id string) (Element, error) {
	for _, k := range KeysFor(id) {
		if e, err := T.Element(k); err == nil {
			return e, nil
		}
	}
	return Element{}, &LookupError{Key: id, What: "element", deco: []string{"Resolve"}}
}

// Compound returns the compound with the given formula or CAS number.
// Formulas are first matched as written, then by composition, so "OH2"
// finds water.
func (T *Table) Compound(id string) (Compound, error) {
	id = strings.TrimSpace(id)
	if IsCAS(id) {
		if i, ok := T.byCAS[id]; ok {
			return T.compounds[i].clone(), nil
		}
		return Compound{}, &LookupError{Key: id, What: "compound CAS number", deco: []string{"Compound"}}
	}
	if i, ok := T.byFormula[id]; ok {
		return T.compounds[i].clone(), nil
	}
	if c, err := ParseFormula(id); err == nil {
		if i, ok := T.byComp[c.key()]; ok {
			return T.compounds[i].clone(), nil
		}
	}
	return Compound{}, &LookupError{Key: id, What: "compound", deco: []string{"Compound"}}
}

// CompoundName returns the preferred name of the compound with the given
// formula or CAS number.
func (T *Table) CompoundName(id string) (string, error) {
	c, err := T.Compound(id)
	if err != nil {
		return "", errDecorate(err, "CompoundName")
	}
	return c.Name(), nil
}

// compoundFor returns the compound with composition c, if any.
func (T *Table) compoundFor(c Composition) (Compound, bool) {
	if i, ok := T.byFormula[c.String()]; ok {
		return T.compounds[i].clone(), true
	}
	if i, ok := T.byComp[c.key()]; ok {
		return T.compounds[i].clone(), true
	}
	return Compound{}, false
}

/*
 * json.go, part of molcalc.
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

package chemjson

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	chem "github.com/rmera/molcalc"
)

//A ready-to-serialize container for an element.
type Element struct {
	Symbol   string  `json:"symbol" yaml:"symbol"`
	Name     string  `json:"name" yaml:"name"`
	Number   int     `json:"number" yaml:"number"`
	Mass     float64 `json:"mass" yaml:"mass"`
	Category string  `json:"category" yaml:"category"`
}

//NewElement fills an Element container from a chem.Element.
func NewElement(e chem.Element) *Element {
	return &Element{
		Symbol:   e.Symbol,
		Name:     e.Name,
		Number:   e.Number,
		Mass:     e.Mass,
		Category: e.Category(),
	}
}

//The share of one element in a formula. Percent is only
//set when the share comes from a percent composition.
type Share struct {
	Symbol  string  `json:"symbol" yaml:"symbol"`
	Name    string  `json:"name" yaml:"name"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent,omitempty" yaml:"percent,omitempty"`
}

//A ready-to-serialize container for a formula.
type Formula struct {
	Formula   string  `json:"formula" yaml:"formula"`
	Name      string  `json:"name" yaml:"name"`
	CAS       string  `json:"cas,omitempty" yaml:"cas,omitempty"`
	MolarMass float64 `json:"molar_mass" yaml:"molar_mass"`
	Atoms     int     `json:"atoms" yaml:"atoms"`
	Elements  []Share `json:"elements" yaml:"elements"`
}

//NewFormula fills a Formula container from a chem.Formula. If shares is not nil,
//it is used for the element list, so the percentages are included.
func NewFormula(f *chem.Formula, shares []chem.Share) *Formula {
	ret := &Formula{
		Formula:   f.String(),
		Name:      f.Name(),
		CAS:       f.CAS(),
		MolarMass: f.MolarMass(),
		Atoms:     f.AtomCount(),
	}
	if shares != nil {
		ret.Elements = make([]Share, 0, len(shares))
		for _, s := range shares {
			ret.Elements = append(ret.Elements, Share{Symbol: s.Element.Symbol, Name: s.Element.Name, Count: s.Count, Percent: s.Percent})
		}
		return ret
	}
	els := f.Elements()
	ret.Elements = make([]Share, 0, len(els))
	for _, e := range els {
		ret.Elements = append(ret.Elements, Share{Symbol: e.Symbol, Name: e.Name, Count: f.Count(e.Symbol)})
	}
	return ret
}

//Composition returns the element counts in the container, in order.
func (J *Formula) Composition() chem.Composition {
	var c chem.Composition
	for _, s := range J.Elements {
		c.Add(s.Symbol, s.Count)
	}
	return c
}

//The result of a quantity conversion.
type Conversion struct {
	Substance string  `json:"substance" yaml:"substance"`
	Quantity  float64 `json:"quantity" yaml:"quantity"`
	From      string  `json:"from" yaml:"from"`
	To        string  `json:"to" yaml:"to"`
	Result    float64 `json:"result" yaml:"result"`
}

//The result of a percent error calculation.
type PercentError struct {
	Actual      float64 `json:"actual" yaml:"actual"`
	Theoretical float64 `json:"theoretical" yaml:"theoretical"`
	Percent     float64 `json:"percent_error" yaml:"percent_error"`
}

//The result of a CAS number check. Reason is empty for valid numbers.
type CAS struct {
	Number   string `json:"cas" yaml:"cas"`
	Valid    bool   `json:"valid" yaml:"valid"`
	Reason   string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Compound string `json:"compound,omitempty" yaml:"compound,omitempty"`
}

//NewCAS checks the number and, if it is valid and in the table, names the compound.
func NewCAS(T *chem.Table, cas string) *CAS {
	ret := &CAS{Number: cas}
	if err := chem.ValidateCAS(cas); err != nil {
		ret.Reason = err.Error()
		return ret
	}
	ret.Valid = true
	if name, err := T.CompoundName(cas); err == nil {
		ret.Compound = name
	}
	return ret
}

//An easily JSON-serializable error type,
type Error struct {
	deco     []string
	IsError  bool     `json:"is_error" yaml:"is_error"` //If this is false (no error) all the other fields will be at their zero-values.
	Kind     string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Function string   `json:"function,omitempty" yaml:"function,omitempty"` //which go function gave the error
	Message  string   `json:"message" yaml:"message"`                       //the error itself
	Trace    []string `json:"trace,omitempty" yaml:"trace,omitempty"`
}

var _ chem.Error = (*Error)(nil)

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//Takes an error and the function where it happened to create a json-marshal-ble error.
//The kind and the call chain are taken from err if it is a molcalc error.
func NewError(function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	jerr.Kind = chem.ErrorKind(err)
	jerr.Function = function
	jerr.Message = err.Error()
	jerr.Trace = chem.Decorations(err)
	return jerr
}

//Send marshals v and writes it to out, in one line.
func Send(out io.Writer, v interface{}) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(v); err != nil {
		return NewError("chemjson.Send", err)
	}
	return nil
}

//DecodeFormula reads a Formula container from one line of stream and rebuilds
//the formula with the elements of T. The formula text in the container is only
//used if the element list is empty.
func DecodeFormula(T *chem.Table, stream *bufio.Reader) (*chem.Formula, *Error) {
	const funcname = "DecodeFormula" //for the error
	line, err := stream.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, NewError(funcname, err)
	}
	J := new(Formula)
	if err = json.Unmarshal(line, J); err != nil {
		return nil, NewError(funcname, err)
	}
	var f *chem.Formula
	if len(J.Elements) == 0 {
		f, err = T.Formula(J.Formula)
	} else {
		f, err = T.FormulaFromComposition(J.Composition())
	}
	if err != nil {
		return nil, NewError(funcname, err)
	}
	return f, nil
}
